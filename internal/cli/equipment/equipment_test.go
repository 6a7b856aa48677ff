package equipment

import (
	"bytes"
	"strings"
	"testing"

	"github.com/julianstephens/plantcheck/internal/cli"
	"github.com/julianstephens/plantcheck/internal/config"
	"github.com/julianstephens/plantcheck/internal/session"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Checklist.SubmissionDelay = 0
	cfg.Session.Operator = "Jane Doe"

	sess, err := session.New(cfg)
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}
	t.Cleanup(func() { sess.Close() })

	out := &bytes.Buffer{}
	return &cli.Context{Config: cfg, Session: sess, Out: out}, out
}

func lines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimSpace(out.String()), "\n")
}

func TestCatalogCmd(t *testing.T) {
	tests := []struct {
		name      string
		cmd       CatalogCmd
		wantRows  int
		wantFirst string
	}{
		{name: "first page", cmd: CatalogCmd{Sort: "name"}, wantRows: 8, wantFirst: "0406"},
		{name: "filter ignores limit", cmd: CatalogCmd{Sort: "name", Filter: "loader"}, wantRows: 3, wantFirst: "0408"},
		{name: "all", cmd: CatalogCmd{Sort: "id", All: true}, wantRows: 20, wantFirst: "0401"},
		{name: "explicit limit", cmd: CatalogCmd{Sort: "id", Limit: 2}, wantRows: 2, wantFirst: "0401"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := setupTestContext(t)
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("catalog failed: %v", err)
			}

			var rows []string
			for _, l := range lines(out) {
				if strings.Contains(l, " | ") {
					rows = append(rows, l)
				}
			}
			if len(rows) != tt.wantRows {
				t.Fatalf("got %d rows, want %d:\n%s", len(rows), tt.wantRows, out)
			}
			if !strings.Contains(rows[0], tt.wantFirst+" | ") {
				t.Errorf("first row = %q, want %s", rows[0], tt.wantFirst)
			}
		})
	}
}

func TestCatalogCmd_NoMatch(t *testing.T) {
	ctx, out := setupTestContext(t)
	if err := (&CatalogCmd{Sort: "name", Filter: "zeppelin"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "No equipment matches your search" {
		t.Errorf("output = %q", got)
	}
}

func TestBookmarkCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&BookmarkCmd{IDs: []string{"0303", "0401"}}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	got := lines(out)
	want := []string{"Wheel Loader bookmarked", "Titan-950 Ultra Hauler removed from bookmarks"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("output = %q, want %q", got, want)
	}

	if err := (&BookmarkCmd{IDs: []string{"9999"}}).Run(ctx); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestScanCmd(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&ScanCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "0401 | Titan-950 Ultra Hauler") {
		t.Errorf("scan output:\n%s", out)
	}
	if !strings.Contains(out.String(), "4. Brake system") {
		t.Errorf("checklist items missing:\n%s", out)
	}
	if v := ctx.Session.View(); v != session.ViewCatalog {
		t.Errorf("view after scan = %s, want catalog", v)
	}
}

func TestInspectCmd_Offline(t *testing.T) {
	ctx, out := setupTestContext(t)

	cmd := &InspectCmd{
		ID:      "0401",
		OK:      []string{"2", "3", "4"},
		Defect:  []string{"1"},
		Comment: map[string]string{"1": "coolant leak"},
		Photo:   []string{"1=photo://leak.jpg"},
		Raise:   []string{"1"},
		Offline: true,
		Hours:   "1",
		Minutes: "5",
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("inspect failed: %v\n%s", err, out)
	}

	for _, want := range []string{"Offline: Request Added to Queue: WR-", "Pre-start check for Titan-950 Ultra Hauler saved", "time spent: 1h5m0s", "signed: Jane Doe", "Queued: 1, Sent: 0"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	history, err := ctx.Session.History("0401")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].Defects != 1 {
		t.Errorf("history = %+v", history)
	}
}

func TestInspectCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     InspectCmd
		wantErr string
	}{
		{
			name:    "unknown equipment",
			cmd:     InspectCmd{ID: "9999"},
			wantErr: "9999",
		},
		{
			name:    "pending items",
			cmd:     InspectCmd{ID: "0303", OK: []string{"1"}},
			wantErr: "pending: 2, 3, 4",
		},
		{
			name:    "raise without details",
			cmd:     InspectCmd{ID: "0303", Defect: []string{"1"}, Raise: []string{"1"}},
			wantErr: "--force",
		},
		{
			name:    "defect without details",
			cmd:     InspectCmd{ID: "0303", OK: []string{"1", "2", "3"}, Defect: []string{"4"}},
			wantErr: "Incomplete Defect Details",
		},
		{
			name:    "bad photo flag",
			cmd:     InspectCmd{ID: "0303", Photo: []string{"1"}},
			wantErr: "expected ID=URI",
		},
		{
			name:    "bad minutes",
			cmd:     InspectCmd{ID: "0303", OK: []string{"1", "2", "3", "4"}, Minutes: "90"},
			wantErr: "invalid minutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestContext(t)
			err := tt.cmd.Run(ctx)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestInspectCmd_ForceOnline(t *testing.T) {
	ctx, out := setupTestContext(t)

	cmd := &InspectCmd{
		ID:     "0303",
		OK:     []string{"1", "2", "3"},
		Defect: []string{"4"},
		Raise:  []string{"4"},
		Force:  true,
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("inspect failed: %v\n%s", err, out)
	}
	if !strings.Contains(out.String(), "Work Request Raised: WR-") {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out.String(), "Queued: 0, Sent: 1") {
		t.Errorf("output:\n%s", out)
	}
}
