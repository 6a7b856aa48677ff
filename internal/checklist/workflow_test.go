package checklist

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/queue"
	"github.com/julianstephens/plantcheck/internal/storage"
)

var titan = models.EquipmentRecord{ID: "0401", Name: "Titan-950 Ultra Hauler", Branch: "Melbourne Branch", Bookmarked: true}

// gateSubmitter blocks every submission until release is closed.
type gateSubmitter struct {
	release chan struct{}
	started chan struct{}
}

func newGate() *gateSubmitter {
	return &gateSubmitter{release: make(chan struct{}), started: make(chan struct{}, 8)}
}

func (g *gateSubmitter) Submit(ctx context.Context, _ models.WorkRequestEntry, _ models.ConnectivityMode) error {
	g.started <- struct{}{}
	select {
	case <-g.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// flakySubmitter fails the first n calls.
type flakySubmitter struct {
	mu    sync.Mutex
	fails int
}

func (f *flakySubmitter) Submit(context.Context, models.WorkRequestEntry, models.ConnectivityMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fails > 0 {
		f.fails--
		return fmt.Errorf("connection reset")
	}
	return nil
}

func newWorkflow(t *testing.T, opts ...Option) (*Workflow, *queue.Queue) {
	t.Helper()
	store, err := storage.Open(storage.DriverMemory)
	require.NoError(t, err)
	q, err := queue.New(store)
	require.NoError(t, err)
	w := New(titan, models.DefaultChecklistTemplate, q, opts...)
	t.Cleanup(w.Close)
	return w, q
}

func wait(t *testing.T, sub *Submission) models.WorkRequestEntry {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	e, err := sub.Wait(ctx)
	require.NoError(t, err)
	return e
}

func counts(t *testing.T, q *queue.Queue) models.QueueCounts {
	t.Helper()
	c, err := q.Counts()
	require.NoError(t, err)
	return c
}

func TestNewFromTemplate(t *testing.T) {
	w, _ := newWorkflow(t)

	items := w.Items()
	require.Len(t, items, 4)
	for _, it := range items {
		assert.Equal(t, models.StatusPending, it.Status)
		assert.Equal(t, models.RequestIdle, it.WorkRequestState)
		assert.False(t, it.Expanded)
	}
	assert.Equal(t, "Fluid levels check", items[0].Title)

	done, total := w.Progress()
	assert.Equal(t, 0, done)
	assert.Equal(t, 4, total)
}

func TestTemplateSizeIsConfigurable(t *testing.T) {
	store, err := storage.Open(storage.DriverMemory)
	require.NoError(t, err)
	q, err := queue.New(store)
	require.NoError(t, err)

	w := New(titan, []models.ChecklistTemplateItem{{ID: "a", Title: "Seatbelt"}, {ID: "b", Title: "Horn"}}, q)
	defer w.Close()

	require.NoError(t, w.SetStatus("a", models.StatusOK))
	require.NoError(t, w.SetStatus("b", models.StatusOK))
	assert.True(t, w.CanContinue())
}

func TestSetStatusExpansion(t *testing.T) {
	w, _ := newWorkflow(t)

	require.NoError(t, w.SetStatus("1", models.StatusDefect))
	it, _ := w.Item("1")
	assert.True(t, it.Expanded, "defect forces expansion")

	require.NoError(t, w.SetStatus("1", models.StatusOK))
	it, _ = w.Item("1")
	assert.True(t, it.Expanded, "ok leaves expansion as it was")
	assert.Equal(t, models.StatusOK, it.Status)

	require.NoError(t, w.ToggleExpanded("1"))
	require.NoError(t, w.SetStatus("1", models.StatusOK))
	it, _ = w.Item("1")
	assert.False(t, it.Expanded)

	err := w.SetStatus("1", models.StatusPending)
	assert.True(t, errors.Is(err, errors.ErrInvalidTransition))
	err = w.SetStatus("99", models.StatusOK)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	err = w.ToggleExpanded("99")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestPhotos(t *testing.T) {
	w, _ := newWorkflow(t)

	require.NoError(t, w.AddPhoto("2", models.PhotoRef{URI: "a.jpg"}))
	require.NoError(t, w.AddPhoto("2", models.PhotoRef{URI: "b.jpg"}))
	require.NoError(t, w.AddPhoto("2", models.PhotoRef{URI: "c.jpg"}))

	require.NoError(t, w.RemovePhoto("2", 1))
	it, _ := w.Item("2")
	assert.Equal(t, []models.PhotoRef{{URI: "a.jpg"}, {URI: "c.jpg"}}, it.Photos)

	for _, bad := range []int{-1, 2, 10} {
		err := w.RemovePhoto("2", bad)
		assert.Truef(t, errors.Is(err, errors.ErrIndexOutOfRange), "index %d", bad)
	}
	it, _ = w.Item("2")
	assert.Len(t, it.Photos, 2, "bad index leaves the list unchanged")

	// Snapshots do not alias internal state.
	it.Photos[0].URI = "mutated"
	again, _ := w.Item("2")
	assert.Equal(t, "a.jpg", again.Photos[0].URI)

	assert.True(t, errors.Is(w.AddPhoto("nope", models.PhotoRef{}), errors.ErrNotFound))
	assert.True(t, errors.Is(w.SetComment("nope", "x"), errors.ErrNotFound))
}

func TestRaiseWithoutDetailsNeedsAcknowledgement(t *testing.T) {
	w, q := newWorkflow(t)
	ctx := context.Background()

	require.NoError(t, w.SetStatus("1", models.StatusDefect))

	out, err := w.RaiseWorkRequest(ctx, "1", models.Offline, false)
	require.NoError(t, err)
	assert.True(t, out.ConfirmationRequired)
	assert.Nil(t, out.Submission)

	it, _ := w.Item("1")
	assert.Equal(t, models.RequestIdle, it.WorkRequestState)
	assert.Equal(t, models.QueueCounts{}, counts(t, q))

	out, err = w.RaiseWorkRequest(ctx, "1", models.Offline, true)
	require.NoError(t, err)
	require.NotNil(t, out.Submission)
	entry := wait(t, out.Submission)

	it, _ = w.Item("1")
	assert.Equal(t, models.RequestQueued, it.WorkRequestState)
	assert.Equal(t, models.RequestQueued, out.Submission.State())
	assert.Equal(t, models.QueueCounts{Queued: 1}, counts(t, q))

	assert.Equal(t, "0401", entry.EquipmentID)
	assert.Equal(t, "Titan-950 Ultra Hauler", entry.EquipmentName)
	assert.Equal(t, "Fluid levels check", entry.TaskTitle)
	assert.Equal(t, models.RequestStatusDefect, entry.Status)
	assert.Equal(t, models.PriorityHigh, entry.Priority)
}

func TestRaiseWithDetailsProceedsImmediately(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *Workflow)
	}{
		{"comment", func(w *Workflow) { _ = w.SetComment("3", "left indicator out") }},
		{"photo", func(w *Workflow) { _ = w.AddPhoto("3", models.PhotoRef{URI: "p.jpg"}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, q := newWorkflow(t)
			tt.setup(w)

			out, err := w.RaiseWorkRequest(context.Background(), "3", models.Online, false)
			require.NoError(t, err)
			require.NotNil(t, out.Submission)
			e := wait(t, out.Submission)

			assert.Equal(t, models.RequestStatusSent, e.Status)
			assert.Equal(t, models.PriorityMedium, e.Priority)
			assert.Equal(t, models.QueueCounts{Sent: 1}, counts(t, q))
			it, _ := w.Item("3")
			assert.Equal(t, models.RequestSent, it.WorkRequestState)
		})
	}
}

func TestBlankCommentCountsAsMissing(t *testing.T) {
	w, _ := newWorkflow(t)
	require.NoError(t, w.SetComment("1", "   \n"))

	out, err := w.RaiseWorkRequest(context.Background(), "1", models.Online, false)
	require.NoError(t, err)
	assert.True(t, out.ConfirmationRequired)
}

func TestDoubleSubmitIsRejected(t *testing.T) {
	gate := newGate()
	w, q := newWorkflow(t, WithSubmitter(gate))
	ctx := context.Background()

	require.NoError(t, w.SetComment("1", "leak"))
	out, err := w.RaiseWorkRequest(ctx, "1", models.Offline, false)
	require.NoError(t, err)
	<-gate.started

	it, _ := w.Item("1")
	assert.Equal(t, models.RequestSubmitting, it.WorkRequestState)

	_, err = w.RaiseWorkRequest(ctx, "1", models.Offline, true)
	assert.True(t, errors.Is(err, errors.ErrInvalidTransition))

	close(gate.release)
	wait(t, out.Submission)

	_, err = w.RaiseWorkRequest(ctx, "1", models.Offline, true)
	assert.True(t, errors.Is(err, errors.ErrInvalidTransition), "terminal state rejects another raise")
	assert.Equal(t, models.QueueCounts{Queued: 1}, counts(t, q))
}

func TestConcurrentRaisesEnqueueOnce(t *testing.T) {
	w, q := newWorkflow(t)
	require.NoError(t, w.SetComment("4", "soft pedal"))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		subs []*Submission
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := w.RaiseWorkRequest(context.Background(), "4", models.Offline, true)
			if err == nil && out.Submission != nil {
				mu.Lock()
				subs = append(subs, out.Submission)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, subs, 1)
	wait(t, subs[0])
	assert.Equal(t, models.QueueCounts{Queued: 1}, counts(t, q))
}

func TestConnectivityIsReadAtSubmission(t *testing.T) {
	w, q := newWorkflow(t)
	ctx := context.Background()

	require.NoError(t, w.SetStatus("1", models.StatusDefect))
	out, err := w.RaiseWorkRequest(ctx, "1", models.Offline, true)
	require.NoError(t, err)
	first := wait(t, out.Submission)

	require.NoError(t, w.SetStatus("2", models.StatusDefect))
	out, err = w.RaiseWorkRequest(ctx, "2", models.Online, true)
	require.NoError(t, err)
	second := wait(t, out.Submission)

	queued, err := q.ListQueued()
	require.NoError(t, err)
	sent, err := q.ListSent()
	require.NoError(t, err)

	require.Len(t, queued, 1)
	require.Len(t, sent, 1)
	assert.Equal(t, first.ID, queued[0].ID)
	assert.Equal(t, second.ID, sent[0].ID)
}

func TestCloseCancelsInFlightSubmission(t *testing.T) {
	gate := newGate()
	w, q := newWorkflow(t, WithSubmitter(gate))

	require.NoError(t, w.SetComment("1", "leak"))
	out, err := w.RaiseWorkRequest(context.Background(), "1", models.Offline, false)
	require.NoError(t, err)
	<-gate.started

	w.Close()

	_, err = out.Submission.Wait(context.Background())
	assert.Error(t, err)
	assert.Equal(t, models.QueueCounts{}, counts(t, q), "discarded checklist enqueues nothing")

	_, err = w.RaiseWorkRequest(context.Background(), "2", models.Offline, true)
	assert.True(t, errors.Is(err, errors.ErrInvalidTransition))
}

func TestCallerCancellationFailsTheItem(t *testing.T) {
	gate := newGate()
	w, q := newWorkflow(t, WithSubmitter(gate))

	ctx, cancel := context.WithCancel(context.Background())
	out, err := w.RaiseWorkRequest(ctx, "1", models.Offline, true)
	require.NoError(t, err)
	<-gate.started
	cancel()

	_, err = out.Submission.Wait(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.RequestFailed, out.Submission.State())
	assert.Equal(t, models.QueueCounts{}, counts(t, q))
}

func TestFailedSubmissionCanBeRetried(t *testing.T) {
	w, q := newWorkflow(t, WithSubmitter(&flakySubmitter{fails: 1}))
	ctx := context.Background()

	out, err := w.RaiseWorkRequest(ctx, "2", models.Online, true)
	require.NoError(t, err)
	_, err = out.Submission.Wait(ctx)
	require.Error(t, err)

	it, _ := w.Item("2")
	assert.Equal(t, models.RequestFailed, it.WorkRequestState)
	assert.Equal(t, models.QueueCounts{}, counts(t, q))

	out, err = w.RaiseWorkRequest(ctx, "2", models.Online, true)
	require.NoError(t, err)
	wait(t, out.Submission)

	it, _ = w.Item("2")
	assert.Equal(t, models.RequestSent, it.WorkRequestState)
	assert.Equal(t, models.QueueCounts{Sent: 1}, counts(t, q))
}

func TestDelaySubmitter(t *testing.T) {
	start := time.Now()
	require.NoError(t, DelaySubmitter{Delay: 20 * time.Millisecond}.Submit(context.Background(), models.WorkRequestEntry{}, models.Online))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := DelaySubmitter{Delay: time.Hour}.Submit(ctx, models.WorkRequestEntry{}, models.Online)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestContinue(t *testing.T) {
	w, _ := newWorkflow(t)

	assert.Equal(t, NotReady, w.Continue(true))
	assert.False(t, w.CanContinue())

	require.NoError(t, w.SetStatus("1", models.StatusOK))
	require.NoError(t, w.SetStatus("2", models.StatusOK))
	require.NoError(t, w.SetStatus("3", models.StatusDefect))
	assert.Equal(t, NotReady, w.Continue(false))

	require.NoError(t, w.SetStatus("4", models.StatusDefect))
	assert.True(t, w.CanContinue())

	incomplete := w.IncompleteDefects()
	require.Len(t, incomplete, 2)
	assert.Equal(t, "3", incomplete[0].ID)
	assert.Equal(t, ConfirmationRequired, w.Continue(false))
	assert.Equal(t, Proceed, w.Continue(true))

	require.NoError(t, w.SetComment("3", "cracked lens"))
	require.NoError(t, w.AddPhoto("4", models.PhotoRef{URI: "brake.jpg"}))
	assert.Empty(t, w.IncompleteDefects())
	assert.Equal(t, Proceed, w.Continue(false))
	assert.Equal(t, 2, w.Defects())
}

func TestCanContinueEveryStatusCombination(t *testing.T) {
	statuses := []models.ItemStatus{models.StatusPending, models.StatusOK, models.StatusDefect}
	ids := []string{"1", "2", "3", "4"}

	combos := 1
	for range ids {
		combos *= len(statuses)
	}
	require.Equal(t, 81, combos)

	for n := range combos {
		assigned := make([]models.ItemStatus, len(ids))
		rest := n
		for i := range ids {
			assigned[i] = statuses[rest%len(statuses)]
			rest /= len(statuses)
		}

		t.Run(fmt.Sprint(assigned), func(t *testing.T) {
			w, _ := newWorkflow(t)
			pending, defects := false, 0
			for i, id := range ids {
				switch assigned[i] {
				case models.StatusPending:
					pending = true
				case models.StatusDefect:
					defects++
					require.NoError(t, w.SetStatus(id, assigned[i]))
				default:
					require.NoError(t, w.SetStatus(id, assigned[i]))
				}
			}

			assert.Equal(t, !pending, w.CanContinue())
			assert.Len(t, w.IncompleteDefects(), defects)
			switch {
			case pending:
				assert.Equal(t, NotReady, w.Continue(true))
			case defects > 0:
				assert.Equal(t, ConfirmationRequired, w.Continue(false))
				assert.Equal(t, Proceed, w.Continue(true))
			default:
				assert.Equal(t, Proceed, w.Continue(false))
			}
		})
	}
}

func TestContinueOutcomeString(t *testing.T) {
	assert.Equal(t, "not_ready", NotReady.String())
	assert.Equal(t, "confirmation_required", ConfirmationRequired.String())
	assert.Equal(t, "proceed", Proceed.String())
}
