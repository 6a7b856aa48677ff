package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/plantcheck/internal/migration"
	"github.com/julianstephens/plantcheck/migrations"
)

// MemoryDSN opens a private database that lives as long as the store.
const MemoryDSN = ":memory:"

type Store struct {
	dsn string
	db  *sql.DB
}

// NewStore returns a store for dsn. An empty dsn means MemoryDSN.
func NewStore(dsn string) *Store {
	if dsn == "" {
		dsn = MemoryDSN
	}
	return &Store{
		dsn: dsn,
	}
}

func (s *Store) Init() error {
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Every connection to :memory: is a separate database, so pin one.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("failed to configure database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(context.Background()); err != nil {
		s.db.Close()
		s.db = nil
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Driver() string {
	return "sqlite"
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

func (s *Store) runMigrations(ctx context.Context) error {
	r, err := s.runner()
	if err != nil {
		return err
	}
	_, err = r.Apply(ctx)
	return err
}

// SchemaVersion reports the applied migration version, for diagnostics.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("storage not initialized")
	}
	r, err := s.runner()
	if err != nil {
		return 0, err
	}
	if err := r.Validate(ctx); err != nil {
		return 0, err
	}
	return r.CurrentVersion(ctx)
}

func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not initialized")
	}
	return s.db, nil
}

// LatestVersion reports the newest migration this build ships.
func (s *Store) LatestVersion() (int, error) {
	r, err := s.runner()
	if err != nil {
		return 0, err
	}
	migrations, err := r.Migrations()
	if err != nil {
		return 0, err
	}
	if len(migrations) == 0 {
		return 0, nil
	}
	return migrations[len(migrations)-1].Version, nil
}
