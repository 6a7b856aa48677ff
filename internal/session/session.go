package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/plantcheck/internal/catalog"
	"github.com/julianstephens/plantcheck/internal/checklist"
	"github.com/julianstephens/plantcheck/internal/config"
	"github.com/julianstephens/plantcheck/internal/constants"
	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/logger"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/queue"
	"github.com/julianstephens/plantcheck/internal/scanner"
	"github.com/julianstephens/plantcheck/internal/storage"
)

// Session is one operator's isolated workspace: its own store, catalog,
// queue and at most one open checklist. All methods are safe for
// concurrent use; events are handled one at a time.
type Session struct {
	ID string

	mu        sync.Mutex
	cfg       *config.Config
	store     storage.Provider
	catalog   *catalog.Catalog
	pager     *catalog.Pager
	queue     *queue.Queue
	scanner   scanner.Scanner
	submitter checklist.Submitter
	now       func() time.Time

	view      View
	mode      models.ConnectivityMode
	language  string
	selected  *models.EquipmentRecord
	checklist *checklist.Workflow
	closed    bool
}

type Option func(*Session)

func WithScanner(s scanner.Scanner) Option {
	return func(sess *Session) { sess.scanner = s }
}

func WithSubmitter(s checklist.Submitter) Option {
	return func(sess *Session) { sess.submitter = s }
}

func WithClock(now func() time.Time) Option {
	return func(sess *Session) { sess.now = now }
}

// New opens a session with a fresh seeded store.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		cfg:       cfg,
		scanner:   scanner.NewMock(),
		submitter: checklist.DelaySubmitter{Delay: cfg.Checklist.SubmissionDelay},
		now:       time.Now,
		view:      ViewCatalog,
		mode:      cfg.ConnectivityMode(),
		language:  i18n.Match(cfg.Session.Language),
	}
	for _, opt := range opts {
		opt(s)
	}

	store, err := storage.Open(cfg.Storage.Driver)
	if err != nil {
		return nil, err
	}
	s.store = store

	if err := s.load(); err != nil {
		store.Close()
		return nil, err
	}

	logger.Info("Session opened", "session", s.ID, "storage", store.Driver(), "mode", s.mode)
	return s, nil
}

func (s *Session) load() error {
	if err := catalog.Seed(s.store); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	cat, err := catalog.New(s.store)
	if err != nil {
		return err
	}
	s.catalog = cat
	s.pager = catalog.NewPager(s.cfg.Catalog.PageSize, s.cfg.Catalog.LoadMoreStep, cat.Len())

	q, err := queue.New(s.store, queue.WithClock(s.now))
	if err != nil {
		return err
	}
	s.queue = q
	if s.cfg.Session.DemoQueue {
		if err := q.SeedDemo(s.now()); err != nil {
			return fmt.Errorf("failed to seed demo queue: %w", err)
		}
	}
	return nil
}

// Close discards any open checklist and releases the store.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.discardChecklist()
	logger.Info("Session closed", "session", s.ID)
	return s.store.Close()
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) Mode() models.ConnectivityMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Operator is the configured name used for sign-offs and completions.
func (s *Session) Operator() string {
	return s.cfg.Session.Operator
}

// Selected returns the equipment of the open checklist, if any.
func (s *Session) Selected() (models.EquipmentRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return models.EquipmentRecord{}, false
	}
	return *s.selected, true
}

// Checklist returns the open checklist, or nil.
func (s *Session) Checklist() *checklist.Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checklist
}

func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

func (s *Session) Pager() *catalog.Pager { return s.pager }

func (s *Session) Queue() *queue.Queue { return s.queue }

// History returns the completed pre-start checks for an equipment id.
func (s *Session) History(equipmentID string) ([]models.PreStartRecord, error) {
	if _, err := s.catalog.Resolve(equipmentID); err != nil {
		return nil, err
	}
	return s.store.GetPreStartRecords(equipmentID)
}

// RaiseWorkRequest raises a work request on the open checklist using the
// session's current connectivity mode.
func (s *Session) RaiseWorkRequest(ctx context.Context, itemID string, acknowledgedIncomplete bool) (checklist.RaiseOutcome, error) {
	s.mu.Lock()
	wf, mode := s.checklist, s.mode
	s.mu.Unlock()

	if wf == nil {
		return checklist.RaiseOutcome{}, fmt.Errorf("no checklist is open: %w", errors.ErrInvalidTransition)
	}
	return wf.RaiseWorkRequest(ctx, itemID, mode, acknowledgedIncomplete)
}

// CompleteWorkRequest marks a queued work request done by the operator.
func (s *Session) CompleteWorkRequest(id string) (models.WorkRequestEntry, error) {
	by := s.cfg.Session.Operator
	if by == "" {
		by = constants.DefaultOperator
	}
	return s.queue.Complete(id, by, s.now())
}

func (s *Session) result() Result {
	r := Result{View: s.view, Mode: s.mode, Language: s.language}
	if s.selected != nil {
		eq := *s.selected
		r.Equipment = &eq
	}
	return r
}

// discardChecklist closes the open checklist. Callers hold s.mu.
func (s *Session) discardChecklist() {
	if s.checklist != nil {
		s.checklist.Close()
	}
	s.checklist = nil
	s.selected = nil
}
