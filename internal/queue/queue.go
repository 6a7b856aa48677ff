package queue

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/logger"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/storage"
)

// Queue splits a session's work requests into queued (created offline,
// awaiting send) and sent. Entries are never dropped or deduplicated.
type Queue struct {
	mu    sync.Mutex
	store storage.Provider
	now   func() time.Time
	seq   int
}

type Option func(*Queue)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

func New(store storage.Provider, opts ...Option) (*Queue, error) {
	q := &Queue{store: store, now: time.Now}
	for _, opt := range opts {
		opt(q)
	}

	counts, err := store.CountWorkRequests()
	if err != nil {
		return nil, fmt.Errorf("failed to read work requests: %w", err)
	}
	q.seq = counts.Queued + counts.Sent
	return q, nil
}

// Enqueue appends entry to the collection for mode and returns it as stored.
// A missing id, reference or creation time is filled in.
func (q *Queue) Enqueue(entry models.WorkRequestEntry, mode models.ConnectivityMode) (models.WorkRequestEntry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = q.now()
	}
	if entry.Reference == "" {
		entry.Reference = fmt.Sprintf("WR-%d-%03d", entry.CreatedAt.Year(), q.seq+1)
	}

	collection := models.CollectionFor(mode)
	switch {
	case collection == models.CollectionSent:
		entry.Status = models.RequestStatusSent
	case entry.Status == "" || entry.Status == models.RequestStatusSent:
		entry.Status = models.RequestStatusQueued
	}

	if err := q.store.AddWorkRequest(collection, entry); err != nil {
		return models.WorkRequestEntry{}, fmt.Errorf("failed to enqueue work request: %w", err)
	}
	q.seq++

	logger.Info("Work request enqueued",
		"reference", entry.Reference,
		"equipment", entry.EquipmentID,
		"task", entry.TaskTitle,
		"collection", collection,
	)
	return entry, nil
}

// ListQueued returns the queued entries, oldest first.
func (q *Queue) ListQueued() ([]models.WorkRequestEntry, error) {
	return q.store.GetWorkRequests(models.CollectionQueued)
}

// ListSent returns the sent entries, oldest first.
func (q *Queue) ListSent() ([]models.WorkRequestEntry, error) {
	return q.store.GetWorkRequests(models.CollectionSent)
}

func (q *Queue) Counts() (models.QueueCounts, error) {
	return q.store.CountWorkRequests()
}

// Complete moves a queued entry to sent, stamping who completed it and when.
func (q *Queue) Complete(id, by string, at time.Time) (models.WorkRequestEntry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	entry, collection, err := q.store.GetWorkRequest(id)
	if err != nil {
		return models.WorkRequestEntry{}, err
	}
	if collection != models.CollectionQueued {
		return models.WorkRequestEntry{}, fmt.Errorf("work request %s is already %s: %w", entry.Reference, collection, errors.ErrInvalidTransition)
	}

	entry.Status = models.RequestStatusSent
	entry.CompletedAt = &at
	entry.CompletedBy = &by
	if err := q.store.MoveWorkRequest(models.CollectionSent, entry); err != nil {
		return models.WorkRequestEntry{}, fmt.Errorf("failed to complete work request: %w", err)
	}

	logger.Info("Work request completed", "reference", entry.Reference, "by", by)
	return entry, nil
}
