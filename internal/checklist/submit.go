package checklist

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/plantcheck/internal/models"
)

// Submitter transmits a work request. It blocks until the request is
// accepted or ctx ends.
type Submitter interface {
	Submit(ctx context.Context, entry models.WorkRequestEntry, mode models.ConnectivityMode) error
}

// DelaySubmitter stands in for the network: it waits Delay and succeeds.
type DelaySubmitter struct {
	Delay time.Duration
}

func (d DelaySubmitter) Submit(ctx context.Context, _ models.WorkRequestEntry, _ models.ConnectivityMode) error {
	if d.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sink receives finished work requests. queue.Queue satisfies it.
type Sink interface {
	Enqueue(entry models.WorkRequestEntry, mode models.ConnectivityMode) (models.WorkRequestEntry, error)
}

// Submission is the handle for one in-flight work request.
type Submission struct {
	ItemID string
	Mode   models.ConnectivityMode

	done  chan struct{}
	once  sync.Once
	state models.WorkRequestState
	entry models.WorkRequestEntry
	err   error
}

func newSubmission(itemID string, mode models.ConnectivityMode) *Submission {
	return &Submission{ItemID: itemID, Mode: mode, done: make(chan struct{})}
}

func (s *Submission) finish(state models.WorkRequestState, entry models.WorkRequestEntry, err error) {
	s.once.Do(func() {
		s.state = state
		s.entry = entry
		s.err = err
		close(s.done)
	})
}

// Done is closed once the submission has settled.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the submission settles or ctx ends. On success it
// returns the enqueued entry.
func (s *Submission) Wait(ctx context.Context) (models.WorkRequestEntry, error) {
	select {
	case <-s.done:
		return s.entry, s.err
	case <-ctx.Done():
		return models.WorkRequestEntry{}, ctx.Err()
	}
}

// State is the item's work request state after the submission settled.
// Only meaningful once Done is closed.
func (s *Submission) State() models.WorkRequestState {
	<-s.done
	return s.state
}
