package checklist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/logger"
	"github.com/julianstephens/plantcheck/internal/models"
)

// RaiseOutcome is the result of RaiseWorkRequest. Exactly one of the fields
// is set.
type RaiseOutcome struct {
	// ConfirmationRequired means the item has no comments or photos and the
	// caller must ask before retrying with acknowledgement.
	ConfirmationRequired bool
	Submission           *Submission
}

// ContinueOutcome says whether the operator may leave the checklist.
type ContinueOutcome int

const (
	// NotReady: at least one item is still pending.
	NotReady ContinueOutcome = iota
	// ConfirmationRequired: every item is evaluated but some defects have no
	// details. Continue(true) proceeds.
	ConfirmationRequired
	Proceed
)

func (o ContinueOutcome) String() string {
	switch o {
	case NotReady:
		return "not_ready"
	case ConfirmationRequired:
		return "confirmation_required"
	default:
		return "proceed"
	}
}

// Workflow is one pre-start checklist for one piece of equipment. It is
// safe for concurrent use.
type Workflow struct {
	mu        sync.Mutex
	equipment models.EquipmentRecord
	items     []models.ChecklistItem
	index     map[string]int

	sink      Sink
	submitter Submitter
	now       func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
}

type Option func(*Workflow)

func WithSubmitter(s Submitter) Option {
	return func(w *Workflow) { w.submitter = s }
}

func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

// New opens a checklist for equipment with one pending item per template entry.
func New(equipment models.EquipmentRecord, template []models.ChecklistTemplateItem, sink Sink, opts ...Option) *Workflow {
	w := &Workflow{
		equipment: equipment,
		items:     make([]models.ChecklistItem, len(template)),
		index:     make(map[string]int, len(template)),
		sink:      sink,
		submitter: DelaySubmitter{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())

	for i, t := range template {
		w.items[i] = models.ChecklistItem{
			ID:               t.ID,
			Title:            t.Title,
			Status:           models.StatusPending,
			WorkRequestState: models.RequestIdle,
		}
		w.index[t.ID] = i
	}
	return w
}

func (w *Workflow) Equipment() models.EquipmentRecord {
	return w.equipment
}

// item returns a pointer into w.items. Callers hold w.mu.
func (w *Workflow) item(id string) (*models.ChecklistItem, error) {
	i, ok := w.index[id]
	if !ok {
		return nil, errors.NotFound("checklist item", id)
	}
	return &w.items[i], nil
}

// SetStatus marks an item ok or defect. A defect always expands the item.
func (w *Workflow) SetStatus(itemID string, status models.ItemStatus) error {
	if status != models.StatusOK && status != models.StatusDefect {
		return fmt.Errorf("cannot set item %s to %q: %w", itemID, status, errors.ErrInvalidTransition)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	it, err := w.item(itemID)
	if err != nil {
		return err
	}
	it.Status = status
	if status == models.StatusDefect {
		it.Expanded = true
	}
	logger.Debug("Checklist item evaluated", "equipment", w.equipment.ID, "item", itemID, "status", status)
	return nil
}

func (w *Workflow) ToggleExpanded(itemID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	it, err := w.item(itemID)
	if err != nil {
		return err
	}
	it.Expanded = !it.Expanded
	return nil
}

func (w *Workflow) SetComment(itemID, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	it, err := w.item(itemID)
	if err != nil {
		return err
	}
	it.Comments = text
	return nil
}

func (w *Workflow) AddPhoto(itemID string, ref models.PhotoRef) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	it, err := w.item(itemID)
	if err != nil {
		return err
	}
	it.Photos = append(it.Photos, ref)
	return nil
}

// RemovePhoto deletes the photo at index. A bad index leaves the list alone.
func (w *Workflow) RemovePhoto(itemID string, index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	it, err := w.item(itemID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(it.Photos) {
		return fmt.Errorf("photo %d of item %s (has %d): %w", index, itemID, len(it.Photos), errors.ErrIndexOutOfRange)
	}
	photos := make([]models.PhotoRef, 0, len(it.Photos)-1)
	photos = append(photos, it.Photos[:index]...)
	photos = append(photos, it.Photos[index+1:]...)
	if len(photos) == 0 {
		photos = nil
	}
	it.Photos = photos
	return nil
}

// RaiseWorkRequest starts submitting a work request for an item.
//
// An item without comments or photos needs acknowledgedIncomplete; without
// it nothing changes and the outcome asks for confirmation. Otherwise the
// item moves to Submitting and a Submission is returned. When it succeeds
// the item becomes Sent (online) or Queued (offline) and exactly one entry
// is enqueued. Cancelling ctx or closing the workflow abandons the
// submission without enqueueing anything.
//
// Raising again while Submitting, or after Sent/Queued, is ErrInvalidTransition.
func (w *Workflow) RaiseWorkRequest(ctx context.Context, itemID string, mode models.ConnectivityMode, acknowledgedIncomplete bool) (RaiseOutcome, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return RaiseOutcome{}, fmt.Errorf("checklist for %s is closed: %w", w.equipment.ID, errors.ErrInvalidTransition)
	}

	it, err := w.item(itemID)
	if err != nil {
		return RaiseOutcome{}, err
	}
	if it.WorkRequestState == models.RequestSubmitting || it.WorkRequestState.Terminal() {
		return RaiseOutcome{}, fmt.Errorf("item %s work request is %s: %w", itemID, it.WorkRequestState, errors.ErrInvalidTransition)
	}
	if !it.HasDetails() && !acknowledgedIncomplete {
		return RaiseOutcome{ConfirmationRequired: true}, nil
	}

	it.WorkRequestState = models.RequestSubmitting
	entry := w.entryFor(*it, mode)
	sub := newSubmission(itemID, mode)

	subCtx, cancel := context.WithCancel(w.ctx)
	stop := context.AfterFunc(ctx, cancel)

	logger.Debug("Work request submitting", "equipment", w.equipment.ID, "item", itemID, "mode", mode)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer cancel()
		defer stop()

		err := w.submitter.Submit(subCtx, entry, mode)
		w.settle(subCtx, sub, entry, err)
	}()

	return RaiseOutcome{Submission: sub}, nil
}

func (w *Workflow) entryFor(it models.ChecklistItem, mode models.ConnectivityMode) models.WorkRequestEntry {
	status := models.RequestStatusSent
	if mode == models.Offline {
		status = models.RequestStatusQueued
		if it.Status == models.StatusDefect {
			status = models.RequestStatusDefect
		}
	}
	priority := models.PriorityMedium
	if it.Status == models.StatusDefect {
		priority = models.PriorityHigh
	}

	c := it.Clone()
	return models.WorkRequestEntry{
		EquipmentID:   w.equipment.ID,
		EquipmentName: w.equipment.Name,
		TaskTitle:     it.Title,
		Status:        status,
		Priority:      priority,
		Comments:      c.Comments,
		Photos:        c.Photos,
	}
}

// settle records the result of a submission under the workflow lock.
func (w *Workflow) settle(ctx context.Context, sub *Submission, entry models.WorkRequestEntry, submitErr error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	it, err := w.item(sub.ItemID)
	if err != nil {
		sub.finish(models.RequestFailed, models.WorkRequestEntry{}, err)
		return
	}

	if w.closed {
		sub.finish(it.WorkRequestState, models.WorkRequestEntry{}, fmt.Errorf("checklist closed: %w", context.Canceled))
		return
	}
	if submitErr == nil {
		submitErr = ctx.Err()
	}
	if submitErr != nil {
		it.WorkRequestState = models.RequestFailed
		logger.Warn("Work request failed", "equipment", w.equipment.ID, "item", sub.ItemID, "error", submitErr)
		sub.finish(models.RequestFailed, models.WorkRequestEntry{}, submitErr)
		return
	}

	entry.CreatedAt = w.now()
	stored, err := w.sink.Enqueue(entry, sub.Mode)
	if err != nil {
		it.WorkRequestState = models.RequestFailed
		logger.Error("Work request could not be enqueued", "equipment", w.equipment.ID, "item", sub.ItemID, "error", err)
		sub.finish(models.RequestFailed, models.WorkRequestEntry{}, err)
		return
	}

	if sub.Mode == models.Offline {
		it.WorkRequestState = models.RequestQueued
	} else {
		it.WorkRequestState = models.RequestSent
	}
	logger.Debug("Work request settled", "item", sub.ItemID, "state", it.WorkRequestState, "reference", stored.Reference)
	sub.finish(it.WorkRequestState, stored, nil)
}

// Close discards the checklist. In-flight submissions are cancelled and
// Close waits for them to settle; none of them enqueue anything.
func (w *Workflow) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
	logger.Debug("Checklist discarded", "equipment", w.equipment.ID)
}

// Items returns a snapshot of every item in template order.
func (w *Workflow) Items() []models.ChecklistItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]models.ChecklistItem, len(w.items))
	for i, it := range w.items {
		out[i] = it.Clone()
	}
	return out
}

// Item returns a snapshot of one item.
func (w *Workflow) Item(itemID string) (models.ChecklistItem, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	it, err := w.item(itemID)
	if err != nil {
		return models.ChecklistItem{}, err
	}
	return it.Clone(), nil
}

// Progress returns how many items have been evaluated out of the total.
func (w *Workflow) Progress() (evaluated, total int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, it := range w.items {
		if it.Status != models.StatusPending {
			evaluated++
		}
	}
	return evaluated, len(w.items)
}

// CanContinue reports whether every item has been evaluated.
func (w *Workflow) CanContinue() bool {
	done, total := w.Progress()
	return done == total
}

// IncompleteDefects returns the defect items with neither comments nor photos.
func (w *Workflow) IncompleteDefects() []models.ChecklistItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []models.ChecklistItem
	for _, it := range w.items {
		if it.Status == models.StatusDefect && !it.HasDetails() {
			out = append(out, it.Clone())
		}
	}
	return out
}

// Continue combines CanContinue and IncompleteDefects into one decision.
func (w *Workflow) Continue(acknowledged bool) ContinueOutcome {
	if !w.CanContinue() {
		return NotReady
	}
	if len(w.IncompleteDefects()) > 0 && !acknowledged {
		return ConfirmationRequired
	}
	return Proceed
}

// Defects counts items marked defect.
func (w *Workflow) Defects() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := 0
	for _, it := range w.items {
		if it.Status == models.StatusDefect {
			n++
		}
	}
	return n
}
