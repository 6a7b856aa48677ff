package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/plantcheck/internal/checklist"
	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/i18n"
	"github.com/julianstephens/plantcheck/internal/logger"
	"github.com/julianstephens/plantcheck/internal/models"
)

// Dispatch applies one event. On error the session is left as it was.
func (s *Session) Dispatch(ctx context.Context, ev Event) (Result, error) {
	if _, ok := ev.(Scan); ok {
		return s.scan(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Result{}, fmt.Errorf("session %s is closed: %w", s.ID, errors.ErrInvalidTransition)
	}

	from := s.view
	var (
		res Result
		err error
	)
	switch e := ev.(type) {
	case OpenEquipment:
		res, err = s.openEquipment(e.ID)
	case Back:
		res, err = s.back(e.ThenOpenQueue)
	case Continue:
		res, err = s.continueChecklist(e.Acknowledged)
	case FinishCompletion:
		res, err = s.finishCompletion(e.SignOff)
	case OpenQueue:
		res, err = s.openOverlay(ViewQueue)
	case OpenLanguageSelector:
		res, err = s.openOverlay(ViewLanguageSelector)
	case OpenMenu:
		res, err = s.openOverlay(ViewMenu)
	case SelectLanguage:
		res, err = s.selectLanguage(e.Code)
	case ToggleConnectivity:
		s.mode = s.mode.Toggle()
		logger.Info("Connectivity changed", "session", s.ID, "mode", s.mode)
		res = s.result()
	default:
		err = fmt.Errorf("unknown event %T", ev)
	}
	if err != nil {
		return Result{}, err
	}

	if from != s.view {
		logger.Debug("View changed", "session", s.ID, "from", from, "to", s.view)
	}
	return res, nil
}

func (s *Session) invalid(ev string) error {
	return fmt.Errorf("%s from %s view: %w", ev, s.view, errors.ErrInvalidTransition)
}

func (s *Session) openEquipment(id string) (Result, error) {
	if s.view != ViewCatalog {
		return Result{}, s.invalid("open equipment")
	}
	eq, err := s.catalog.Resolve(id)
	if err != nil {
		return Result{}, err
	}

	s.discardChecklist()
	s.selected = &eq
	s.checklist = checklist.New(eq, s.cfg.Checklist.Template, s.queue,
		checklist.WithSubmitter(s.submitter),
		checklist.WithClock(s.now),
	)
	s.view = ViewChecklist
	return s.result(), nil
}

// scan reads the scanner outside s.mu, then opens the result like OpenEquipment.
func (s *Session) scan(ctx context.Context) (Result, error) {
	s.mu.Lock()
	closed, view := s.closed, s.view
	s.mu.Unlock()
	if closed {
		return Result{}, fmt.Errorf("session %s is closed: %w", s.ID, errors.ErrInvalidTransition)
	}
	if view != ViewCatalog {
		return Result{}, fmt.Errorf("scan from %s view: %w", view, errors.ErrInvalidTransition)
	}

	code, err := s.scanner.Scan(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("scan failed: %w", err)
	}
	logger.Debug("Code scanned", "session", s.ID, "code", code)
	return s.Dispatch(ctx, OpenEquipment{ID: code})
}

// back pops one level from Completion and returns to the catalog from
// everywhere else, discarding the checklist.
func (s *Session) back(thenOpenQueue bool) (Result, error) {
	if s.view == ViewCompletion {
		s.view = ViewChecklist
	} else {
		s.discardChecklist()
		s.view = ViewCatalog
	}
	if thenOpenQueue {
		s.discardChecklist()
		s.view = ViewQueue
	}
	return s.result(), nil
}

func (s *Session) continueChecklist(acknowledged bool) (Result, error) {
	if s.view != ViewChecklist || s.checklist == nil {
		return Result{}, s.invalid("continue")
	}
	outcome := s.checklist.Continue(acknowledged)
	if outcome == checklist.Proceed {
		s.view = ViewCompletion
	}
	res := s.result()
	res.Continue = outcome
	return res, nil
}

func (s *Session) finishCompletion(signOff models.SignOff) (Result, error) {
	if s.view != ViewCompletion || s.checklist == nil {
		return Result{}, s.invalid("finish completion")
	}
	spent, err := signOff.TimeSpent()
	if err != nil {
		return Result{}, err
	}

	eq := s.checklist.Equipment()
	rec := models.PreStartRecord{
		ID:            uuid.NewString(),
		EquipmentID:   eq.ID,
		EquipmentName: eq.Name,
		Items:         s.checklist.Items(),
		Defects:       s.checklist.Defects(),
		TimeSpent:     spent,
		Notes:         signOff.Notes,
		Signature:     signOff.Signature,
		CompletedAt:   s.now(),
	}
	if rec.Signature == "" {
		rec.Signature = s.cfg.Session.Operator
	}
	if err := s.store.AddPreStartRecord(rec); err != nil {
		return Result{}, fmt.Errorf("failed to save pre-start check: %w", err)
	}
	logger.Info("Pre-start check completed", "session", s.ID, "equipment", eq.ID, "defects", rec.Defects)

	s.discardChecklist()
	s.view = ViewCatalog
	res := s.result()
	res.Record = &rec
	return res, nil
}

// openOverlay opens a view reachable from the catalog and its overlays.
func (s *Session) openOverlay(v View) (Result, error) {
	switch s.view {
	case ViewChecklist, ViewCompletion:
		return Result{}, s.invalid("open " + v.String())
	}
	s.view = v
	return s.result(), nil
}

func (s *Session) selectLanguage(code string) (Result, error) {
	if s.view != ViewLanguageSelector {
		return Result{}, s.invalid("select language")
	}
	s.language = i18n.Match(code)
	s.view = ViewCatalog
	return s.result(), nil
}
