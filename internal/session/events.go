package session

import (
	"github.com/julianstephens/plantcheck/internal/checklist"
	"github.com/julianstephens/plantcheck/internal/models"
)

// View is the screen a session is showing.
type View int

const (
	ViewCatalog View = iota
	ViewChecklist
	ViewCompletion
	ViewQueue
	ViewLanguageSelector
	ViewMenu
)

func (v View) String() string {
	switch v {
	case ViewCatalog:
		return "catalog"
	case ViewChecklist:
		return "checklist"
	case ViewCompletion:
		return "completion"
	case ViewQueue:
		return "queue"
	case ViewLanguageSelector:
		return "language"
	case ViewMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Event is a user action sent to Dispatch.
type Event interface {
	isEvent()
}

// OpenEquipment opens a fresh checklist for an equipment id.
type OpenEquipment struct{ ID string }

// Scan reads a code from the scanner and opens the matching equipment.
type Scan struct{}

// Back leaves the current view. ThenOpenQueue opens the queue viewer afterwards.
type Back struct{ ThenOpenQueue bool }

// Continue asks to move from the checklist to completion.
type Continue struct{ Acknowledged bool }

// FinishCompletion signs off the checklist and records it in task history.
type FinishCompletion struct{ SignOff models.SignOff }

type OpenQueue struct{}

type OpenLanguageSelector struct{}

type SelectLanguage struct{ Code string }

type OpenMenu struct{}

type ToggleConnectivity struct{}

func (OpenEquipment) isEvent()        {}
func (Scan) isEvent()                 {}
func (Back) isEvent()                 {}
func (Continue) isEvent()             {}
func (FinishCompletion) isEvent()     {}
func (OpenQueue) isEvent()            {}
func (OpenLanguageSelector) isEvent() {}
func (SelectLanguage) isEvent()       {}
func (OpenMenu) isEvent()             {}
func (ToggleConnectivity) isEvent()   {}

// Result describes the session after an event was handled.
type Result struct {
	View      View
	Mode      models.ConnectivityMode
	Language  string
	Equipment *models.EquipmentRecord
	// Continue is set for Continue events.
	Continue checklist.ContinueOutcome
	// Record is set once FinishCompletion has saved the pre-start check.
	Record *models.PreStartRecord
}
