package models

import "strings"

type ItemStatus string

const (
	StatusPending ItemStatus = "pending"
	StatusOK      ItemStatus = "ok"
	StatusDefect  ItemStatus = "defect"
)

type WorkRequestState string

const (
	RequestIdle       WorkRequestState = "idle"
	RequestSubmitting WorkRequestState = "submitting"
	RequestSent       WorkRequestState = "sent"
	RequestQueued     WorkRequestState = "queued"
	// RequestFailed is only reached when a submitter reports a transport error.
	RequestFailed WorkRequestState = "failed"
)

// Terminal reports whether no further submission is allowed from this state.
func (s WorkRequestState) Terminal() bool {
	return s == RequestSent || s == RequestQueued
}

// PhotoRef points at an attached photo. The workflow never reads the image.
type PhotoRef struct {
	URI string `json:"uri"`
}

// ChecklistTemplateItem is one configured pre-start check.
type ChecklistTemplateItem struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
}

// DefaultChecklistTemplate mirrors the four checks of the truck daily safety check.
var DefaultChecklistTemplate = []ChecklistTemplateItem{
	{ID: "1", Title: "Fluid levels check"},
	{ID: "2", Title: "Tire condition and pressure"},
	{ID: "3", Title: "Lights and indicators"},
	{ID: "4", Title: "Brake system"},
}

type ChecklistItem struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Status           ItemStatus       `json:"status"`
	Expanded         bool             `json:"expanded"`
	Comments         string           `json:"comments,omitempty"`
	Photos           []PhotoRef       `json:"photos,omitempty"`
	WorkRequestState WorkRequestState `json:"work_request_state"`
}

// HasDetails reports whether the item carries a non-blank comment or at least one photo.
func (i ChecklistItem) HasDetails() bool {
	return strings.TrimSpace(i.Comments) != "" || len(i.Photos) > 0
}

// Clone returns a copy that does not share the photo slice.
func (i ChecklistItem) Clone() ChecklistItem {
	c := i
	if i.Photos != nil {
		c.Photos = append([]PhotoRef(nil), i.Photos...)
	}
	return c
}
