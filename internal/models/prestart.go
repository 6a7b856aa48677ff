package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignOff is what the operator enters on the completion screen. Every field is optional.
type SignOff struct {
	Hours     string `json:"hours,omitempty"`
	Minutes   string `json:"minutes,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// TimeSpent parses the optional hours/minutes pair. Blank fields count as zero.
func (s SignOff) TimeSpent() (time.Duration, error) {
	hours, err := parseOptionalInt(s.Hours)
	if err != nil {
		return 0, fmt.Errorf("invalid hours: %w", err)
	}
	minutes, err := parseOptionalInt(s.Minutes)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes: %w", err)
	}
	if minutes > 59 {
		return 0, fmt.Errorf("invalid minutes: %d is more than 59", minutes)
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

func parseOptionalInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return n, nil
}

// PreStartRecord is an entry in an equipment item's task history.
type PreStartRecord struct {
	ID            string          `json:"id"`
	EquipmentID   string          `json:"equipment_id"`
	EquipmentName string          `json:"equipment_name"`
	Items         []ChecklistItem `json:"items"`
	Defects       int             `json:"defects"`
	TimeSpent     time.Duration   `json:"time_spent"`
	Notes         string          `json:"notes,omitempty"`
	Signature     string          `json:"signature,omitempty"`
	CompletedAt   time.Time       `json:"completed_at"`
}

// Clone returns a copy with its own item snapshots.
func (r PreStartRecord) Clone() PreStartRecord {
	c := r
	if r.Items != nil {
		c.Items = make([]ChecklistItem, len(r.Items))
		for i, it := range r.Items {
			c.Items[i] = it.Clone()
		}
	}
	return c
}
