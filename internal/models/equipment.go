package models

import "strings"

type SortKey string

const (
	SortByName   SortKey = "name"
	SortByID     SortKey = "id"
	SortByBranch SortKey = "branch"
)

// SortKeys lists the catalog orderings in the order the sort menu offers them.
var SortKeys = []SortKey{SortByName, SortByID, SortByBranch}

// ParseSortKey accepts a sort key case-insensitively, defaulting to name for
// anything it does not recognise.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByID:
		return SortByID
	case SortByBranch:
		return SortByBranch
	default:
		return SortByName
	}
}

// Next cycles name -> id -> branch -> name.
func (k SortKey) Next() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortByName
}

type EquipmentRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Branch     string `json:"branch"`
	Bookmarked bool   `json:"bookmarked"`
}

// Key returns the field a sort key orders by.
func (e EquipmentRecord) Key(k SortKey) string {
	switch k {
	case SortByID:
		return e.ID
	case SortByBranch:
		return e.Branch
	default:
		return e.Name
	}
}

// Label is the "0401 | Titan-950 Ultra Hauler" form used in headers and task lists.
func (e EquipmentRecord) Label() string {
	return e.ID + " | " + e.Name
}

// BookmarkChange is returned by a bookmark toggle so the caller can show a
// transient notification.
type BookmarkChange struct {
	ID         string
	Name       string
	Bookmarked bool
}
