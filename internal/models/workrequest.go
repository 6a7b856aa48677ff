package models

import (
	"fmt"
	"time"
)

type ConnectivityMode string

const (
	Online  ConnectivityMode = "online"
	Offline ConnectivityMode = "offline"
)

func (m ConnectivityMode) Toggle() ConnectivityMode {
	if m == Offline {
		return Online
	}
	return Offline
}

// ParseConnectivityMode returns an error for anything other than online/offline.
func ParseConnectivityMode(s string) (ConnectivityMode, error) {
	switch ConnectivityMode(s) {
	case Online, Offline:
		return ConnectivityMode(s), nil
	default:
		return "", fmt.Errorf("invalid connectivity mode %q (expected online or offline)", s)
	}
}

type RequestStatus string

const (
	RequestStatusQueued RequestStatus = "queued"
	RequestStatusDefect RequestStatus = "defect"
	RequestStatusSent   RequestStatus = "sent"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Collection names the two queue partitions.
type Collection string

const (
	CollectionQueued Collection = "queued"
	CollectionSent   Collection = "sent"
)

// CollectionFor routes a submission made in the given connectivity mode.
func CollectionFor(mode ConnectivityMode) Collection {
	if mode == Offline {
		return CollectionQueued
	}
	return CollectionSent
}

type WorkRequestEntry struct {
	ID            string        `json:"id"`
	Reference     string        `json:"reference"` // WR-2025-001
	EquipmentID   string        `json:"equipment_id"`
	EquipmentName string        `json:"equipment_name"`
	TaskTitle     string        `json:"task_title"`
	Status        RequestStatus `json:"status"`
	Priority      Priority      `json:"priority"`
	Comments      string        `json:"comments,omitempty"`
	Photos        []PhotoRef    `json:"photos,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
	CompletedBy   *string       `json:"completed_by,omitempty"`
}

// Clone returns a copy that shares no photos or completion fields.
func (e WorkRequestEntry) Clone() WorkRequestEntry {
	c := e
	if e.Photos != nil {
		c.Photos = append([]PhotoRef(nil), e.Photos...)
	}
	if e.CompletedAt != nil {
		at := *e.CompletedAt
		c.CompletedAt = &at
	}
	if e.CompletedBy != nil {
		by := *e.CompletedBy
		c.CompletedBy = &by
	}
	return c
}

// QueueCounts backs the queue badges.
type QueueCounts struct {
	Queued int `json:"queued"`
	Sent   int `json:"sent"`
}
