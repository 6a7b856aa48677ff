package queue

import (
	"fmt"
	"time"

	"github.com/julianstephens/plantcheck/internal/models"
)

func ptr[T any](v T) *T { return &v }

// SeedDemo fills an empty queue with two queued defects and two completed
// requests, dated relative to now.
func (q *Queue) SeedDemo(now time.Time) error {
	counts, err := q.Counts()
	if err != nil {
		return err
	}
	if counts.Queued+counts.Sent > 0 {
		return nil
	}

	year := now.Year()
	queued := []models.WorkRequestEntry{
		{
			EquipmentID: "0401", EquipmentName: "Titan-950 Ultra Hauler", TaskTitle: "Fluid levels check",
			Status: models.RequestStatusDefect, Priority: models.PriorityHigh,
			Comments: "Low hydraulic fluid detected",
			Photos:   []models.PhotoRef{{URI: "demo://defect-1.jpg"}, {URI: "demo://defect-2.jpg"}},
			CreatedAt: now,
		},
		{
			EquipmentID: "T001", EquipmentName: "Truck 1", TaskTitle: "Tire condition and pressure",
			Status: models.RequestStatusDefect, Priority: models.PriorityMedium,
			Comments:  "Front left tire showing wear",
			Photos:    []models.PhotoRef{{URI: "demo://tire-1.jpg"}},
			CreatedAt: now.Add(-time.Hour),
		},
	}
	sent := []models.WorkRequestEntry{
		{
			EquipmentID: "E002", EquipmentName: "Excavator 2", TaskTitle: "Engine oil change",
			Status: models.RequestStatusSent, Priority: models.PriorityLow,
			Comments:    "Regular maintenance completed",
			CreatedAt:   now.Add(-24 * time.Hour),
			CompletedAt: ptr(now.Add(-12 * time.Hour)),
			CompletedBy: ptr("John Smith"),
		},
		{
			EquipmentID: "WL001", EquipmentName: "Wheel Loader 1", TaskTitle: "Brake system inspection",
			Status: models.RequestStatusSent, Priority: models.PriorityHigh,
			Comments:    "Brake pads replaced, system tested",
			CreatedAt:   now.Add(-48 * time.Hour),
			CompletedAt: ptr(now.Add(-36 * time.Hour)),
			CompletedBy: ptr("Sarah Johnson"),
		},
	}

	n := 0
	for _, batch := range []struct {
		entries []models.WorkRequestEntry
		mode    models.ConnectivityMode
	}{{queued, models.Offline}, {sent, models.Online}} {
		for _, e := range batch.entries {
			n++
			e.Reference = fmt.Sprintf("WR-%d-%03d", year, n)
			if _, err := q.Enqueue(e, batch.mode); err != nil {
				return err
			}
		}
	}
	return nil
}
