package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/plantcheck/internal/models"
)

func (s *Store) AddPreStartRecord(rec models.PreStartRecord) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	itemsJSON, err := json.Marshal(rec.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal checklist items: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO prestart_records (
			id, equipment_id, equipment_name, items, defects,
			time_spent_ns, notes, signature, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID, rec.EquipmentID, rec.EquipmentName, string(itemsJSON), rec.Defects,
		int64(rec.TimeSpent), rec.Notes, rec.Signature, rec.CompletedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert pre-start record: %w", err)
	}
	return nil
}

func (s *Store) GetPreStartRecords(equipmentID string) ([]models.PreStartRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, equipment_id, equipment_name, items, defects,
			time_spent_ns, notes, signature, completed_at
		FROM prestart_records
		WHERE equipment_id = ?
		ORDER BY seq
	`, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pre-start records: %w", err)
	}
	defer rows.Close()

	var out []models.PreStartRecord
	for rows.Next() {
		var (
			rec         models.PreStartRecord
			itemsJSON   string
			timeSpent   int64
			completedAt string
		)
		if err := rows.Scan(
			&rec.ID, &rec.EquipmentID, &rec.EquipmentName, &itemsJSON, &rec.Defects,
			&timeSpent, &rec.Notes, &rec.Signature, &completedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pre-start record: %w", err)
		}
		if err := json.Unmarshal([]byte(itemsJSON), &rec.Items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal checklist items: %w", err)
		}
		rec.TimeSpent = time.Duration(timeSpent)
		t, err := time.Parse(time.RFC3339Nano, completedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completed_at: %w", err)
		}
		rec.CompletedAt = t
		out = append(out, rec)
	}
	return out, rows.Err()
}
