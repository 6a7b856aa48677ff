package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/models"
)

const workRequestColumns = `id, collection, reference, equipment_id, equipment_name, task_title,
	status, priority, comments, photos, created_at, completed_at, completed_by`

type rowScanner interface {
	Scan(dest ...any) error
}

func workRequestArgs(c models.Collection, e models.WorkRequestEntry) ([]any, error) {
	photos := e.Photos
	if photos == nil {
		photos = []models.PhotoRef{}
	}
	photosJSON, err := json.Marshal(photos)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal photos: %w", err)
	}

	var completedAt *string
	if e.CompletedAt != nil {
		str := e.CompletedAt.Format(time.RFC3339Nano)
		completedAt = &str
	}

	return []any{
		e.ID, string(c), e.Reference, e.EquipmentID, e.EquipmentName, e.TaskTitle,
		string(e.Status), string(e.Priority), e.Comments, string(photosJSON),
		e.CreatedAt.Format(time.RFC3339Nano), completedAt, e.CompletedBy,
	}, nil
}

func scanWorkRequest(row rowScanner) (models.WorkRequestEntry, models.Collection, error) {
	var (
		e           models.WorkRequestEntry
		collection  string
		status      string
		priority    string
		photosJSON  string
		createdAt   string
		completedAt sql.NullString
		completedBy sql.NullString
	)
	if err := row.Scan(
		&e.ID, &collection, &e.Reference, &e.EquipmentID, &e.EquipmentName, &e.TaskTitle,
		&status, &priority, &e.Comments, &photosJSON, &createdAt, &completedAt, &completedBy,
	); err != nil {
		return models.WorkRequestEntry{}, "", err
	}

	e.Status = models.RequestStatus(status)
	e.Priority = models.Priority(priority)

	if err := json.Unmarshal([]byte(photosJSON), &e.Photos); err != nil {
		return models.WorkRequestEntry{}, "", fmt.Errorf("failed to unmarshal photos: %w", err)
	}
	if len(e.Photos) == 0 {
		e.Photos = nil
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.WorkRequestEntry{}, "", fmt.Errorf("failed to parse created_at: %w", err)
	}
	e.CreatedAt = t

	if completedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, completedAt.String)
		if err != nil {
			return models.WorkRequestEntry{}, "", fmt.Errorf("failed to parse completed_at: %w", err)
		}
		e.CompletedAt = &t
	}
	if completedBy.Valid {
		by := completedBy.String
		e.CompletedBy = &by
	}

	return e, models.Collection(collection), nil
}

func (s *Store) AddWorkRequest(c models.Collection, entry models.WorkRequestEntry) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	args, err := workRequestArgs(c, entry)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO work_requests (`+workRequestColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	if err != nil {
		return fmt.Errorf("failed to insert work request: %w", err)
	}
	return nil
}

func (s *Store) GetWorkRequest(id string) (models.WorkRequestEntry, models.Collection, error) {
	db, err := s.conn()
	if err != nil {
		return models.WorkRequestEntry{}, "", err
	}

	row := db.QueryRow(`SELECT `+workRequestColumns+` FROM work_requests WHERE id = ?`, id)
	e, c, err := scanWorkRequest(row)
	if err == sql.ErrNoRows {
		return models.WorkRequestEntry{}, "", errors.NotFound("work request", id)
	}
	if err != nil {
		return models.WorkRequestEntry{}, "", fmt.Errorf("failed to get work request: %w", err)
	}
	return e, c, nil
}

func (s *Store) GetWorkRequests(c models.Collection) ([]models.WorkRequestEntry, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT `+workRequestColumns+` FROM work_requests
		WHERE collection = ? ORDER BY seq`, string(c))
	if err != nil {
		return nil, fmt.Errorf("failed to list work requests: %w", err)
	}
	defer rows.Close()

	var out []models.WorkRequestEntry
	for rows.Next() {
		e, _, err := scanWorkRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work request: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// MoveWorkRequest deletes and reinserts the row so it takes the next seq.
func (s *Store) MoveWorkRequest(c models.Collection, entry models.WorkRequestEntry) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	args, err := workRequestArgs(c, entry)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM work_requests WHERE id = ?`, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to remove work request: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("work request", entry.ID)
	}
	if _, err := tx.Exec(`INSERT INTO work_requests (`+workRequestColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...); err != nil {
		return fmt.Errorf("failed to insert work request: %w", err)
	}

	return tx.Commit()
}

func (s *Store) CountWorkRequests() (models.QueueCounts, error) {
	db, err := s.conn()
	if err != nil {
		return models.QueueCounts{}, err
	}

	var counts models.QueueCounts
	err = db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN collection = 'queued' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN collection = 'sent' THEN 1 ELSE 0 END), 0)
		FROM work_requests
	`).Scan(&counts.Queued, &counts.Sent)
	if err != nil {
		return models.QueueCounts{}, fmt.Errorf("failed to count work requests: %w", err)
	}
	return counts, nil
}
