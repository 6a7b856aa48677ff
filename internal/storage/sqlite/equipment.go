package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/models"
)

func (s *Store) SaveEquipment(records ...models.EquipmentRecord) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO equipment (id, name, branch, bookmarked)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			branch = excluded.branch,
			bookmarked = excluded.bookmarked
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare equipment insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.ID, r.Name, r.Branch, r.Bookmarked); err != nil {
			return fmt.Errorf("failed to save equipment %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

func (s *Store) GetEquipment(id string) (models.EquipmentRecord, error) {
	db, err := s.conn()
	if err != nil {
		return models.EquipmentRecord{}, err
	}

	var r models.EquipmentRecord
	err = db.QueryRow(`SELECT id, name, branch, bookmarked FROM equipment WHERE id = ?`, id).
		Scan(&r.ID, &r.Name, &r.Branch, &r.Bookmarked)
	if err == sql.ErrNoRows {
		return models.EquipmentRecord{}, errors.NotFound("equipment", id)
	}
	if err != nil {
		return models.EquipmentRecord{}, fmt.Errorf("failed to get equipment: %w", err)
	}
	return r, nil
}

func (s *Store) GetAllEquipment() ([]models.EquipmentRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id, name, branch, bookmarked FROM equipment ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	var out []models.EquipmentRecord
	for rows.Next() {
		var r models.EquipmentRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Branch, &r.Bookmarked); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) SetBookmark(id string, bookmarked bool) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec(`UPDATE equipment SET bookmarked = ? WHERE id = ?`, bookmarked, id)
	if err != nil {
		return fmt.Errorf("failed to update bookmark: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check bookmark update: %w", err)
	}
	if n == 0 {
		return errors.NotFound("equipment", id)
	}
	return nil
}
