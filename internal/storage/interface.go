package storage

import "github.com/julianstephens/plantcheck/internal/models"

// Provider holds one session's records. Lookups of unknown ids return an
// error matching errors.ErrNotFound.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Equipment, returned in catalog (insertion) order
	SaveEquipment(records ...models.EquipmentRecord) error
	GetEquipment(id string) (models.EquipmentRecord, error)
	GetAllEquipment() ([]models.EquipmentRecord, error)
	SetBookmark(id string, bookmarked bool) error

	// Work requests, returned oldest first within a collection
	AddWorkRequest(c models.Collection, entry models.WorkRequestEntry) error
	GetWorkRequest(id string) (models.WorkRequestEntry, models.Collection, error)
	GetWorkRequests(c models.Collection) ([]models.WorkRequestEntry, error)
	// MoveWorkRequest replaces the stored entry and appends it to the end of c.
	MoveWorkRequest(c models.Collection, entry models.WorkRequestEntry) error
	CountWorkRequests() (models.QueueCounts, error)

	// Task history
	AddPreStartRecord(models.PreStartRecord) error
	GetPreStartRecords(equipmentID string) ([]models.PreStartRecord, error)

	// Utils
	Driver() string
}
