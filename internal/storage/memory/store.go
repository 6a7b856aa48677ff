package memory

import (
	"fmt"
	"sync"

	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/models"
)

type workRequest struct {
	collection models.Collection
	entry      models.WorkRequestEntry
}

// Store keeps everything in process memory. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	equipment map[string]models.EquipmentRecord
	order     []string

	requests     map[string]*workRequest
	requestOrder []string

	history map[string][]models.PreStartRecord
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.equipment = make(map[string]models.EquipmentRecord)
	s.order = nil
	s.requests = make(map[string]*workRequest)
	s.requestOrder = nil
	s.history = make(map[string][]models.PreStartRecord)
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) Driver() string {
	return "memory"
}

func (s *Store) ready() error {
	if s.equipment == nil {
		return fmt.Errorf("storage not initialized")
	}
	return nil
}

func (s *Store) SaveEquipment(records ...models.EquipmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}

	for _, r := range records {
		if _, ok := s.equipment[r.ID]; !ok {
			s.order = append(s.order, r.ID)
		}
		s.equipment[r.ID] = r
	}
	return nil
}

func (s *Store) GetEquipment(id string) (models.EquipmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return models.EquipmentRecord{}, err
	}

	r, ok := s.equipment[id]
	if !ok {
		return models.EquipmentRecord{}, errors.NotFound("equipment", id)
	}
	return r, nil
}

func (s *Store) GetAllEquipment() ([]models.EquipmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	out := make([]models.EquipmentRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.equipment[id])
	}
	return out, nil
}

func (s *Store) SetBookmark(id string, bookmarked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}

	r, ok := s.equipment[id]
	if !ok {
		return errors.NotFound("equipment", id)
	}
	r.Bookmarked = bookmarked
	s.equipment[id] = r
	return nil
}

func (s *Store) AddWorkRequest(c models.Collection, entry models.WorkRequestEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}

	if _, exists := s.requests[entry.ID]; exists {
		return fmt.Errorf("work request %q already exists", entry.ID)
	}
	s.requests[entry.ID] = &workRequest{collection: c, entry: entry.Clone()}
	s.requestOrder = append(s.requestOrder, entry.ID)
	return nil
}

func (s *Store) GetWorkRequest(id string) (models.WorkRequestEntry, models.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return models.WorkRequestEntry{}, "", err
	}

	wr, ok := s.requests[id]
	if !ok {
		return models.WorkRequestEntry{}, "", errors.NotFound("work request", id)
	}
	return wr.entry.Clone(), wr.collection, nil
}

func (s *Store) GetWorkRequests(c models.Collection) ([]models.WorkRequestEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	var out []models.WorkRequestEntry
	for _, id := range s.requestOrder {
		if wr := s.requests[id]; wr.collection == c {
			out = append(out, wr.entry.Clone())
		}
	}
	return out, nil
}

func (s *Store) MoveWorkRequest(c models.Collection, entry models.WorkRequestEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}

	if _, ok := s.requests[entry.ID]; !ok {
		return errors.NotFound("work request", entry.ID)
	}
	for i, id := range s.requestOrder {
		if id == entry.ID {
			s.requestOrder = append(s.requestOrder[:i], s.requestOrder[i+1:]...)
			break
		}
	}
	s.requests[entry.ID] = &workRequest{collection: c, entry: entry.Clone()}
	s.requestOrder = append(s.requestOrder, entry.ID)
	return nil
}

func (s *Store) CountWorkRequests() (models.QueueCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return models.QueueCounts{}, err
	}

	var counts models.QueueCounts
	for _, wr := range s.requests {
		switch wr.collection {
		case models.CollectionQueued:
			counts.Queued++
		case models.CollectionSent:
			counts.Sent++
		}
	}
	return counts, nil
}

func (s *Store) AddPreStartRecord(rec models.PreStartRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return err
	}

	s.history[rec.EquipmentID] = append(s.history[rec.EquipmentID], rec.Clone())
	return nil
}

func (s *Store) GetPreStartRecords(equipmentID string) ([]models.PreStartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	recs := s.history[equipmentID]
	if len(recs) == 0 {
		return nil, nil
	}
	out := make([]models.PreStartRecord, len(recs))
	for i, r := range recs {
		out[i] = r.Clone()
	}
	return out, nil
}
