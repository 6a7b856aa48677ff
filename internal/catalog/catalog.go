package catalog

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/julianstephens/plantcheck/internal/errors"
	"github.com/julianstephens/plantcheck/internal/logger"
	"github.com/julianstephens/plantcheck/internal/models"
	"github.com/julianstephens/plantcheck/internal/storage"
)

// Catalog is the equipment list of one session. Records are read from the
// store once; bookmark changes are written through.
type Catalog struct {
	mu      sync.RWMutex
	store   storage.Provider
	records []models.EquipmentRecord
	index   map[string]int
}

// New loads the catalog from store.
func New(store storage.Provider) (*Catalog, error) {
	records, err := store.GetAllEquipment()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	c := &Catalog{
		store:   store,
		records: records,
		index:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		c.index[r.ID] = i
	}
	return c, nil
}

// Len is the number of records in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// List filters, sorts and truncates the catalog.
//
// A blank filter matches everything and the result is cut to limit (a
// negative limit counts as zero). A non-blank filter is a case-insensitive
// substring match on id, name or branch, and limit is ignored.
func (c *Catalog) List(filter string, key models.SortKey, limit int) []models.EquipmentRecord {
	c.mu.RLock()
	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]models.EquipmentRecord, 0, len(c.records))
	for _, r := range c.records {
		if needle == "" || matches(r, needle) {
			out = append(out, r)
		}
	}
	c.mu.RUnlock()

	Sort(out, key)

	if needle == "" {
		limit = max(limit, 0)
		if len(out) > limit {
			out = out[:limit]
		}
	}
	return out
}

func matches(r models.EquipmentRecord, needle string) bool {
	return strings.Contains(strings.ToLower(r.ID), needle) ||
		strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Branch), needle)
}

// Sort orders records in place: bookmarked first, then by key using a
// case-insensitive collation. Equal keys keep their relative order.
func Sort(records []models.EquipmentRecord, key models.SortKey) {
	// Collators are not safe for concurrent use.
	col := collate.New(language.English, collate.IgnoreCase)
	slices.SortStableFunc(records, func(a, b models.EquipmentRecord) int {
		if a.Bookmarked != b.Bookmarked {
			if a.Bookmarked {
				return -1
			}
			return 1
		}
		return col.CompareString(a.Key(key), b.Key(key))
	})
}

// ToggleBookmark flips the bookmark on id and reports the new state.
func (c *Catalog) ToggleBookmark(id string) (models.BookmarkChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return models.BookmarkChange{}, errors.NotFound("equipment", id)
	}

	r := c.records[i]
	r.Bookmarked = !r.Bookmarked
	if err := c.store.SetBookmark(r.ID, r.Bookmarked); err != nil {
		return models.BookmarkChange{}, fmt.Errorf("failed to save bookmark: %w", err)
	}
	c.records[i] = r

	logger.Debug("Bookmark toggled", "equipment", r.ID, "bookmarked", r.Bookmarked)
	return models.BookmarkChange{ID: r.ID, Name: r.Name, Bookmarked: r.Bookmarked}, nil
}

// Resolve maps a scanned code to its record.
func (c *Catalog) Resolve(id string) (models.EquipmentRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id = strings.TrimSpace(id)
	i, ok := c.index[id]
	if !ok {
		return models.EquipmentRecord{}, errors.NotFound("equipment", id)
	}
	return c.records[i], nil
}
