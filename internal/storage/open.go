package storage

import (
	"fmt"

	"github.com/julianstephens/plantcheck/internal/storage/memory"
	"github.com/julianstephens/plantcheck/internal/storage/sqlite"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Drivers lists the accepted storage driver names.
var Drivers = []string{DriverMemory, DriverSQLite}

// Open creates and initializes a fresh, session-private store.
func Open(driver string) (Provider, error) {
	var p Provider
	switch driver {
	case DriverMemory, "":
		p = memory.NewStore()
	case DriverSQLite:
		p = sqlite.NewStore(sqlite.MemoryDSN)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	if err := p.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize %s storage: %w", driver, err)
	}
	return p, nil
}
