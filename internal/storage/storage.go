// Package storage provides the durable key-value substrate the portal
// snapshots into: a handful of independent entries, each rewritten whole on
// every mutation, read back once at startup.
package storage

import "fmt"

// Durable entry keys. Names kept from the original deployment so an existing
// data file keeps working.
const (
	KeySession   = "dental-user"
	KeyPatients  = "dental-patients"
	KeyIncidents = "dental-incidents"
)

// KV is the substrate contract. Get reports ok=false when the key is absent;
// absence is not an error.
type KV interface {
	Get(key string) (payload []byte, ok bool, err error)
	Put(key string, payload []byte) error
	Delete(key string) error
	Close() error
}

// Driver identifies a concrete substrate implementation.
type Driver string

const (
	DriverMemory Driver = "memory" // in-memory only (tests / ephemeral)
	DriverSQLite Driver = "sqlite" // embedded sqlite file
)

// Open constructs the substrate for the given driver. path is only used by
// the sqlite driver.
func Open(driver Driver, path string) (KV, error) {
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
