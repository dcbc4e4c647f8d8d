package store

import (
	"github.com/ayoisaiah/focusflow/internal/apperr"
)

// Driver names a storage backend.
type Driver string

const (
	DriverBolt   Driver = "bolt"
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

// Drivers lists the supported storage drivers.
var Drivers = []Driver{DriverBolt, DriverSQLite, DriverMemory}

var (
	errStorageLocked = &apperr.Error{
		Message: "is focusflow already running? the bolt store allows one instance at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s",
	}

	errOpenStorage = &apperr.Error{
		Message: "opening %s storage failed",
	}
)

// OpenBackend opens the backend for driver at path.
func OpenBackend(driver Driver, path string) (Backend, error) {
	switch driver {
	case DriverBolt:
		return OpenBolt(path)
	case DriverSQLite:
		return OpenSQLite(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, errUnknownDriver.Fmt(driver)
	}
}

// Open returns a store for driver. When the backend cannot be opened, the
// error is reported alongside a usable memory-backed store.
func Open(driver Driver, path, namespace string) (*Store, error) {
	backend, err := OpenBackend(driver, path)
	if err != nil {
		s := New(nil, namespace)
		s.degrade(err)

		return s, err
	}

	return New(backend, namespace), nil
}
