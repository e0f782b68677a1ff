package preferences

import (
	"rimeskin/internal/prefs"
)

// StoreFactory opens the store backing a Service.
type StoreFactory func() (prefs.Store, error)

func sqliteStore() (prefs.Store, error) { return prefs.Open() }

var defaultStore StoreFactory = sqliteStore

// SetDefaultStore replaces the factory used by Open. The root command uses
// it for --ephemeral runs; tests may use it too.
func SetDefaultStore(f StoreFactory) { defaultStore = f }

// ResetDefaultStore restores the SQLite-backed factory.
func ResetDefaultStore() { defaultStore = sqliteStore }

// Ephemeral is a StoreFactory that keeps preferences in memory only.
func Ephemeral() (prefs.Store, error) { return prefs.NewMemoryStore(), nil }

// Open returns a Service over the default store.
func Open() (*Service, error) {
	store, err := defaultStore()
	if err != nil {
		return nil, err
	}
	return NewService(store), nil
}
