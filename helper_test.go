package pos

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
)

// R is a helper for tests to create rupee money from a const. It
// builds the decimal from the canonical string form so the internal
// representation matches seeded and store-round-tripped values.
func R(v float64) Money {
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', -1, 64))
	if err != nil {
		panic(err)
	}
	return Rupees(d)
}

// testStore returns a store over a fresh temp folder.
func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

// seededCatalog returns a freshly seeded catalog and its store.
func seededCatalog(t *testing.T) (*Catalog, *Store) {
	t.Helper()
	store := testStore(t)
	catalog := LoadCatalog(store)
	catalog.EnsureSeeded()
	return catalog, store
}
