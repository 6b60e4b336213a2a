package pos

import (
	"errors"
	"reflect"
	"testing"
)

func TestCatalog_EnsureSeeded(t *testing.T) {
	catalog, store := seededCatalog(t)

	if got, want := catalog.Len(), len(defaultMenu); got != want {
		t.Fatalf("seeded catalog has %d items, want %d", got, want)
	}
	for i, item := range catalog.Items() {
		if item.ID == "" {
			t.Errorf("seeded item %q has no id", item.Name)
		}
		if item.Name != defaultMenu[i].Name || !item.Price.Equal(defaultMenu[i].Price) {
			t.Errorf("seeded item %d = %q %v, want %q %v", i, item.Name, item.Price, defaultMenu[i].Name, defaultMenu[i].Price)
		}
	}

	// Idempotent: a second call never double-seeds.
	before := catalog.Items()
	catalog.EnsureSeeded()
	if !reflect.DeepEqual(catalog.Items(), before) {
		t.Error("second EnsureSeeded changed the catalog")
	}

	// And so does reloading and seeding again.
	reloaded := LoadCatalog(store)
	reloaded.EnsureSeeded()
	if !reflect.DeepEqual(reloaded.Items(), before) {
		t.Error("EnsureSeeded after reload changed the catalog")
	}
}

func TestCatalog_SeededIDsAreFresh(t *testing.T) {
	a, _ := seededCatalog(t)
	b, _ := seededCatalog(t)
	if a.Items()[0].ID == b.Items()[0].ID {
		t.Error("two independent seeds produced the same item id")
	}
}

func TestCatalog_Add(t *testing.T) {
	catalog, _ := seededCatalog(t)
	n := catalog.Len()

	item, err := catalog.Add("Vadai", R(15), "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if item.ID == "" {
		t.Error("Add assigned no id")
	}
	if got := catalog.Len(); got != n+1 {
		t.Errorf("catalog has %d items after add, want %d", got, n+1)
	}
	if last := catalog.Items()[n]; last.Name != "Vadai" {
		t.Errorf("new item appended as %q, want at the end", last.Name)
	}

	// Name is trimmed before the empty check.
	if _, err := catalog.Add("  Payasam  ", R(35), ""); err != nil {
		t.Fatalf("Add with padded name: %v", err)
	}
	if got := catalog.Items()[catalog.Len()-1].Name; got != "Payasam" {
		t.Errorf("padded name stored as %q, want %q", got, "Payasam")
	}
}

func TestCatalog_AddValidation(t *testing.T) {
	testCases := []struct {
		name    string
		item    string
		price   Money
		wantErr error
	}{
		{name: "empty name", item: "", price: R(10), wantErr: ErrEmptyName},
		{name: "blank name", item: "   ", price: R(10), wantErr: ErrEmptyName},
		{name: "zero price", item: "Vadai", price: R(0), wantErr: ErrBadPrice},
		{name: "negative price", item: "Vadai", price: R(-5), wantErr: ErrBadPrice},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog, store := seededCatalog(t)
			before := catalog.Items()

			if _, err := catalog.Add(tc.item, tc.price, ""); !errors.Is(err, tc.wantErr) {
				t.Fatalf("Add(%q, %v) error = %v, want %v", tc.item, tc.price, err, tc.wantErr)
			}
			// A failing validation mutates nothing and persists nothing.
			if !reflect.DeepEqual(catalog.Items(), before) {
				t.Error("failed Add mutated the catalog")
			}
			if !reflect.DeepEqual(LoadCatalog(store).Items(), before) {
				t.Error("failed Add persisted a change")
			}
		})
	}
}

func TestCatalog_Update(t *testing.T) {
	catalog, store := seededCatalog(t)
	items := catalog.Items()
	target := items[2]

	if err := catalog.Update(target.ID, "Masala Poori", R(60), ""); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := catalog.Items()[2]
	if got.ID != target.ID {
		t.Errorf("Update changed the id from %q to %q", target.ID, got.ID)
	}
	if got.Name != "Masala Poori" || !got.Price.Equal(R(60)) {
		t.Errorf("Update left item as %q %v", got.Name, got.Price)
	}
	// Position preserved, neighbours untouched.
	if catalog.Items()[1] != items[1] || catalog.Items()[3] != items[3] {
		t.Error("Update disturbed neighbouring items")
	}

	// Changes survive a reload.
	if !reflect.DeepEqual(LoadCatalog(store).Items(), catalog.Items()) {
		t.Error("updated catalog does not round-trip through the store")
	}
}

func TestCatalog_UpdateUnknownID(t *testing.T) {
	catalog, _ := seededCatalog(t)
	before := catalog.Items()

	if err := catalog.Update("no-such-id", "Ghost", R(10), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update(unknown) error = %v, want ErrNotFound", err)
	}
	if !reflect.DeepEqual(catalog.Items(), before) {
		t.Error("Update of an unknown id mutated the catalog")
	}
}

func TestCatalog_Remove(t *testing.T) {
	catalog, store := seededCatalog(t)
	items := catalog.Items()
	victim := items[1]

	catalog.Remove(victim.ID)
	if catalog.Get(victim.ID) != nil {
		t.Errorf("item %q still present after Remove", victim.Name)
	}
	if got, want := catalog.Len(), len(items)-1; got != want {
		t.Errorf("catalog has %d items after remove, want %d", got, want)
	}

	// Unknown id: a no-op, not an error.
	catalog.Remove("no-such-id")
	if got, want := catalog.Len(), len(items)-1; got != want {
		t.Errorf("removing an unknown id changed the catalog to %d items", got)
	}

	if !reflect.DeepEqual(LoadCatalog(store).Items(), catalog.Items()) {
		t.Error("catalog after remove does not round-trip through the store")
	}
}

func TestLoadCatalog_CorruptRecord(t *testing.T) {
	store := testStore(t)
	if err := store.Write(RecordMenu, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	catalog := LoadCatalog(store)
	if catalog.Len() != 0 {
		t.Errorf("corrupt menu record loaded %d items, want 0", catalog.Len())
	}
	// A corrupt record behaves like an absent one: seeding applies.
	catalog.EnsureSeeded()
	if catalog.Len() != len(defaultMenu) {
		t.Errorf("seeding after a corrupt record gave %d items, want %d", catalog.Len(), len(defaultMenu))
	}
}

func TestCatalog_OnChange(t *testing.T) {
	catalog, _ := seededCatalog(t)
	var calls int
	catalog.OnChange(func() { calls++ })

	catalog.Add("Vadai", R(15), "")
	catalog.Remove(catalog.Items()[0].ID)
	if calls != 2 {
		t.Errorf("change subscriber called %d times, want 2", calls)
	}

	// A failed validation is not a change.
	catalog.Add("", R(15), "")
	if calls != 2 {
		t.Errorf("failed Add notified subscribers (%d calls)", calls)
	}
}
