package pos

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
)

// MenuItem is a sellable item of the catalog.
//
// The ID is opaque, unique, immutable once created, and never reused.
type MenuItem struct {
	ID       string
	Name     string
	Price    Money
	ImageURL string
}

// Validation errors shared by catalog operations. A failing operation
// guarantees no mutation and no persistence.
var (
	ErrEmptyName = errors.New("name must not be empty")
	ErrBadPrice  = errors.New("price must be greater than zero")
	ErrNotFound  = errors.New("no such item")
)

// defaultMenu is the built-in catalog used to seed an empty store.
// Seeding assigns a fresh id to every item, so ids here stay zero.
var defaultMenu = []MenuItem{
	{Name: "Idly", Price: Rupees(40), ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/8/86/Idli_-_A_Traditional_Indian_Food.JPG/400px-Idli_-_A_Traditional_Indian_Food.JPG"},
	{Name: "Dosai", Price: Rupees(55), ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/4/43/Masala_dosa_01.jpg/400px-Masala_dosa_01.jpg"},
	{Name: "Poori", Price: Rupees(50), ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/8/86/Poori_Masala_Tamil_Nadu.jpg/400px-Poori_Masala_Tamil_Nadu.jpg"},
	{Name: "Pongal", Price: Rupees(50), ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e2/Pongal_with_sambar.jpg/400px-Pongal_with_sambar.jpg"},
	{Name: "Tea", Price: Rupees(20), ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/0/04/Masala_Chai.JPG/400px-Masala_Chai.JPG"},
	{Name: "Coffee", Price: Rupees(30), ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c5/Roasted_coffee_beans.jpg/400px-Roasted_coffee_beans.jpg"},
}

// Catalog holds the ordered list of menu items, mirrored to its store
// after every mutation.
type Catalog struct {
	store *Store
	items []MenuItem
	subs  []func()
}

// NewCatalog creates an empty catalog over the given store.
func NewCatalog(store *Store) *Catalog {
	return &Catalog{store: store, items: make([]MenuItem, 0)}
}

// LoadCatalog reads the menu record from the store, degrading to an
// empty catalog when the record is absent or unreadable.
func LoadCatalog(store *Store) *Catalog {
	c := NewCatalog(store)
	data, err := store.Read(RecordMenu)
	if err != nil {
		return c
	}
	items, err := decodeMenuItems(data)
	if err != nil {
		log.Printf("warning: ignoring menu record: %v", err)
		return c
	}
	c.items = items
	return c
}

// OnChange subscribes fn to be called after every mutating operation.
// This is how a presentation layer re-renders without the catalog
// knowing anything about rendering.
func (c *Catalog) OnChange(fn func()) { c.subs = append(c.subs, fn) }

func (c *Catalog) notify() {
	for _, fn := range c.subs {
		fn()
	}
}

// persist mirrors the catalog into the store. A failed write loses
// durability for this change only; the in-memory state stays correct.
func (c *Catalog) persist() {
	data, err := encodeRecord(c.items)
	if err == nil {
		err = c.store.Write(RecordMenu, data)
	}
	if err != nil {
		log.Printf("warning: menu not saved: %v", err)
	}
	c.notify()
}

// EnsureSeeded populates an empty catalog with the default menu,
// assigning a fresh id to every seeded item, and persists it.
// Calling it on a non-empty catalog does nothing.
func (c *Catalog) EnsureSeeded() {
	if len(c.items) > 0 {
		return
	}
	for _, m := range defaultMenu {
		m.ID = uuid.NewString()
		c.items = append(c.items, m)
	}
	c.persist()
}

// Items returns the menu items in catalog order.
func (c *Catalog) Items() []MenuItem {
	items := make([]MenuItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int { return len(c.items) }

// Get returns the item with this id, or nil if unknown.
func (c *Catalog) Get(id string) *MenuItem {
	for i := range c.items {
		if c.items[i].ID == id {
			item := c.items[i]
			return &item
		}
	}
	return nil
}

// FindByName returns the first item whose name matches, ignoring
// case, or nil. Names are not unique; this is a convenience for
// presentation layers without a click target.
func (c *Catalog) FindByName(name string) *MenuItem {
	for i := range c.items {
		if strings.EqualFold(c.items[i].Name, name) {
			item := c.items[i]
			return &item
		}
	}
	return nil
}

func validateItem(name string, price Money) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if !price.IsPositive() {
		return "", ErrBadPrice
	}
	return name, nil
}

// Add validates and appends a new item with a fresh id, and persists.
func (c *Catalog) Add(name string, price Money, imageURL string) (MenuItem, error) {
	name, err := validateItem(name, price)
	if err != nil {
		return MenuItem{}, err
	}
	item := MenuItem{ID: uuid.NewString(), Name: name, Price: price, ImageURL: strings.TrimSpace(imageURL)}
	c.items = append(c.items, item)
	c.persist()
	return item, nil
}

// Update overwrites the fields of an existing item in place,
// preserving its position, and persists. An unknown id leaves the
// catalog untouched.
func (c *Catalog) Update(id, name string, price Money, imageURL string) error {
	name, err := validateItem(name, price)
	if err != nil {
		return err
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Name = name
			c.items[i].Price = price
			c.items[i].ImageURL = strings.TrimSpace(imageURL)
			c.persist()
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the item with this id if present, and persists.
// Removing an unknown id is a no-op, not an error.
func (c *Catalog) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}
