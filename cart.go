package pos

import (
	"log"
	"strconv"
	"strings"
)

// CartLine is one row of the cart: a quantity of one menu item, with
// the item's name and price snapshotted at add time. The snapshot is
// authoritative: editing or deleting the menu item later does not
// touch existing lines.
//
// Invariant: Qty >= 1. A line reduced to zero is removed, not kept.
type CartLine struct {
	ID    string // the menu item id this line was created from
	Name  string
	Price Money
	Qty   int
}

// Cart is the in-progress, not-yet-paid selection for the current
// session. Lines keep first-added order, one line per item id. The
// cart is mirrored to its store after every mutation, so a restart
// restores it exactly.
type Cart struct {
	store *Store
	lines []CartLine
	subs  []func()
}

// NewCart creates an empty cart over the given store.
func NewCart(store *Store) *Cart {
	return &Cart{store: store, lines: make([]CartLine, 0)}
}

// LoadCart reads the cart record from the store, degrading to an
// empty cart when the record is absent or unreadable.
func LoadCart(store *Store) *Cart {
	c := NewCart(store)
	data, err := store.Read(RecordCart)
	if err != nil {
		return c
	}
	lines, err := decodeCartLines(data)
	if err != nil {
		log.Printf("warning: ignoring cart record: %v", err)
		return c
	}
	c.lines = lines
	return c
}

// OnChange subscribes fn to be called after every mutating operation.
// The presentation layer uses it to re-render, and to close an open
// payment view when the cart is cleared.
func (c *Cart) OnChange(fn func()) { c.subs = append(c.subs, fn) }

func (c *Cart) notify() {
	for _, fn := range c.subs {
		fn()
	}
}

func (c *Cart) persist() {
	data, err := encodeRecord(c.lines)
	if err == nil {
		err = c.store.Write(RecordCart, data)
	}
	if err != nil {
		log.Printf("warning: cart not saved: %v", err)
	}
	c.notify()
}

func (c *Cart) find(id string) *CartLine {
	for i := range c.lines {
		if c.lines[i].ID == id {
			return &c.lines[i]
		}
	}
	return nil
}

// AddItem adds one unit of a menu item to the cart: an existing line
// for this item id gains one, otherwise a new line is appended with
// the item's current name and price.
func (c *Cart) AddItem(item MenuItem) {
	if line := c.find(item.ID); line != nil {
		line.Qty++
	} else {
		c.lines = append(c.lines, CartLine{ID: item.ID, Name: item.Name, Price: item.Price, Qty: 1})
	}
	c.persist()
}

// ParseQuantity turns free-form quantity input into a usable count.
// Only the leading integer part is read, so "2.5" counts as 2.
// Non-numeric or negative input coerces to 0, which SetQuantity
// treats as removal. This mirrors the quantity field of the till UI.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// a negative quantity coerces to 0 anyway
		if s[0] == '-' {
			return 0
		}
		s = s[1:]
	}
	end := 0
	for end < len(s) && '0' <= s[end] && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// SetQuantity sets a line's quantity exactly. A qty of 0 or less
// removes the line; an unknown id is a no-op.
func (c *Cart) SetQuantity(id string, qty int) {
	if qty <= 0 {
		c.RemoveItem(id)
		return
	}
	line := c.find(id)
	if line == nil {
		return
	}
	line.Qty = qty
	c.persist()
}

// RemoveItem deletes the line for this item id if present.
func (c *Cart) RemoveItem(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist()
			return
		}
	}
}

// Clear empties the cart and persists. Subscribers are notified, so
// an open payment view closes itself.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
	c.persist()
}

// Subtotal returns the sum of price times quantity over all lines.
// It is computed fresh on every call, never cached.
func (c *Cart) Subtotal() Money {
	var total Money
	for _, line := range c.lines {
		total = total.Add(line.Price.MulQty(line.Qty))
	}
	return total
}

// Lines returns the cart lines in first-added order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int { return len(c.lines) }
