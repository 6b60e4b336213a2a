package pos

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// This file contains the code to encode and decode the three records
// (menu, cart, transactions) to and from their persisted JSON form.
//
// Encoding is canonical: field order is fixed by jsonObjectWriter, so
// two saves of the same state produce the same bytes. Decoding is
// lenient: it goes through dedicated local structs with tag
// annotations, and any error invalidates the whole document so the
// caller can fall back to a default.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// dateFormat is the persisted form of a transaction timestamp,
// ISO-8601 with the local offset.
const dateFormat = time.RFC3339

func (m MenuItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", m.ID)
	w.Append("name", m.Name)
	w.Append("price", m.Price)
	w.Optional("imageUrl", m.ImageURL)
	return w.MarshalJSON()
}

func (l CartLine) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", l.ID)
	w.Append("name", l.Name)
	w.Append("price", l.Price)
	w.Append("qty", l.Qty)
	return w.MarshalJSON()
}

func (i SaleItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", i.Name)
	w.Append("qty", i.Qty)
	w.Append("price", i.Price)
	return w.MarshalJSON()
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date.Format(dateFormat))
	w.Append("items", t.Items)
	w.Append("total", t.Total)
	return w.MarshalJSON()
}

// jmenuItem is the object read from the menu record using the json parser.
type jmenuItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	ImageURL string `json:"imageUrl"`
}

// jcartLine is the object read from the cart record.
type jcartLine struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
	Qty   int    `json:"qty"`
}

// jtransaction is the object read from the transactions record.
type jtransaction struct {
	ID    string      `json:"id"`
	Date  string      `json:"date"`
	Items []jsaleItem `json:"items"`
	Total Money       `json:"total"`
}

type jsaleItem struct {
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Price Money  `json:"price"`
}

func decodeMenuItems(data []byte) ([]MenuItem, error) {
	var js []jmenuItem
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("menu record is not a valid item list: %w", err)
	}
	items := make([]MenuItem, 0, len(js))
	for _, j := range js {
		items = append(items, MenuItem{ID: j.ID, Name: j.Name, Price: j.Price, ImageURL: j.ImageURL})
	}
	return items, nil
}

func decodeCartLines(data []byte) ([]CartLine, error) {
	var js []jcartLine
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("cart record is not a valid line list: %w", err)
	}
	lines := make([]CartLine, 0, len(js))
	for _, j := range js {
		lines = append(lines, CartLine{ID: j.ID, Name: j.Name, Price: j.Price, Qty: j.Qty})
	}
	return lines, nil
}

func decodeTransactions(data []byte) ([]Transaction, error) {
	var js []jtransaction
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("transactions record is not a valid sale list: %w", err)
	}
	txs := make([]Transaction, 0, len(js))
	for _, j := range js {
		on, err := time.Parse(dateFormat, j.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction %q has an invalid date %q: %w", j.ID, j.Date, err)
		}
		items := make([]SaleItem, 0, len(j.Items))
		for _, ji := range j.Items {
			items = append(items, SaleItem{Name: ji.Name, Qty: ji.Qty, Price: ji.Price})
		}
		txs = append(txs, Transaction{ID: j.ID, Date: on, Items: items, Total: j.Total})
	}
	return txs, nil
}

// encodeRecord marshals a record's content in its canonical indented form.
func encodeRecord(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
