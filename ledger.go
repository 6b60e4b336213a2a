package pos

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

// SaleItem is one row of a completed sale: a value copy of a cart
// line at commit time.
type SaleItem struct {
	Name  string
	Qty   int
	Price Money
}

// Transaction is a completed sale. Once recorded it is never edited
// or deleted by the application.
type Transaction struct {
	ID    string
	Date  time.Time
	Items []SaleItem
	Total Money
}

// ErrNothingToSell is returned when committing an empty cart or a
// non-positive total.
var ErrNothingToSell = errors.New("nothing to sell: the cart must hold items with a positive total")

// Ledger is the append-only record of completed sales, in insertion
// order.
//
// In a Ledger transactions are immutable once recorded.
type Ledger struct {
	store        *Store
	transactions []Transaction
}

// NewLedger creates an empty ledger over the given store.
func NewLedger(store *Store) *Ledger {
	return &Ledger{store: store, transactions: make([]Transaction, 0)}
}

// LoadLedger reads the transactions record from the store, degrading
// to an empty ledger when the record is absent or unreadable.
func LoadLedger(store *Store) *Ledger {
	l := NewLedger(store)
	data, err := store.Read(RecordTransactions)
	if err != nil {
		return l
	}
	txs, err := decodeTransactions(data)
	if err != nil {
		log.Printf("warning: ignoring transactions record: %v", err)
		return l
	}
	l.transactions = txs
	return l
}

// Commit records a completed sale: a fresh id, the current timestamp,
// a value copy of the cart lines, and the given total. The full log
// is persisted. The cart itself is not touched; clearing it is the
// caller's second half of confirming a payment.
func (l *Ledger) Commit(lines []CartLine, total Money) (Transaction, error) {
	if len(lines) == 0 || !total.IsPositive() {
		return Transaction{}, ErrNothingToSell
	}
	items := make([]SaleItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, SaleItem{Name: line.Name, Qty: line.Qty, Price: line.Price})
	}
	tx := Transaction{
		ID:    uuid.NewString(),
		Date:  time.Now(),
		Items: items,
		Total: total,
	}
	l.transactions = append(l.transactions, tx)
	l.persist()
	return tx, nil
}

func (l *Ledger) persist() {
	data, err := encodeRecord(l.transactions)
	if err == nil {
		err = l.store.Write(RecordTransactions, data)
	}
	if err != nil {
		log.Printf("warning: transactions not saved: %v", err)
	}
}

// Transactions returns all recorded sales in insertion order.
func (l *Ledger) Transactions() []Transaction {
	txs := make([]Transaction, len(l.transactions))
	copy(txs, l.transactions)
	return txs
}

// Len returns the number of recorded sales.
func (l *Ledger) Len() int { return len(l.transactions) }
