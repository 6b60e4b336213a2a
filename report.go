package pos

import (
	"fmt"
	"time"
)

// readMonthFormat is permissive (allows a single-digit month).
const readMonthFormat = "2006-1"

// MonthFormat is the canonical form of a report month.
const MonthFormat = "2006-01"

// Month identifies one calendar month, the granularity of a sales
// report.
type Month struct {
	Year  int
	Month time.Month
}

// ThisMonth returns the current month in local time.
func ThisMonth() Month {
	now := time.Now()
	return Month{Year: now.Year(), Month: now.Month()}
}

// ParseMonth parses a month in the "2006-01" form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(readMonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", s, MonthFormat, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// String formats the month in its canonical form.
func (m Month) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// Contains reports whether t falls in this month, in local time.
func (m Month) Contains(t time.Time) bool {
	local := t.Local()
	return local.Year() == m.Year && local.Month() == m.Month
}

// Report is the monthly sales report: the matching transactions and
// the sum of their totals. An empty month is a valid report with a
// zero total.
type Report struct {
	Month        Month
	Transactions []Transaction
	TotalSales   Money
}

// MonthlyReport filters the ledger down to one calendar month and
// sums the totals.
func MonthlyReport(l *Ledger, month Month) Report {
	r := Report{Month: month, Transactions: make([]Transaction, 0)}
	for _, tx := range l.Transactions() {
		if month.Contains(tx.Date) {
			r.Transactions = append(r.Transactions, tx)
			r.TotalSales = r.TotalSales.Add(tx.Total)
		}
	}
	return r
}
