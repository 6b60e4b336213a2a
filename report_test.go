package pos

import (
	"testing"
	"time"
)

// ledgerWith builds a ledger whose transactions carry the given
// (date, total) pairs, bypassing Commit to control the dates.
func ledgerWith(t *testing.T, sales ...Transaction) *Ledger {
	t.Helper()
	l := NewLedger(testStore(t))
	l.transactions = append(l.transactions, sales...)
	return l
}

func saleOn(date string, total Money) Transaction {
	on, err := time.ParseInLocation("2006-01-02 15:04", date, time.Local)
	if err != nil {
		panic(err)
	}
	return Transaction{
		ID:    "tx-" + date,
		Date:  on,
		Items: []SaleItem{{Name: "Idly", Qty: 1, Price: total}},
		Total: total,
	}
}

func TestMonthlyReport(t *testing.T) {
	ledger := ledgerWith(t,
		saleOn("2026-06-03 09:15", R(40)),
		saleOn("2026-06-21 18:40", R(55)),
		saleOn("2026-07-01 08:05", R(100)),
	)

	report := MonthlyReport(ledger, Month{Year: 2026, Month: time.June})
	if got := len(report.Transactions); got != 2 {
		t.Fatalf("June report has %d transactions, want 2", got)
	}
	if !report.TotalSales.Equal(R(95)) {
		t.Errorf("June total sales = %v, want ₹95", report.TotalSales)
	}

	july := MonthlyReport(ledger, Month{Year: 2026, Month: time.July})
	if got := len(july.Transactions); got != 1 {
		t.Fatalf("July report has %d transactions, want 1", got)
	}
	if !july.TotalSales.Equal(R(100)) {
		t.Errorf("July total sales = %v, want ₹100", july.TotalSales)
	}
}

func TestMonthlyReport_EmptyMonth(t *testing.T) {
	ledger := ledgerWith(t, saleOn("2026-06-03 09:15", R(40)))

	report := MonthlyReport(ledger, Month{Year: 2026, Month: time.December})
	if len(report.Transactions) != 0 {
		t.Errorf("empty month returned %d transactions", len(report.Transactions))
	}
	if !report.TotalSales.IsZero() {
		t.Errorf("empty month total = %v, want 0", report.TotalSales)
	}
}

func TestMonthlyReport_SameMonthOtherYear(t *testing.T) {
	ledger := ledgerWith(t,
		saleOn("2025-06-10 12:00", R(40)),
		saleOn("2026-06-10 12:00", R(55)),
	)
	report := MonthlyReport(ledger, Month{Year: 2026, Month: time.June})
	if len(report.Transactions) != 1 || !report.TotalSales.Equal(R(55)) {
		t.Errorf("report = %d transactions, total %v; want 1 transaction of ₹55", len(report.Transactions), report.TotalSales)
	}
}

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{in: "2026-06", want: Month{2026, time.June}},
		{in: "2026-6", want: Month{2026, time.June}},
		{in: "2025-12", want: Month{2025, time.December}},
		{in: "2026-13", wantErr: true},
		{in: "June 2026", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseMonth(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMonth(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMonth(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMonth(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMonthString(t *testing.T) {
	if got := (Month{2026, time.June}).String(); got != "2026-06" {
		t.Errorf("String() = %q, want %q", got, "2026-06")
	}
}
