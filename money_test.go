package pos

import "testing"

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Money
		wantErr bool
	}{
		{name: "whole rupees", in: "40", want: R(40)},
		{name: "decimal price", in: "12.50", want: R(12.5)},
		{name: "surrounding spaces", in: " 55 ", want: R(55)},
		{name: "zero", in: "0", wantErr: true},
		{name: "negative", in: "-5", wantErr: true},
		{name: "not a number", in: "five", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePrice(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePrice(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePrice(%q) unexpected error: %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParsePrice(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMoneyAmount2(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{R(125), "125.00"},
		{R(12.5), "12.50"},
		{R(0), "0.00"},
		{R(99.999), "100.00"},
	}
	for _, tc := range testCases {
		if got := tc.in.Amount2(); got != tc.want {
			t.Errorf("Amount2(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMoneyStringRoundsToWholeUnits(t *testing.T) {
	// Display is rounded to whole rupees; the underlying value keeps
	// its precision.
	m := R(1234.56)
	if got, want := m.String(), "₹1,235"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := m.Amount2(), "1234.56"; got != want {
		t.Errorf("Amount2() = %q, want %q (precision lost)", got, want)
	}
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	// 0.1 + 0.2 is the classic float trap; decimals must not fall in.
	sum := R(0.1).Add(R(0.2))
	if !sum.Equal(R(0.3)) {
		t.Errorf("0.1 + 0.2 = %v, want 0.3 exactly", sum.Amount2())
	}
	if got := R(19.99).MulQty(3); !got.Equal(R(59.97)) {
		t.Errorf("19.99 × 3 = %v, want 59.97 exactly", got.Amount2())
	}
}
