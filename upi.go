package pos

import (
	"fmt"
	"net/url"
	"strings"
)

// Merchant identifies the payee of a UPI payment request.
type Merchant struct {
	PayeeAddress string // the UPI VPA, e.g. "restaurant@upi"
	PayeeName    string
	Currency     string
}

// DefaultMerchant is the till's built-in payee identity.
var DefaultMerchant = Merchant{
	PayeeAddress: "restaurant@upi",
	PayeeName:    "Restaurant",
	Currency:     Currency,
}

// ErrNonPositiveAmount is returned when asked to build a payment
// request for a zero or negative amount.
var ErrNonPositiveAmount = fmt.Errorf("payment amount must be greater than zero")

// BuildPaymentURI returns the deterministic UPI payment URI for this
// merchant and amount:
//
//	upi://pay?pa=<address>&pn=<name>&am=<amount, 2 decimals>&cu=<currency>
//
// The format is an external protocol and must match exactly for
// payment-scanning apps to accept it. All parameter values are
// percent-encoded; the amount always carries two decimals.
func BuildPaymentURI(m Merchant, amount Money) (string, error) {
	if !amount.IsPositive() {
		return "", ErrNonPositiveAmount
	}
	return "upi://pay?pa=" + escape(m.PayeeAddress) +
		"&pn=" + escape(m.PayeeName) +
		"&am=" + amount.Amount2() +
		"&cu=" + escape(m.Currency), nil
}

// escape percent-encodes a query value. Scanning apps expect %20 for
// a space, not the '+' form QueryEscape produces.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
