package renderer

import (
	pos "github.com/ts5538512-byte/tamil-new-web"
)

// BillRow is the view of one cart line on a bill.
type BillRow struct {
	Name  string
	Qty   int
	Price string
	Total string
}

// Bill is the view passed to the cart and bill templates.
type Bill struct {
	Rows     []BillRow
	Subtotal string
}

// newBill precomputes the line totals so templates stay arithmetic-free.
func newBill(lines []pos.CartLine, subtotal pos.Money) *Bill {
	b := &Bill{Subtotal: subtotal.String()}
	for _, line := range lines {
		b.Rows = append(b.Rows, BillRow{
			Name:  line.Name,
			Qty:   line.Qty,
			Price: line.Price.String(),
			Total: line.Price.MulQty(line.Qty).String(),
		})
	}
	return b
}

// CartMarkdown renders the current cart and its subtotal.
func CartMarkdown(lines []pos.CartLine, subtotal pos.Money) string {
	partials := map[string]string{
		"bill_rows": "bill_rows.md",
	}
	return renderTemplate("cart", "cart.md", partials, newBill(lines, subtotal))
}

// BillMarkdown renders the printable customer bill.
func BillMarkdown(lines []pos.CartLine, subtotal pos.Money) string {
	partials := map[string]string{
		"bill_rows": "bill_rows.md",
	}
	return renderTemplate("bill", "bill.md", partials, newBill(lines, subtotal))
}

// Payment is the view passed to the payment template.
type Payment struct {
	Amount string
	URI    string
}

// PaymentMarkdown renders the payment header shown above the QR code.
func PaymentMarkdown(amount pos.Money, uri string) string {
	return renderTemplate("payment", "payment.md", nil, Payment{Amount: amount.String(), URI: uri})
}
