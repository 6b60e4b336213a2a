package renderer

import (
	"fmt"
	"strings"

	pos "github.com/ts5538512-byte/tamil-new-web"
)

// reportDateFormat matches the till's display of a sale timestamp.
const reportDateFormat = "02 Jan 2006 15:04"

// ReportRow is the view of one recorded sale in the monthly report.
type ReportRow struct {
	Date  string
	Items string
	Total string
}

// MonthlyReport is the view passed to the report template.
type MonthlyReport struct {
	Month      string
	Rows       []ReportRow
	TotalSales string
}

// ReportMarkdown renders the monthly sales report.
func ReportMarkdown(r pos.Report) string {
	view := MonthlyReport{
		Month:      r.Month.String(),
		TotalSales: r.TotalSales.String(),
	}
	for _, tx := range r.Transactions {
		view.Rows = append(view.Rows, ReportRow{
			Date:  tx.Date.Local().Format(reportDateFormat),
			Items: saleItems(tx.Items),
			Total: tx.Total.String(),
		})
	}
	return renderTemplate("report", "report.md", nil, &view)
}

// saleItems summarizes a sale's items as "Idly × 2, Tea × 1".
func saleItems(items []pos.SaleItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s × %d", item.Name, item.Qty))
	}
	return strings.Join(parts, ", ")
}
