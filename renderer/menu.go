package renderer

import (
	pos "github.com/ts5538512-byte/tamil-new-web"
)

// MenuRow is the view of one catalog item.
type MenuRow struct {
	ID    string
	Name  string
	Price string
	Image string
}

// Menu is the view passed to the menu template.
type Menu struct {
	Rows []MenuRow
}

// MenuMarkdown renders the menu in catalog order.
func MenuMarkdown(items []pos.MenuItem) string {
	var m Menu
	for _, item := range items {
		m.Rows = append(m.Rows, MenuRow{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price.String(),
			Image: item.ImageURL,
		})
	}
	return renderTemplate("menu", "menu.md", nil, &m)
}
