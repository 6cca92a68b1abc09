package views

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/amastore/admin/internal/models"
)

// Overview renders the dashboard landing page: summary tiles, a transactions
// teaser and the recent sales list.
func Overview(cards []models.StatCard, sales []models.Sale) g.Node {
	return g.Group{
		html.Div(
			html.Class("grid gap-4 md:grid-cols-2 md:gap-8 lg:grid-cols-4"),
			g.Map(cards, StatCard),
		),
		html.Div(
			html.Class("grid gap-4 md:gap-8 lg:grid-cols-2 xl:grid-cols-3 mt-10"),
			html.Div(
				html.Class("xl:col-span-2"),
				Card("Transactions", "Recent transactions from your store"),
			),
			Card("Recent Sales", "",
				html.Div(
					html.Class("flex flex-col gap-8"),
					g.Map(sales, saleRow),
				),
			),
		),
	}
}

func saleRow(s models.Sale) g.Node {
	return html.Div(
		html.Class("flex items-center gap-4"),
		g.Attr("data-sale", ""),
		Avatar(s.Customer),
		html.Div(
			html.Class("grid gap-1"),
			html.P(html.Class("text-sm font-medium"), g.Text(s.Customer)),
			html.P(html.Class("text-sm text-muted-foreground"), g.Text(s.Email)),
		),
		html.P(html.Class("ml-auto font-medium"), g.Text(s.Amount)),
	)
}
