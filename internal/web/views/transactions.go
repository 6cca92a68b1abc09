package views

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/amastore/admin/internal/models"
)

// Transactions renders the recent orders table.
func Transactions(txs []models.Transaction) g.Node {
	return Card("Transactions", "Recent Orders from your stores!",
		Table(
			[]string{"Customer", "Type", "Status", "Date", "Amount:right"},
			g.Map(txs, transactionRow),
		),
	)
}

func transactionRow(t models.Transaction) g.Node {
	return html.Tr(
		html.Td(
			html.P(html.Class("font-medium"), g.Text(t.Customer)),
			html.P(html.Class("hidden md:flex text-sm text-muted-foreground"), g.Text(t.Email)),
		),
		html.Td(g.Text(t.Type)),
		html.Td(g.Text(t.Status)),
		html.Td(g.Text(t.Date)),
		html.Td(html.Class("text-right"), g.Text(t.Amount)),
	)
}
