package views

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/amastore/admin/internal/models"
)

// Products renders the product catalog table.
func Products(products []models.Product) g.Node {
	return g.Group{
		html.Div(
			html.Class("flex items-center justify-end"),
			html.A(
				html.Class("button flex items-center gap-x-2"),
				html.Href("#"),
				html.Span(g.Attr("aria-hidden", "true"), g.Text("+")),
				html.Span(g.Text("Add Products")),
			),
		),
		html.Div(
			html.Class("mt-5"),
			Card("Products", "Manage your products and view their sales performance",
				Table(
					[]string{"Image", "Name", "Status", "Price", "Date", "Actions:right"},
					g.Map(products, productRow),
				),
			),
		),
	}
}

func productRow(p models.Product) g.Node {
	return html.Tr(
		html.Td(html.Span(html.Class("h-16 w-16"), g.Attr("aria-hidden", "true"), g.Text("▣"))),
		html.Td(g.Text(p.Name)),
		html.Td(g.Text(p.Status)),
		html.Td(g.Text(p.Price)),
		html.Td(g.Text(p.Date)),
		html.Td(html.Class("text-end"), actionsMenu()),
	)
}

// actionsMenu is the per-row dropdown. Edit and Delete are placeholders; the
// dashboard has no write paths.
func actionsMenu() g.Node {
	return html.Details(
		html.Summary(g.Attr("aria-label", "Actions"), g.Text("⋯")),
		html.Div(
			html.Class("card"),
			html.P(html.Class("font-medium"), g.Text("Actions")),
			html.Hr(),
			html.Div(g.Text("Edit")),
			html.Div(g.Text("Delete")),
		),
	)
}
