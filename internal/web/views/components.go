package views

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/amastore/admin/internal/models"
)

// Card renders a titled panel. An empty description is omitted.
func Card(title, description string, children ...g.Node) g.Node {
	return html.Div(
		html.Class("card"),
		html.Div(
			html.H3(html.Class("font-semibold"), g.Text(title)),
			g.If(description != "", html.P(html.Class("text-sm text-muted-foreground"), g.Text(description))),
		),
		g.If(len(children) > 0, html.Div(g.Group(children))),
	)
}

// StatCard renders one overview tile.
func StatCard(s models.StatCard) g.Node {
	return html.Div(
		html.Class("card"),
		g.Attr("data-stat-card", s.Title),
		html.Div(
			html.Class("flex flex-row items-center justify-between pb-2"),
			html.H3(g.Text(s.Title)),
			html.Span(html.Class("h-4 w-4 "+s.Accent), g.Attr("aria-hidden", "true"), g.Text("●")),
		),
		html.P(html.Class("text-2xl font-bold"), g.Text(s.Value)),
		html.P(html.Class("text-xs text-muted-foreground"), g.Text(s.Caption)),
	)
}

// Table renders a header row followed by rows. Headers whose name ends in
// ":right" are right-aligned.
func Table(headers []string, rows ...g.Node) g.Node {
	return html.Table(
		html.THead(html.Tr(g.Map(headers, func(h string) g.Node {
			if name, ok := strings.CutSuffix(h, ":right"); ok {
				return html.Th(html.Class("text-right"), g.Text(name))
			}
			return html.Th(g.Text(h))
		}))),
		html.TBody(g.Group(rows)),
	)
}

// Avatar renders the initials fallback for a person.
func Avatar(name string) g.Node {
	return html.Span(
		html.Class("hidden sm:flex h-9 w-9 rounded-full"),
		g.Text(initials(name)),
	)
}

// initials returns the upper-cased first letter of up to two words.
func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(string([]rune(w)[0])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}
