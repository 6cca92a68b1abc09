// Package views renders the dashboard's HTML with gomponents.
package views

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"

	"github.com/amastore/admin/internal/models"
	"github.com/amastore/admin/internal/nav"
)

// Chrome is the shared frame around every dashboard page.
type Chrome struct {
	Brand       string
	LogoURL     string
	Nav         *nav.Registry
	CurrentPath string
	Email       string
	LogoutURL   string
}

const baseStyles = `
body{font-family:system-ui,sans-serif;margin:0;color:#0f172a}
a{color:inherit;text-decoration:none}
a[aria-current=page]{font-weight:700}
table{width:100%;border-collapse:collapse}
th,td{text-align:left;padding:.5rem;border-bottom:1px solid #e2e8f0}
.text-right,.text-end{text-align:right}
.card{border:1px solid #e2e8f0;border-radius:.5rem;padding:1rem}
.text-muted-foreground{color:#64748b}
@media (min-width:768px){.md\:hidden{display:none}}
@media (max-width:767px){.hidden{display:none}}
`

// Page wraps body in an HTML5 document.
func Page(title string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.StyleEl(g.Raw(baseStyles)),
		},
		Body: body,
	})
}

// Dashboard renders content inside the authenticated chrome.
func Dashboard(ch Chrome, title string, content ...g.Node) g.Node {
	return Page(title+" | "+ch.Brand,
		html.Main(
			html.Class("flex w-full flex-col max-w-7xl mx-auto px-4 sm:px-8"),
			html.Header(
				html.Class("sticky top-0 flex h-16 items-center justify-between gap-4 border-b"),
				mobileNav(ch),
				html.Nav(
					html.Class("flex gap-4"),
					brandLink(ch),
					html.Div(
						g.Attr("data-nav", "inline"),
						html.Class("hidden font-medium md:flex md:flex-row md:items-center md:gap-5 md:text-sm lg:gap-6"),
						NavLinks(ch.Nav, ch.CurrentPath),
					),
				),
				accountMenu(ch),
			),
			html.Div(html.Class("my-5"), g.Group(content)),
		),
	)
}

// NavLinks renders one link per registry entry, in registry order.
func NavLinks(reg *nav.Registry, current string) g.Node {
	return g.Map(reg.Links(), func(l models.NavigationLink) g.Node {
		return html.A(
			html.Href(l.Href),
			g.If(reg.IsActive(l.Href, current), g.Attr("aria-current", "page")),
			g.Text(l.Name),
		)
	})
}

// mobileNav is the slide-out panel shown on narrow viewports.
func mobileNav(ch Chrome) g.Node {
	return html.Details(
		html.Class("shrink-0 md:hidden"),
		html.Summary(g.Attr("aria-label", "Toggle navigation menu"), g.Text("☰")),
		html.Nav(
			g.Attr("data-nav", "mobile"),
			html.Class("flex flex-col gap-6 text-lg font-medium mt-5"),
			NavLinks(ch.Nav, ch.CurrentPath),
		),
	)
}

func brandLink(ch Chrome) g.Node {
	return html.A(
		html.Href("/dashboard"),
		html.Class("flex gap-2 select-none font-extrabold"),
		g.If(ch.LogoURL != "", html.Img(
			html.Width("20"), html.Height("20"),
			html.Src(ch.LogoURL),
			html.Alt(ch.Brand+" logo"),
		)),
		html.P(g.Text(ch.Brand)),
	)
}

func accountMenu(ch Chrome) g.Node {
	return html.Details(
		html.Class("relative"),
		html.Summary(g.Attr("aria-label", "Account menu"), g.Text("Account")),
		html.Div(
			html.Class("card absolute right-0"),
			html.P(html.Class("font-medium"), g.Text("My Account")),
			g.If(ch.Email != "", html.P(html.Class("text-sm text-muted-foreground"), g.Text(ch.Email))),
			html.Hr(),
			html.A(html.Href(ch.LogoutURL), g.Text("Logout")),
		),
	)
}
