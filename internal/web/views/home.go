package views

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// HomeProps configures the public entry page.
type HomeProps struct {
	Brand       string
	LoginURL    string
	RegisterURL string
}

// Home renders the public entry page with links to the identity provider.
func Home(p HomeProps) g.Node {
	return Page(p.Brand,
		html.Div(
			html.Class("flex flex-col w-screen h-screen justify-center items-center"),
			html.Div(
				html.Class("flex gap-4"),
				html.A(html.Class("button"), html.Href(p.LoginURL), g.Text("Login")),
				html.A(html.Class("button"), html.Href(p.RegisterURL), g.Text("Sign Up")),
			),
		),
	)
}
