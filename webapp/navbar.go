package webapp

import (
	"github.com/drummonds/iamr-site/navigation"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// NavBar is the navigation bar component
type NavBar struct {
	app.Compo
	Current string
	menu    navigation.Menu
}

// Render renders the navigation bar
func (n *NavBar) Render() app.UI {
	return app.Header().
		Class("navbar").
		Body(
			app.Div().Class("navbar-inner").Body(
				app.A().
					Href(navigation.Brand.Path).
					Class("navbar-brand").
					OnClick(n.onLinkClick).
					Text(navigation.Brand.Label),
				app.Nav().
					Class("navbar-menu", "navbar-desktop").
					Body(n.renderLinks()...),
				app.Button().
					Class("navbar-toggle").
					Aria("label", "Toggle menu").
					Aria("expanded", n.menu.Open()).
					OnClick(n.onToggle).
					Body(app.Span().Class("icon", "icon-menu")),
			),
			n.renderMobile(),
		)
}

// renderMobile renders the mobile list, only while the menu is open
func (n *NavBar) renderMobile() app.UI {
	if !n.menu.Open() {
		return app.Div()
	}
	return app.Div().
		Class("navbar-mobile").
		Body(
			app.Nav().Class("navbar-menu").Body(n.renderLinks()...),
		)
}

func (n *NavBar) renderLinks() []app.UI {
	links := make([]app.UI, 0, len(navigation.Links))
	for _, link := range navigation.Links {
		classes := []string{"navbar-item"}
		if navigation.IsActive(n.Current, link) {
			classes = append(classes, "is-active")
		}
		links = append(links, app.A().
			Href(link.Path).
			Class(classes...).
			OnClick(n.onLinkClick).
			Text(link.Label))
	}
	return links
}

func (n *NavBar) onToggle(ctx app.Context, e app.Event) {
	n.menu.Toggle()
}

// onLinkClick closes the mobile menu once a destination is chosen
func (n *NavBar) onLinkClick(ctx app.Context, e app.Event) {
	n.menu.Close()
}
