package webapp

import (
	"github.com/drummonds/iamr-site/content"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// icon renders an icon placeholder; the glyph comes from webapp.css
func icon(name string) app.UI {
	return app.Span().Class("icon", "icon-"+name).Aria("hidden", true)
}

// linkButton renders a link styled as a primary or secondary button
func linkButton(label, href string, primary bool) app.HTMLA {
	class := "btn-secondary"
	if primary {
		class = "btn-primary"
	}
	return app.A().
		Href(href).
		Class("btn", class).
		Text(label)
}

// hero renders a page header with part of the title highlighted
func hero(class, title, highlight, lead string, actions ...app.UI) app.UI {
	return app.Header().
		Class("hero", class).
		Body(
			app.Div().Class("container").Body(
				app.H1().Body(
					app.Text(title+" "),
					app.Span().Class("highlight").Text(highlight),
				),
				app.P().Class("lead").Text(lead),
				app.Div().Class("hero-actions").Body(actions...),
			),
		)
}

// section wraps page content in a titled block
func section(class, title string, body ...app.UI) app.UI {
	var heading app.UI = app.Div()
	if title != "" {
		heading = app.H2().Class("section-title").Text(title)
	}
	return app.Section().
		Class("section", class).
		Body(
			app.Div().Class("container").Body(
				heading,
				app.Div().Class("section-body").Body(body...),
			),
		)
}

// Card renders a titled blurb with an icon
type Card struct {
	app.Compo
	Card content.Card
}

// Render renders the card
func (c *Card) Render() app.UI {
	return app.Div().
		Class("card").
		Body(
			app.Div().Class("card-icon").Body(icon(c.Card.Icon)),
			app.H3().Text(c.Card.Title),
			app.P().Text(c.Card.Description),
		)
}

func cardGrid(class string, cards []content.Card) app.UI {
	return app.Div().
		Class("card-grid", class).
		Body(
			app.Range(cards).Slice(func(i int) app.UI {
				return &Card{Card: cards[i]}
			}),
		)
}
