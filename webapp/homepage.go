package webapp

import (
	"github.com/drummonds/iamr-site/content"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// HomePage is the landing page
type HomePage struct {
	app.Compo
}

// Render renders the home page
func (h *HomePage) Render() app.UI {
	return app.Div().
		Class("home-page").
		Body(
			hero("hero-home",
				"Institute of Applied", "Modern Research",
				"Igniting potential. Engineering the future. IAMR is where innovation meets ambition.",
				linkButton("Apply Now", "/admissions", true),
				linkButton("Explore Programs", "/academics", false),
			),
			h.renderStats(),
			section("features", "Why Choose IAMR?",
				cardGrid("cols-3", content.Features),
			),
			h.renderEvents(),
			section("cta", "Ready to start your future?",
				app.P().Text("Admissions for the next academic year are now open."),
				linkButton("Begin Application Today", "/admissions", false),
			),
		)
}

func (h *HomePage) renderStats() app.UI {
	return section("stats", "",
		app.Div().Class("stat-grid").Body(
			app.Range(content.Stats).Slice(func(i int) app.UI {
				stat := content.Stats[i]
				return app.Div().Class("stat").Body(
					app.P().Class("stat-value").Text(stat.Value),
					app.P().Class("stat-label").Text(stat.Label),
				)
			}),
		),
	)
}

func (h *HomePage) renderEvents() app.UI {
	return section("events", "Campus Buzz & Events",
		app.A().Href("/contact").Class("view-all").Text("View All"),
		app.Div().Class("event-list").Body(
			app.Range(content.Events).Slice(func(i int) app.UI {
				return &EventRow{Event: content.Events[i]}
			}),
		),
	)
}

// EventRow displays a single upcoming event
type EventRow struct {
	app.Compo
	Event content.Event
}

// Render renders the event row
func (e *EventRow) Render() app.UI {
	return app.Div().
		Class("event").
		Body(
			icon(e.Event.Icon),
			app.Div().Class("event-info").Body(
				app.P().Class("event-name").Text(e.Event.Name),
				app.P().Class("event-location").Text(e.Event.Location),
			),
			app.P().Class("event-date").Text(e.Event.Date),
		)
}
