package webapp

import (
	"strconv"

	"github.com/drummonds/iamr-site/content"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// AboutPage presents the mission, values, leadership and history
type AboutPage struct {
	app.Compo
}

// Render renders the about page
func (p *AboutPage) Render() app.UI {
	return app.Div().
		Class("about-page").
		Body(
			hero("hero-about",
				"Our Story, Our", "Vision",
				"For nearly five decades, IAMR has shaped the leaders who define the modern world. Discover the mission that guides us.",
			),
			section("mission", "",
				app.Div().Class("two-col").Body(
					statement("zap", "Our Mission", content.Mission),
					statement("graduation-cap", "Our Vision", content.Vision),
				),
			),
			section("values", "The IAMR Core Values",
				cardGrid("cols-4", content.Values),
			),
			section("leadership", "",
				app.Div().Class("two-col").Body(
					p.renderLeader(),
					p.renderHistory(),
				),
			),
			section("cta", "",
				app.P().Text("Interested in becoming part of the IAMR story?"),
				linkButton("View Admissions Process", "/admissions", false),
			),
		)
}

func statement(iconName, title, text string) app.UI {
	return app.Div().Class("statement").Body(
		app.H2().Body(icon(iconName), app.Text(" "+title)),
		app.P().Text(text),
	)
}

func (p *AboutPage) renderLeader() app.UI {
	leader := content.President
	return app.Div().
		Class("leader").
		Body(
			app.H3().Text("IAMR Leadership"),
			app.Div().Class("leader-profile").Body(
				app.Img().
					Src(leader.ImageURL).
					Alt(leader.Name).
					Class("leader-photo"),
				app.Div().Body(
					app.P().Class("leader-name").Text(leader.Name),
					app.P().Class("leader-role").Text(leader.Role),
					app.P().Class("leader-bio").Text(leader.Bio),
				),
			),
			linkButton("Meet Our Board", "/contact", false),
		)
}

func (p *AboutPage) renderHistory() app.UI {
	return app.Div().
		Class("history").
		Body(
			app.H3().Text("Our Legacy"),
			app.Ol().Class("timeline").Body(
				app.Range(content.History).Slice(func(i int) app.UI {
					item := content.History[i]
					return app.Li().Body(
						app.H4().Text(strconv.Itoa(item.Year)),
						app.P().Text(item.Event),
					)
				}),
			),
		)
}
