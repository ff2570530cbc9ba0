package webapp

import (
	"github.com/drummonds/iamr-site/content"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// AcademicsPage shows program areas as tabs
type AcademicsPage struct {
	app.Compo
	activeTab string
}

// active returns the selected area, falling back to the default tab
func (p *AcademicsPage) active() content.ProgramArea {
	if area, ok := content.AreaByKey(p.activeTab); ok {
		return area
	}
	area, _ := content.AreaByKey(content.DefaultArea)
	return area
}

// selectTab switches the visible program area; unknown keys are ignored
func (p *AcademicsPage) selectTab(key string) {
	if _, ok := content.AreaByKey(key); ok {
		p.activeTab = key
	}
}

// Render renders the academics page
func (p *AcademicsPage) Render() app.UI {
	return app.Div().
		Class("academics-page").
		Body(
			hero("hero-academics",
				"The Future of", "Learning",
				"IAMR's academic framework is built on interdisciplinary collaboration, cutting-edge research, and real-world application, preparing you for the next decade.",
				linkButton("Apply for a Program", "/admissions", false),
			),
			section("programs", "Explore Our Program Areas",
				p.renderTabs(),
				p.renderPrograms(),
			),
			section("research", "Driven by Discovery",
				app.P().Text(content.ResearchBlurb),
				linkButton("Learn About Research", "/contact", true),
			),
			section("academic-life", "Student Academic Life",
				app.Div().Class("two-col").Body(
					app.Range(content.Resources).Slice(func(i int) app.UI {
						r := content.Resources[i]
						return app.Div().Class("resource").Body(
							app.H3().Body(icon(r.Icon), app.Text(" "+r.Title)),
							app.P().Text(r.Description),
							linkButton(r.Action, r.Link, r.Primary),
						)
					}),
				),
			),
			section("cta", "Ready to shape your expertise?",
				app.P().Text("Start exploring the degree that will define your future."),
				linkButton("Begin Application Process", "/admissions", false),
			),
		)
}

func (p *AcademicsPage) renderTabs() app.UI {
	active := p.active().Key
	return app.Div().
		Class("tabs").
		Body(
			app.Range(content.ProgramAreas).Slice(func(i int) app.UI {
				area := content.ProgramAreas[i]
				classes := []string{"tab"}
				if area.Key == active {
					classes = append(classes, "is-active")
				}
				return app.Button().
					Class(classes...).
					Aria("selected", area.Key == active).
					OnClick(func(ctx app.Context, e app.Event) {
						p.selectTab(area.Key)
					}).
					Text(area.Label)
			}),
		)
}

func (p *AcademicsPage) renderPrograms() app.UI {
	area := p.active()
	return app.Div().
		Class("card-grid", "cols-3").
		Body(
			app.Range(area.Programs).Slice(func(i int) app.UI {
				program := area.Programs[i]
				return app.A().
					Href(content.ProgramPath(area.Key, i)).
					Class("card", "program-card").
					Body(
						app.Div().Class("card-icon").Body(icon(program.Icon)),
						app.H3().Text(program.Title),
						app.P().Text(program.Description),
						app.Span().Class("card-more").Text("View Degrees ›"),
					)
			}),
		)
}

// ProgramPage shows a single program from an Academics tab
type ProgramPage struct {
	app.Compo
	Area  string
	Index string
}

// Render renders the program page, or the not-found page for unknown programs
func (p *ProgramPage) Render() app.UI {
	area, program, ok := content.FindProgram(p.Area, p.Index)
	if !ok {
		return &NotFoundPage{}
	}
	return app.Div().
		Class("program-page").
		Body(
			hero("hero-program", area.Label+":", program.Title, program.Description,
				linkButton("Apply for this Program", "/admissions", true),
				linkButton("Back to Academics", "/academics", false),
			),
			section("program-contact", "Questions about this program?",
				app.P().Text("Our faculty advisors can walk you through course structure, research opportunities and career outcomes."),
				linkButton("Contact Advisor", "/contact", false),
			),
		)
}
