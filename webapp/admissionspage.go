package webapp

import (
	"strconv"
	"strings"

	"github.com/drummonds/iamr-site/content"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// ApplyURL is the external application portal
const ApplyURL = "https://apply.iamr.edu"

// AdmissionsPage lists deadlines and the application process
type AdmissionsPage struct {
	app.Compo
}

// Render renders the admissions page
func (p *AdmissionsPage) Render() app.UI {
	return app.Div().
		Class("admissions-page").
		Body(
			hero("hero-admissions",
				"Join the Next", "Generation",
				"Your journey at the Institute of Applied Modern Research begins here. Explore our process and start your application today.",
				linkButton("Start Your Application", ApplyURL, false),
			),
			section("deadlines", "Important Deadlines",
				app.Div().Class("card-grid", "cols-3").Body(
					app.Range(content.Deadlines).Slice(func(i int) app.UI {
						return &DeadlineCard{Deadline: content.Deadlines[i]}
					}),
				),
			),
			section("steps", "The 4-Step Application Process",
				app.Div().Class("step-list").Body(
					app.Range(content.Steps).Slice(func(i int) app.UI {
						return &StepCard{Step: content.Steps[i]}
					}),
				),
			),
			section("cta", "Questions about Financial Aid or Requirements?",
				app.P().Text("Our admissions team is here to guide you through scholarships, grants, and loans."),
				app.Div().Class("cta-actions").Body(
					linkButton("Contact Admissions Office", "/contact", false),
					linkButton("Explore Programs First", "/academics", false),
				),
			),
		)
}

// DeadlineCard displays one admissions deadline
type DeadlineCard struct {
	app.Compo
	Deadline content.Deadline
}

// Render renders the deadline card
func (d *DeadlineCard) Render() app.UI {
	return app.Div().
		Class("card", "deadline").
		Body(
			app.Div().Class("deadline-header").Body(
				app.H3().Text(d.Deadline.Name),
				app.Span().
					Class("badge", "badge-"+strings.ToLower(d.Deadline.Status)).
					Text(d.Deadline.Status),
			),
			app.P().Class("deadline-date").Text(d.Deadline.Date),
			app.P().Text(d.Deadline.Details),
		)
}

// StepCard displays a numbered application step
type StepCard struct {
	app.Compo
	Step content.Step
}

// Render renders the step card
func (s *StepCard) Render() app.UI {
	return app.Div().
		Class("step").
		Body(
			app.Div().Class("step-number").Text(strconv.Itoa(s.Step.Number)),
			app.Div().Class("step-body").Body(
				app.H3().Body(icon(s.Step.Icon), app.Text(" "+s.Step.Title)),
				app.P().Text(s.Step.Description),
			),
		)
}
