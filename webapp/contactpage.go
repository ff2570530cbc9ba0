package webapp

import (
	"time"

	"github.com/drummonds/iamr-site/contact"
	"github.com/drummonds/iamr-site/content"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// ContactPage lists departmental contacts, the contact form and the campus
type ContactPage struct {
	app.Compo
}

// Render renders the contact page
func (p *ContactPage) Render() app.UI {
	return app.Div().
		Class("contact-page").
		Body(
			hero("hero-contact",
				"Get In", "Touch",
				"We're here to help you every step of the way. Find the right department or send us a direct message.",
			),
			section("departments", "Departmental Contacts",
				app.Div().Class("card-grid", "cols-3").Body(
					app.Range(content.Departments).Slice(func(i int) app.UI {
						return &DepartmentCard{Department: content.Departments[i]}
					}),
				),
			),
			section("inquiry", "",
				app.Div().Class("two-col").Body(
					&ContactForm{},
					renderCampus(),
				),
			),
		)
}

// DepartmentCard displays a department's phone and email
type DepartmentCard struct {
	app.Compo
	Department content.Department
}

// Render renders the department card
func (d *DepartmentCard) Render() app.UI {
	dep := d.Department
	return app.Div().
		Class("card", "department").
		Body(
			app.Div().Class("card-icon").Body(icon(dep.Icon)),
			app.H3().Text(dep.Title),
			app.P().Text(dep.Description),
			app.P().Body(
				icon("phone"),
				app.A().Href("tel:"+dep.Phone).Text(dep.Phone),
			),
			app.P().Body(
				icon("mail"),
				app.A().Href("mailto:"+dep.Email).Text(dep.Email),
			),
		)
}

func renderCampus() app.UI {
	return app.Div().
		Class("panel", "campus").
		Body(
			app.H3().Body(icon("map-pin"), app.Text(" Visit Our Campus")),
			app.P().Class("campus-name").Text(content.Campus.Name),
			app.P().Text(content.Campus.Address),
			app.Img().
				Src(content.Campus.MapURL).
				Alt("Campus location map").
				Class("campus-map"),
			app.P().Text(content.Campus.Note),
			linkButton("Schedule a Tour", "/admissions", false),
		)
}

// ContactForm is the simulated inquiry form. Its timers live only as long as
// the component is mounted.
type ContactForm struct {
	app.Compo
	controller *contact.Controller
	state      contact.State
}

// OnMount creates the controller, with delays taken from the app environment
func (f *ContactForm) OnMount(ctx app.Context) {
	submitDelay, bannerDelay := contact.DelaysFromEnv(app.Getenv)
	f.start(dispatchScheduler{dispatch: ctx.Dispatch}, submitDelay, bannerDelay)
}

func (f *ContactForm) start(sched contact.Scheduler, submitDelay, bannerDelay time.Duration) {
	f.controller = contact.NewController(sched, contact.Options{
		SubmitDelay: submitDelay,
		BannerDelay: bannerDelay,
		OnChange:    f.onChange,
	})
	f.state = f.controller.State()
}

// OnDismount abandons any pending submission
func (f *ContactForm) OnDismount() {
	if f.controller != nil {
		f.controller.Close()
	}
}

// clearTextarea empties a textarea in the DOM; the browser keeps a typed value
// even when the element's content is re-rendered
var clearTextarea = func(id string) {
	app.Window().GetElementByID(id).Set("value", "")
}

func (f *ContactForm) onChange(s contact.State) {
	f.state = s
	if s.Status == contact.StatusSuccess {
		app.Logf("contact form sent, reference %s", s.Reference)
		clearTextarea("message")
	}
}

func (f *ContactForm) onInput(ctx app.Context, e app.Event) {
	if f.controller == nil {
		return
	}
	name := ctx.JSSrc().Get("name").String()
	value := ctx.JSSrc().Get("value").String()
	if err := f.controller.SetField(name, value); err != nil {
		app.Logf("contact form: %v: %s", err, name)
		return
	}
	f.state = f.controller.State()
}

func (f *ContactForm) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if f.controller == nil {
		return
	}
	if err := f.controller.Submit(); err != nil {
		app.Logf("contact form not submitted: %v", err)
		return
	}
	f.state = f.controller.State()
}

// Render renders the contact form
func (f *ContactForm) Render() app.UI {
	buttonText := "Send Message"
	if f.state.Submitting {
		buttonText = "Sending..."
	}

	return app.Div().
		Class("panel", "contact-form").
		Body(
			app.H3().Body(icon("message-square"), app.Text(" Send Us a Message")),
			f.renderStatus(),
			app.Form().
				OnSubmit(f.onSubmit).
				Body(
					f.renderInput("name", "Full Name", "text", "Jane Doe", f.state.Fields.Name),
					f.renderInput("email", "Email Address", "email", "jane.doe@example.com", f.state.Fields.Email),
					f.renderInput("subject", "Subject", "text", "Question about Academics", f.state.Fields.Subject),
					app.Div().Class("field").Body(
						app.Label().For("message").Text("Your Message"),
						app.Textarea().
							ID("message").
							Name("message").
							Rows(4).
							Required(true).
							Placeholder("Type your detailed message here...").
							OnInput(f.onInput).
							Text(f.state.Fields.Message),
					),
					app.Button().
						Type("submit").
						Class("btn", "btn-primary").
						Disabled(f.state.Submitting).
						Body(app.Text(buttonText)),
				),
		)
}

func (f *ContactForm) renderInput(name, label, inputType, placeholder, value string) app.UI {
	return app.Div().
		Class("field").
		Body(
			app.Label().For(name).Text(label),
			app.Input().
				Type(inputType).
				ID(name).
				Name(name).
				Value(value).
				Required(true).
				Placeholder(placeholder).
				OnInput(f.onInput),
		)
}

// renderStatus renders the result banner
func (f *ContactForm) renderStatus() app.UI {
	switch f.state.Status {
	case contact.StatusSuccess:
		return app.Div().
			Class("alert", "success").
			Attr("role", "alert").
			Body(
				icon("check-circle"),
				app.Text(" Your message has been successfully sent! We will respond shortly."),
				app.P().Class("alert-reference").Text("Reference: "+f.state.Reference),
			)
	case contact.StatusError:
		return app.Div().
			Class("alert", "error").
			Attr("role", "alert").
			Text("Your message could not be sent. Please try again or contact us by phone.")
	default:
		return app.Div()
	}
}

// dispatchScheduler runs timer callbacks on the UI goroutine through dispatch,
// normally app.Context.Dispatch
type dispatchScheduler struct {
	dispatch func(func(app.Context))
}

func (s dispatchScheduler) AfterFunc(d time.Duration, f func()) contact.Timer {
	return time.AfterFunc(d, func() {
		s.dispatch(func(app.Context) {
			f()
		})
	})
}
