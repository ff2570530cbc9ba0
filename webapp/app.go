package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// App is the root component of the application
type App struct {
	app.Compo
	path string
}

// OnPreRender captures the requested path when the server prerenders a page
func (a *App) OnPreRender(ctx app.Context) {
	a.path = ctx.Page().URL().Path
}

// OnMount captures the path the browser opened
func (a *App) OnMount(ctx app.Context) {
	a.path = ctx.Page().URL().Path
}

// OnNav is called on every client-side navigation
func (a *App) OnNav(ctx app.Context) {
	a.path = ctx.Page().URL().Path
}

// Render renders the app
func (a *App) Render() app.UI {
	return app.Div().
		Class("app-container").
		Body(
			&NavBar{Current: a.path},
			app.Main().Class("content").Body(
				a.renderPage(),
			),
			renderFooter(),
		)
}

// renderPage renders the page registered for the current path
func (a *App) renderPage() app.UI {
	return pages.Dispatch(a.path).Output
}

func renderFooter() app.UI {
	return app.Footer().
		Class("site-footer").
		Body(
			app.P().Text("© Institute of Applied Modern Research"),
		)
}
