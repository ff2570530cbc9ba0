package webapp

import (
	"regexp"
	"strings"
	"sync"

	"github.com/drummonds/iamr-site/content"
	"github.com/drummonds/iamr-site/routing"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// pages is the page registry shared by the server prerenderer and the wasm client
var pages = NewRouter()

var registerOnce sync.Once

// NewRouter builds the page registry. Every page is a fresh component, so
// dispatching the same path twice yields equal output.
func NewRouter() *routing.Registry[app.UI] {
	r := routing.New[app.UI]()
	r.MustRegister("/", func(routing.Params) app.UI { return &HomePage{} })
	r.MustRegister("/about", func(routing.Params) app.UI { return &AboutPage{} })
	r.MustRegister("/contact", func(routing.Params) app.UI { return &ContactPage{} })
	r.MustRegister("/admissions", func(routing.Params) app.UI { return &AdmissionsPage{} })
	r.MustRegister("/academics", func(routing.Params) app.UI { return &AcademicsPage{} })
	r.MustRegister("/academics/{area}/{index}", func(p routing.Params) app.UI {
		if _, _, ok := content.FindProgram(p.Get("area"), p.Get("index")); !ok {
			return &NotFoundPage{}
		}
		return &ProgramPage{Area: p.Get("area"), Index: p.Get("index")}
	})
	r.NotFound(func(routing.Params) app.UI { return &NotFoundPage{} })
	return r
}

// RegisterRoutes points every path at the App shell, which picks the page
// itself. Unknown paths also reach the shell so it can show the not-found page.
func RegisterRoutes() {
	registerOnce.Do(func() {
		newApp := func() app.Composer { return &App{} }
		for _, pattern := range pages.Paths() {
			if !strings.Contains(pattern, "{") {
				app.Route(pattern, newApp)
				continue
			}
			app.RouteWithRegexp(patternRegexp(pattern), newApp)
		}
		app.RouteWithRegexp("^/.*", newApp)
	})
}

var paramSegment = regexp.MustCompile(`\{[^/]+\}`)

// patternRegexp turns "/academics/{area}/{index}" into an anchored regexp
func patternRegexp(pattern string) string {
	parts := paramSegment.Split(pattern, -1)
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return "^" + strings.Join(parts, "[^/]+") + "/?$"
}
