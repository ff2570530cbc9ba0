package webapp

import (
	"regexp"
	"testing"

	"github.com/drummonds/iamr-site/content"
	"github.com/drummonds/iamr-site/navigation"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

func TestEveryNavLinkHasARoute(t *testing.T) {
	r := NewRouter()
	for _, link := range append([]navigation.NavLink{navigation.Brand}, navigation.Links...) {
		if !r.Has(link.Path) {
			t.Errorf("Nav link %q (%s) has no registered route", link.Label, link.Path)
		}
		if m := r.Dispatch(link.Path); !m.Found {
			t.Errorf("Nav link %q (%s) dispatches to the not-found page", link.Label, link.Path)
		}
	}
}

func TestRouterPages(t *testing.T) {
	r := NewRouter()

	tests := []struct {
		path  string
		check func(app.UI) bool
	}{
		{"/", func(ui app.UI) bool { _, ok := ui.(*HomePage); return ok }},
		{"/about", func(ui app.UI) bool { _, ok := ui.(*AboutPage); return ok }},
		{"/contact", func(ui app.UI) bool { _, ok := ui.(*ContactPage); return ok }},
		{"/admissions", func(ui app.UI) bool { _, ok := ui.(*AdmissionsPage); return ok }},
		{"/academics", func(ui app.UI) bool { _, ok := ui.(*AcademicsPage); return ok }},
		{"/academics/", func(ui app.UI) bool { _, ok := ui.(*AcademicsPage); return ok }},
		{"/nonexistent", func(ui app.UI) bool { _, ok := ui.(*NotFoundPage); return ok }},
		{"/academics/law/0", func(ui app.UI) bool { _, ok := ui.(*NotFoundPage); return ok }},
		{"/academics/engineering/9", func(ui app.UI) bool { _, ok := ui.(*NotFoundPage); return ok }},
		{"/academics/engineering/0", func(ui app.UI) bool {
			p, ok := ui.(*ProgramPage)
			return ok && p.Area == "engineering" && p.Index == "0"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			out := r.Dispatch(tt.path).Output
			if out == nil {
				t.Fatalf("Dispatch(%q) produced no page", tt.path)
			}
			if !tt.check(out) {
				t.Errorf("Dispatch(%q) produced %T", tt.path, out)
			}
		})
	}
}

func TestNotFoundDoesNotPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Dispatch panicked: %v", r)
		}
	}()
	m := NewRouter().Dispatch("/nonexistent")
	if m.Found {
		t.Error("Expected /nonexistent to be unmatched")
	}
}

func TestEveryProgramCardLinksToAPage(t *testing.T) {
	r := NewRouter()
	for _, area := range content.ProgramAreas {
		for i := range area.Programs {
			path := content.ProgramPath(area.Key, i)
			if _, ok := r.Dispatch(path).Output.(*ProgramPage); !ok {
				t.Errorf("Program link %s does not render a program page", path)
			}
		}
	}
}

func TestPatternRegexp(t *testing.T) {
	re := regexp.MustCompile(patternRegexp("/academics/{area}/{index}"))
	for path, want := range map[string]bool{
		"/academics/engineering/0":   true,
		"/academics/engineering/0/":  true,
		"/academics/engineering":     false,
		"/academics/engineering/0/x": false,
		"/about":                     false,
	} {
		if got := re.MatchString(path); got != want {
			t.Errorf("Match %q = %v, want %v", path, got, want)
		}
	}
}

func TestNavBarToggle(t *testing.T) {
	n := &NavBar{}
	if n.menu.Open() {
		t.Fatal("Menu should start closed")
	}
	n.onToggle(app.Context{}, app.Event{})
	if !n.menu.Open() {
		t.Error("First toggle should open the menu")
	}
	n.onLinkClick(app.Context{}, app.Event{})
	if n.menu.Open() {
		t.Error("Following a link should close the menu")
	}
	n.onToggle(app.Context{}, app.Event{})
	n.onToggle(app.Context{}, app.Event{})
	if n.menu.Open() {
		t.Error("Two toggles should leave the menu closed")
	}
}

func TestAcademicsTabs(t *testing.T) {
	p := &AcademicsPage{}
	if got := p.active().Key; got != content.DefaultArea {
		t.Errorf("Expected default tab %q, got %q", content.DefaultArea, got)
	}
	p.selectTab("business")
	if got := p.active().Key; got != "business" {
		t.Errorf("Expected business tab, got %q", got)
	}
	p.selectTab("law")
	if got := p.active().Key; got != "business" {
		t.Errorf("Unknown tab should be ignored, got %q", got)
	}
}
