package routing

import (
	"errors"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry[string] {
	t.Helper()
	r := New[string]()
	for _, p := range []string{"/", "/about", "/contact", "/admissions", "/academics"} {
		pattern := p
		if err := r.Register(pattern, func(Params) string { return "page:" + pattern }); err != nil {
			t.Fatalf("Register(%q) failed: %v", pattern, err)
		}
	}
	err := r.Register("/academics/{area}/{index}", func(p Params) string {
		return "program:" + p.Get("area") + ":" + p.Get("index")
	})
	if err != nil {
		t.Fatalf("Register program route failed: %v", err)
	}
	r.NotFound(func(Params) string { return "not-found" })
	return r
}

func TestDispatch(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name      string
		path      string
		wantFound bool
		want      string
	}{
		{"root", "/", true, "page:/"},
		{"empty path is root", "", true, "page:/"},
		{"literal", "/about", true, "page:/about"},
		{"trailing slash", "/about/", true, "page:/about"},
		{"query string", "/contact?ref=home", true, "page:/contact"},
		{"fragment", "/admissions#deadlines", true, "page:/admissions"},
		{"case sensitive", "/About", false, "not-found"},
		{"unknown", "/nonexistent", false, "not-found"},
		{"program detail", "/academics/engineering/0", true, "program:engineering:0"},
		{"program detail trailing slash", "/academics/business/2/", true, "program:business:2"},
		{"too deep", "/academics/engineering/0/extra", false, "not-found"},
		{"too shallow", "/academics/engineering", false, "not-found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := r.Dispatch(tt.path)
			if m.Found != tt.wantFound {
				t.Errorf("Dispatch(%q).Found = %v, want %v", tt.path, m.Found, tt.wantFound)
			}
			if m.Output != tt.want {
				t.Errorf("Dispatch(%q).Output = %q, want %q", tt.path, m.Output, tt.want)
			}
		})
	}
}

func TestDispatchIsPure(t *testing.T) {
	r := newTestRegistry(t)
	for _, path := range []string{"/", "/about", "/academics/arts-sciences/1", "/nonexistent"} {
		first := r.Dispatch(path)
		second := r.Dispatch(path)
		if first.Output != second.Output || first.Found != second.Found || first.Pattern != second.Pattern {
			t.Errorf("Dispatch(%q) not stable: %+v vs %+v", path, first, second)
		}
	}
}

func TestDispatchRendersExactlyOnce(t *testing.T) {
	r := New[int]()
	calls := 0
	r.MustRegister("/about", func(Params) int { calls++; return 1 })
	r.MustRegister("/{page}", func(Params) int { calls++; return 2 })
	r.NotFound(func(Params) int { calls++; return 0 })

	if got := r.Dispatch("/about").Output; got != 1 {
		t.Errorf("Literal route should win, got %d", got)
	}
	if calls != 1 {
		t.Errorf("Expected one render, got %d", calls)
	}
}

func TestDispatchCapturesParams(t *testing.T) {
	r := newTestRegistry(t)
	m := r.Dispatch("/academics/engineering/2")
	if m.Pattern != "/academics/{area}/{index}" {
		t.Errorf("Unexpected pattern %q", m.Pattern)
	}
	if m.Params.Get("area") != "engineering" || m.Params.Get("index") != "2" {
		t.Errorf("Unexpected params %v", m.Params)
	}
	if m.Params.Get("missing") != "" {
		t.Error("Missing params should read as empty")
	}
}

func TestDispatchWithoutNotFoundRenderer(t *testing.T) {
	r := New[string]()
	r.MustRegister("/", func(Params) string { return "home" })

	m := r.Dispatch("/missing")
	if m.Found {
		t.Error("Expected no match")
	}
	if m.Output != "" {
		t.Errorf("Expected zero output, got %q", m.Output)
	}
}

func TestRegisterErrors(t *testing.T) {
	r := New[string]()
	render := func(Params) string { return "" }
	r.MustRegister("/about", render)

	tests := []struct {
		name    string
		pattern string
		render  RenderFunc[string]
		want    error
	}{
		{"duplicate", "/about", render, ErrDuplicateRoute},
		{"duplicate after normalising", "/about/", render, ErrDuplicateRoute},
		{"relative", "about", render, ErrInvalidPattern},
		{"unnamed parameter", "/x/{}", render, ErrInvalidPattern},
		{"nil renderer", "/nil", nil, ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register(tt.pattern, tt.render)
			if !errors.Is(err, tt.want) {
				t.Errorf("Register(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
		})
	}
}

func TestPathsKeepsRegistrationOrder(t *testing.T) {
	r := newTestRegistry(t)
	want := []string{"/", "/about", "/contact", "/admissions", "/academics", "/academics/{area}/{index}"}
	got := r.Paths()
	if len(got) != len(want) {
		t.Fatalf("Expected %d paths, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Path %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if !r.Has("/contact/") {
		t.Error("Has should normalise its argument")
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"":           "/",
		"/":          "/",
		"//":         "/",
		"about":      "/about",
		"/about/":    "/about",
		"/a/b/?x=1":  "/a/b",
		"/a#section": "/a",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
