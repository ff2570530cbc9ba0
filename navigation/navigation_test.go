package navigation

import "testing"

func TestLinksAreFixed(t *testing.T) {
	want := []NavLink{
		{"/", "Home"},
		{"/about", "About"},
		{"/contact", "Contact"},
		{"/admissions", "Admissions"},
		{"/academics", "Academics"},
	}
	if len(Links) != len(want) {
		t.Fatalf("Expected %d links, got %d", len(want), len(Links))
	}
	for i, link := range Links {
		if link != want[i] {
			t.Errorf("Link %d: expected %+v, got %+v", i, want[i], link)
		}
	}
}

func TestMenuToggle(t *testing.T) {
	var m Menu
	if m.Open() {
		t.Fatal("Menu should start closed")
	}

	for i := 1; i <= 5; i++ {
		m.Toggle()
		wantOpen := i%2 == 1
		if m.Open() != wantOpen {
			t.Errorf("After %d toggles expected open=%v, got %v", i, wantOpen, m.Open())
		}
	}
}

func TestMenuClose(t *testing.T) {
	var m Menu
	m.Toggle()
	m.Close()
	if m.Open() {
		t.Error("Close should leave the menu closed")
	}
	m.Close()
	if m.Open() {
		t.Error("Close on a closed menu should be a no-op")
	}
	m.Toggle()
	if !m.Open() {
		t.Error("Toggle after Close should open the menu")
	}
}

func TestIsActive(t *testing.T) {
	home := Links[0]
	academics := Links[4]

	tests := []struct {
		name    string
		current string
		link    NavLink
		want    bool
	}{
		{"root matches home", "/", home, true},
		{"about does not match home", "/about", home, false},
		{"exact section", "/academics", academics, true},
		{"trailing slash", "/academics/", academics, true},
		{"program detail", "/academics/engineering/0", academics, true},
		{"prefix of another word", "/academicsx", academics, false},
		{"other section", "/contact", academics, false},
		{"repeated trailing slashes", "/academics//", academics, true},
		{"query string", "/academics?tab=business", academics, true},
		{"fragment", "/about#history", Links[1], true},
		{"root with query", "/?ref=mail", home, true},
		{"empty path is root", "", home, true},
		{"root query does not match section", "/?next=/academics", academics, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActive(tt.current, tt.link); got != tt.want {
				t.Errorf("IsActive(%q, %q) = %v, want %v", tt.current, tt.link.Path, got, tt.want)
			}
		})
	}
}
