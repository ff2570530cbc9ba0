package navigation

import (
	"strings"

	"github.com/drummonds/iamr-site/routing"
)

// NavLink pairs a route path with the label shown in the header
type NavLink struct {
	Path  string
	Label string
}

// Brand is the logo link in the top left of the header
var Brand = NavLink{Path: "/", Label: "IAMR"}

// Links are the header entries, in display order
var Links = []NavLink{
	{Path: "/", Label: "Home"},
	{Path: "/about", Label: "About"},
	{Path: "/contact", Label: "Contact"},
	{Path: "/admissions", Label: "Admissions"},
	{Path: "/academics", Label: "Academics"},
}

// IsActive reports whether link should be highlighted while current is displayed.
// Both paths are normalised the way the router sees them. Sub-paths highlight
// their section, except for the root link which only matches itself.
func IsActive(current string, link NavLink) bool {
	current = routing.Normalize(current)
	target := routing.Normalize(link.Path)
	if target == "/" {
		return current == "/"
	}
	return current == target || strings.HasPrefix(current, target+"/")
}

// Menu is the open/closed state of the mobile menu. The zero value is closed.
type Menu struct {
	open bool
}

// Toggle flips the menu between open and closed
func (m *Menu) Toggle() {
	m.open = !m.open
}

// Close forces the menu closed, used when a link is followed
func (m *Menu) Close() {
	m.open = false
}

// Open reports whether the mobile list should be rendered
func (m *Menu) Open() bool {
	return m.open
}
