// Package routing dispatches a location path to the page registered for it.
//
// A Registry holds literal routes ("/about") and parameterised routes
// ("/academics/{area}/{index}"). Dispatch always produces exactly one
// rendered value: the matching route, or the not-found renderer.
package routing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateRoute is returned when a pattern is registered twice
	ErrDuplicateRoute = errors.New("route already registered")
	// ErrInvalidPattern is returned for relative or malformed patterns
	ErrInvalidPattern = errors.New("invalid route pattern")
)

// Params holds the values captured by {name} segments
type Params map[string]string

// Get returns the captured value for name, or "" when absent
func (p Params) Get(name string) string {
	return p[name]
}

// RenderFunc produces the output of a page
type RenderFunc[T any] func(Params) T

// Route is a registered pattern and its renderer
type Route[T any] struct {
	Pattern  string
	Render   RenderFunc[T]
	segments []string
	dynamic  bool
}

// Match is the result of a dispatch
type Match[T any] struct {
	Path    string // normalised path that was dispatched
	Pattern string // matched pattern, "" when not found
	Params  Params
	Found   bool
	Output  T
}

// Registry maps patterns to renderers. It is built once at startup and is
// read-only afterwards.
type Registry[T any] struct {
	literal  map[string]*Route[T]
	dynamic  []*Route[T]
	order    []string
	notFound RenderFunc[T]
}

// New returns an empty registry
func New[T any]() *Registry[T] {
	return &Registry[T]{literal: make(map[string]*Route[T])}
}

// Register adds a route for pattern
func (r *Registry[T]) Register(pattern string, render RenderFunc[T]) error {
	if render == nil {
		return fmt.Errorf("%w: %q has no renderer", ErrInvalidPattern, pattern)
	}
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("%w: %q is not absolute", ErrInvalidPattern, pattern)
	}
	pattern = Normalize(pattern)
	if r.has(pattern) {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, pattern)
	}

	route := &Route[T]{Pattern: pattern, Render: render, segments: split(pattern)}
	for _, seg := range route.segments {
		if name, ok := paramName(seg); ok {
			if name == "" {
				return fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, pattern)
			}
			route.dynamic = true
		}
	}

	if route.dynamic {
		r.dynamic = append(r.dynamic, route)
	} else {
		r.literal[pattern] = route
	}
	r.order = append(r.order, pattern)
	return nil
}

// MustRegister is Register for static route tables, panicking on error
func (r *Registry[T]) MustRegister(pattern string, render RenderFunc[T]) {
	if err := r.Register(pattern, render); err != nil {
		panic(err)
	}
}

// NotFound sets the renderer used when no route matches
func (r *Registry[T]) NotFound(render RenderFunc[T]) {
	r.notFound = render
}

// Paths returns the registered patterns in registration order
func (r *Registry[T]) Paths() []string {
	return append([]string(nil), r.order...)
}

// Has reports whether pattern is registered
func (r *Registry[T]) Has(pattern string) bool {
	return r.has(Normalize(pattern))
}

func (r *Registry[T]) has(pattern string) bool {
	if _, ok := r.literal[pattern]; ok {
		return true
	}
	for _, route := range r.dynamic {
		if route.Pattern == pattern {
			return true
		}
	}
	return false
}

// Dispatch renders the route matching path. Literal routes win over
// parameterised ones; among parameterised routes the first registered wins.
// Matching is case-sensitive.
func (r *Registry[T]) Dispatch(path string) Match[T] {
	path = Normalize(path)
	m := Match[T]{Path: path}

	if route, ok := r.literal[path]; ok {
		m.Pattern = route.Pattern
		m.Params = Params{}
		m.Found = true
		m.Output = route.Render(m.Params)
		return m
	}

	segments := split(path)
	for _, route := range r.dynamic {
		params, ok := route.match(segments)
		if !ok {
			continue
		}
		m.Pattern = route.Pattern
		m.Params = params
		m.Found = true
		m.Output = route.Render(params)
		return m
	}

	m.Params = Params{}
	if r.notFound != nil {
		m.Output = r.notFound(m.Params)
	}
	return m
}

func (route *Route[T]) match(segments []string) (Params, bool) {
	if len(segments) != len(route.segments) {
		return nil, false
	}
	params := Params{}
	for i, seg := range route.segments {
		if name, ok := paramName(seg); ok {
			if segments[i] == "" {
				return nil, false
			}
			params[name] = segments[i]
			continue
		}
		if seg != segments[i] {
			return nil, false
		}
	}
	return params, true
}

// Normalize strips the query and fragment, drops a trailing slash and maps
// the empty path to "/"
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func split(path string) []string {
	if path == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

func paramName(seg string) (string, bool) {
	if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}
