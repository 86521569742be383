// Package header maps the current navigation path to the page header shown
// by the application shell: a title, an optional breadcrumb trail, and an
// optional preferred-state badge.
package header

import (
	"maps"
	"slices"
	"strings"
)

// Breadcrumb is one segment of a navigation trail. An empty Path means the
// crumb is not a link.
type Breadcrumb struct {
	Label string `json:"label"`
	Path  string `json:"path,omitempty"`
}

// RouteDescriptor describes the header for a route. A descriptor with an
// empty Title renders nothing.
type RouteDescriptor struct {
	Title       string       `json:"title"`
	Breadcrumbs []Breadcrumb `json:"breadcrumbs,omitempty"`
	ShowState   bool         `json:"show_state,omitempty"`
}

// IsEmpty reports whether the descriptor renders nothing.
func (d RouteDescriptor) IsEmpty() bool {
	return d.Title == ""
}

func (d RouteDescriptor) clone() RouteDescriptor {
	if d.Breadcrumbs != nil {
		crumbs := make([]Breadcrumb, len(d.Breadcrumbs))
		copy(crumbs, d.Breadcrumbs)
		d.Breadcrumbs = crumbs
	}
	return d
}

// Match says which branch produced a descriptor.
type Match int

const (
	MatchNone Match = iota
	MatchRoute
	MatchWizard
)

func (m Match) String() string {
	switch m {
	case MatchRoute:
		return "route"
	case MatchWizard:
		return "wizard"
	default:
		return "none"
	}
}

// Resolver looks up header descriptors from a static route table.
// It is safe for concurrent use; the table is never mutated after
// construction.
type Resolver struct {
	routes map[string]RouteDescriptor
}

// NewResolver returns a resolver over the application's route table.
func NewResolver() *Resolver {
	return &Resolver{routes: defaultRoutes}
}

// Lookup resolves path and reports which branch matched.
//
// Any path starting with "/templates/" that contains "/fill" anywhere after
// it is the document wizard. This is a substring test, so
// "/templates/x/fill-history" matches too. Every other path must equal a
// table key exactly.
func (r *Resolver) Lookup(path string) (RouteDescriptor, Match) {
	if strings.HasPrefix(path, wizardPrefix) && strings.Contains(path, wizardMarker) {
		return wizardDescriptor.clone(), MatchWizard
	}
	if d, ok := r.routes[path]; ok {
		return d.clone(), MatchRoute
	}
	return RouteDescriptor{}, MatchNone
}

// Resolve returns the header descriptor for path. Unknown paths yield an
// empty descriptor rather than an error. preferredState does not influence
// which descriptor is chosen; it only matters at render time.
func (r *Resolver) Resolve(path, preferredState string) RouteDescriptor {
	d, _ := r.Lookup(path)
	return d
}

// Routes returns the table's paths, sorted.
func (r *Resolver) Routes() []string {
	return slices.Sorted(maps.Keys(r.routes))
}

var defaultResolver = NewResolver()

// Resolve resolves path against the application's route table.
func Resolve(path, preferredState string) RouteDescriptor {
	return defaultResolver.Resolve(path, preferredState)
}
