package router

import (
	"net/url"
	"strings"
)

// Match is the outcome of resolving one path.
type Match struct {
	// Path is the normalised path that was resolved.
	Path string
	// Chain lists the matched views, outermost layout first.
	Chain []View
	// Params holds every parameter bound along the chain.
	Params Params
	// Wildcard reports that the top level fell through to a catch-all route.
	Wildcard bool
}

// Found reports whether any route, catch-all included, matched.
func (m Match) Found() bool {
	return len(m.Chain) > 0
}

// Leaf returns the innermost matched view.
func (m Match) Leaf() View {
	if len(m.Chain) == 0 {
		return ""
	}
	return m.Chain[len(m.Chain)-1]
}

// Contains reports whether view is part of the chain.
func (m Match) Contains(view View) bool {
	for _, v := range m.Chain {
		if v == view {
			return true
		}
	}
	return false
}

// Router resolves paths against a validated route tree. It is immutable
// after New and safe for concurrent use.
type Router struct {
	routes []*compiledRoute
}

// New validates routes and builds a Router.
func New(routes ...Route) (*Router, error) {
	compiled := make([]*compiledRoute, 0, len(routes))
	for _, route := range routes {
		c, err := compile(route, false, nil)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, c)
	}
	return &Router{routes: compiled}, nil
}

// MustNew is like New but panics on an invalid route tree. It is meant for
// package-level route tables.
func MustNew(routes ...Route) *Router {
	r, err := New(routes...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve matches path against the route tree. When nothing matches and no
// catch-all is declared, the returned Match has an empty Chain.
func (r *Router) Resolve(path string) Match {
	normalized := Normalize(path)
	match := Match{Path: normalized, Params: Params{}}
	if r == nil {
		return match
	}

	chain, params, wildcard, ok := matchLevel(r.routes, splitPath(normalized), Params{})
	if !ok {
		return match
	}
	match.Chain = chain
	match.Wildcard = wildcard
	if !wildcard {
		match.Params = params
	}
	return match
}

// matchLevel tries siblings in order, deferring catch-alls until every other
// sibling failed.
func matchLevel(routes []*compiledRoute, segs []string, params Params) ([]View, Params, bool, bool) {
	for _, wildcards := range []bool{false, true} {
		for _, route := range routes {
			if route.wildcard != wildcards {
				continue
			}
			if chain, bound, ok := route.match(segs, params); ok {
				return chain, bound, wildcards, true
			}
		}
	}
	return nil, nil, false, false
}

func (c *compiledRoute) match(segs []string, params Params) ([]View, Params, bool) {
	switch {
	case c.index:
		if len(segs) != 0 {
			return nil, nil, false
		}
		return []View{c.view}, params, true
	case c.wildcard:
		return []View{c.view}, params, true
	}

	if len(segs) < len(c.segments) {
		return nil, nil, false
	}

	bound := params
	for i, seg := range c.segments {
		value := segs[i]
		switch seg.kind {
		case segmentStatic:
			if value != seg.value {
				return nil, nil, false
			}
		case segmentParam:
			if value == "" {
				return nil, nil, false
			}
			if decoded, err := url.PathUnescape(value); err == nil {
				value = decoded
			}
			bound = bound.clone()
			bound[seg.value] = value
		}
	}

	rest := segs[len(c.segments):]
	if len(c.children) == 0 {
		if len(rest) != 0 {
			return nil, nil, false
		}
		return []View{c.view}, bound, true
	}

	if childChain, childParams, _, ok := matchLevel(c.children, rest, bound); ok {
		return append([]View{c.view}, childChain...), childParams, true
	}
	if len(rest) == 0 {
		// Layout without an index child: rendered with an empty outlet.
		return []View{c.view}, bound, true
	}
	return nil, nil, false
}

// Normalize strips query and fragment, forces a leading slash and drops a
// trailing one. Interior empty segments are preserved.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func splitPath(normalized string) []string {
	trimmed := strings.TrimPrefix(normalized, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// Renderer renders one view of a chain. outlet carries the rendering of the
// next view inward and is the zero value for the innermost view.
type Renderer[T any] func(view View, params Params, outlet T) T

// Compose renders m's chain innermost first, injecting each result into its
// parent as the outlet.
func Compose[T any](m Match, render Renderer[T]) T {
	var out T
	for i := len(m.Chain) - 1; i >= 0; i-- {
		out = render(m.Chain[i], m.Params, out)
	}
	return out
}
