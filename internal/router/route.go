package router

import (
	"fmt"
	"strings"
)

// View identifies something a route renders. Applications declare their own
// View constants.
type View string

// Params maps parameter names to the path segments they matched.
type Params map[string]string

// Get returns the value bound to name, or "" when unbound.
func (p Params) Get(name string) string {
	return p[name]
}

func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

const wildcardPattern = "*"

// Route is one node of a route tree.
type Route struct {
	// Pattern is matched against a prefix of the remaining path. Top-level
	// patterns may start with "/"; child patterns are relative to their parent.
	Pattern string
	// View is rendered when the route matches.
	View View
	// Index routes carry no pattern and only match when nothing of the path
	// is left at their depth.
	Index bool
	// Children are matched against whatever the Pattern left unconsumed.
	Children []Route
}

// Path declares a route matching pattern.
func Path(pattern string, view View, children ...Route) Route {
	return Route{Pattern: pattern, View: view, Children: children}
}

// Index declares an index route.
func Index(view View) Route {
	return Route{View: view, Index: true}
}

// Wildcard declares a catch-all route.
func Wildcard(view View) Route {
	return Route{Pattern: wildcardPattern, View: view}
}

// RouteError reports an invalid route declaration.
type RouteError struct {
	Pattern string
	Reason  string
}

func (e *RouteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid route %q: %s", e.Pattern, e.Reason)
}

type segmentKind int

const (
	segmentStatic segmentKind = iota
	segmentParam
)

type segment struct {
	kind  segmentKind
	value string
}

type compiledRoute struct {
	pattern  string
	view     View
	index    bool
	wildcard bool
	segments []segment
	children []*compiledRoute
}

func compile(route Route, nested bool, bound map[string]struct{}) (*compiledRoute, error) {
	if strings.TrimSpace(string(route.View)) == "" {
		return nil, &RouteError{Pattern: route.Pattern, Reason: "view is required"}
	}

	c := &compiledRoute{pattern: route.Pattern, view: route.View}

	switch {
	case route.Index:
		if route.Pattern != "" {
			return nil, &RouteError{Pattern: route.Pattern, Reason: "index routes cannot declare a pattern"}
		}
		if len(route.Children) > 0 {
			return nil, &RouteError{Pattern: route.Pattern, Reason: "index routes cannot have children"}
		}
		c.index = true
		return c, nil

	case route.Pattern == wildcardPattern:
		if len(route.Children) > 0 {
			return nil, &RouteError{Pattern: route.Pattern, Reason: "wildcard routes cannot have children"}
		}
		c.wildcard = true
		return c, nil
	}

	if nested && strings.HasPrefix(route.Pattern, "/") {
		return nil, &RouteError{Pattern: route.Pattern, Reason: "child patterns must be relative"}
	}

	segments, err := parsePattern(route.Pattern)
	if err != nil {
		return nil, err
	}

	branch := make(map[string]struct{}, len(bound)+1)
	for name := range bound {
		branch[name] = struct{}{}
	}
	for _, seg := range segments {
		if seg.kind != segmentParam {
			continue
		}
		if _, dup := branch[seg.value]; dup {
			return nil, &RouteError{Pattern: route.Pattern, Reason: fmt.Sprintf("parameter %q already bound by a parent route", seg.value)}
		}
		branch[seg.value] = struct{}{}
	}
	c.segments = segments

	for _, child := range route.Children {
		compiled, err := compile(child, true, branch)
		if err != nil {
			return nil, err
		}
		c.children = append(c.children, compiled)
	}

	return c, nil
}

func parsePattern(pattern string) ([]segment, error) {
	trimmed := strings.Trim(pattern, "/")
	if trimmed == "" {
		return nil, nil
	}

	parts := strings.Split(trimmed, "/")
	segments := make([]segment, 0, len(parts))
	params := 0
	for _, part := range parts {
		switch {
		case part == "":
			return nil, &RouteError{Pattern: pattern, Reason: "empty segment"}
		case part == wildcardPattern || strings.Contains(part, wildcardPattern):
			return nil, &RouteError{Pattern: pattern, Reason: "wildcard must be the whole pattern"}
		}

		name, isParam := paramName(part)
		if !isParam {
			if strings.ContainsAny(part, ":{}") {
				return nil, &RouteError{Pattern: pattern, Reason: fmt.Sprintf("malformed segment %q", part)}
			}
			segments = append(segments, segment{kind: segmentStatic, value: part})
			continue
		}

		if name == "" {
			return nil, &RouteError{Pattern: pattern, Reason: "parameter name is required"}
		}
		params++
		if params > 1 {
			return nil, &RouteError{Pattern: pattern, Reason: "at most one parameter per pattern"}
		}
		segments = append(segments, segment{kind: segmentParam, value: name})
	}
	return segments, nil
}

// paramName recognises ":name" and "{name}" segments.
func paramName(part string) (string, bool) {
	if strings.HasPrefix(part, ":") {
		return part[1:], true
	}
	if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
		return part[1 : len(part)-1], true
	}
	return "", false
}
