package router

import (
	"context"

	"github.com/alexisbeaulieu97/navshell/internal/ports"
)

// State is the active navigation state. Views receive it by value; Params
// returns a copy so views cannot mutate navigation.
type State struct {
	Path  string
	Match Match
}

// Params returns a copy of the bound parameters.
func (s State) Params() Params {
	return s.Match.Params.clone()
}

// Navigator owns the current State and its history.
type Navigator struct {
	router    *Router
	current   State
	started   bool
	back      stack
	forward   stack
	publisher ports.EventPublisher
	logger    ports.Logger
}

// NavigatorOption customises a Navigator.
type NavigatorOption func(*Navigator)

// WithPublisher publishes a navigation.changed event on every change.
func WithPublisher(p ports.EventPublisher) NavigatorOption {
	return func(n *Navigator) { n.publisher = p }
}

// WithLogger sets the logger used for navigation diagnostics.
func WithLogger(l ports.Logger) NavigatorOption {
	return func(n *Navigator) { n.logger = l }
}

// NewNavigator creates a Navigator over r. It has no current state until the
// first Replace or Navigate.
func NewNavigator(r *Router, opts ...NavigatorOption) *Navigator {
	n := &Navigator{router: r}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Current returns the active state.
func (n *Navigator) Current() State {
	return n.current
}

// CanGoBack reports whether Back would change the state.
func (n *Navigator) CanGoBack() bool {
	return n.back.len() > 0
}

// CanGoForward reports whether Forward would change the state.
func (n *Navigator) CanGoForward() bool {
	return n.forward.len() > 0
}

// Navigate resolves path and makes it current, recording the previous state
// for Back. Navigating to the current path changes nothing.
func (n *Navigator) Navigate(ctx context.Context, path string) State {
	next := n.resolve(path)
	if !n.started {
		return n.set(ctx, next, "navigate")
	}
	if next.Path == n.current.Path {
		return n.current
	}
	n.back.push(n.current)
	n.forward.clear()
	return n.set(ctx, next, "navigate")
}

// Replace makes path current without recording history.
func (n *Navigator) Replace(ctx context.Context, path string) State {
	return n.set(ctx, n.resolve(path), "replace")
}

// Back restores the state preceding the last navigation. With no history it
// leaves the current state untouched and returns false.
func (n *Navigator) Back(ctx context.Context) (State, bool) {
	prev, ok := n.back.pop()
	if !ok {
		if n.logger != nil {
			n.logger.Debug(ctx, "back requested with empty history", "path", n.current.Path)
		}
		return n.current, false
	}
	n.forward.push(n.current)
	return n.set(ctx, prev, "back"), true
}

// Forward re-applies the state most recently left through Back.
func (n *Navigator) Forward(ctx context.Context) (State, bool) {
	next, ok := n.forward.pop()
	if !ok {
		return n.current, false
	}
	n.back.push(n.current)
	return n.set(ctx, next, "forward"), true
}

func (n *Navigator) resolve(path string) State {
	m := n.router.Resolve(path)
	return State{Path: m.Path, Match: m}
}

func (n *Navigator) set(ctx context.Context, state State, action string) State {
	from := n.current.Path
	n.current = state
	n.started = true

	if n.logger != nil {
		n.logger.Debug(ctx, "navigation changed", "action", action, "from", from, "to", state.Path, "view", string(state.Match.Leaf()))
	}
	if n.publisher != nil {
		_ = n.publisher.Publish(ctx, ports.Event{
			Type: ports.EventNavigationChanged,
			Fields: map[string]interface{}{
				"action":   action,
				"from":     from,
				"path":     state.Path,
				"view":     string(state.Match.Leaf()),
				"wildcard": state.Match.Wildcard,
			},
		})
	}
	return state
}
