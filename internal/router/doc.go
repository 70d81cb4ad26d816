// Package router resolves slash-separated paths against a declarative tree of
// routes and composes the matched views.
//
// # Route Trees
//
// A tree is declared with the Path, Index and Wildcard constructors:
//
//	r, err := router.New(
//	    router.Path("/login", ViewLogin),
//	    router.Path("/dashboard", ViewDashboard,
//	        router.Index(ViewDashboardHome),
//	        router.Path("profile", ViewProfile),
//	    ),
//	    router.Path("/user/:id", ViewUser),
//	    router.Wildcard(ViewNotFound),
//	)
//
// Siblings are tried in declaration order, except wildcards which are always
// tried after every other sibling. Children are only considered once their
// parent matched a prefix of the path. Parameter segments (":id" or "{id}")
// match any non-empty segment and bind it by name.
//
// # Composition
//
// Resolve returns the chain of matched views, outermost first. Compose walks
// that chain from the innermost view outwards, handing each parent the
// rendered child as its outlet, so layouts never look children up through
// shared state.
//
// # Navigation
//
// Navigator keeps the current State together with back and forward history.
// Back restores the state that was active before the last navigation.
package router
