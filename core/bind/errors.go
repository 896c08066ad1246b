package bind

import "fmt"

// MissingProviderError is raised (as a panic during render) when a
// scope-bound accessor runs with no enclosing [ActorProvider]. This is a
// programmer error: it is never recovered by this package, so it aborts
// rendering of the offending subtree and surfaces at the nearest
// view.ErrorBoundary, or at the host if there is none.
type MissingProviderError struct {
	// Accessor names the hook that was misused.
	Accessor string
}

func (e *MissingProviderError) Error() string {
	return fmt.Sprintf("bind: %s called with no enclosing ActorProvider scope; wrap the calling component in an ActorProvider", e.Accessor)
}
