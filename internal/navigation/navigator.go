//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Navigator=Navigator"
package navigation

import "sync"

// Navigator abstracts full-page navigation: the current location and the
// ability to move to another path.
type Navigator interface {
	Location() string
	Go(path string)
}

// GuardedNavigator consults the guard before every transition and follows
// its redirect decisions instead of navigating to the requested path.
type GuardedNavigator struct {
	guard *Guard
	impl  Navigator
}

func NewGuardedNavigator(guard *Guard, impl Navigator) *GuardedNavigator {
	return &GuardedNavigator{
		guard: guard,
		impl:  impl,
	}
}

func (n *GuardedNavigator) Location() string {
	return n.impl.Location()
}

func (n *GuardedNavigator) Go(path string) {
	// redirect targets are themselves guarded, the chain settles within
	// a couple of hops
	const maxRedirects = 4
	for i := 0; i < maxRedirects; i++ {
		decision := n.guard.Decide(path)
		if decision.Allowed() {
			break
		}
		path = decision.RedirectTo
	}

	n.impl.Go(path)
}

// MemoryNavigator tracks the current location in memory; it is the
// navigation surface of a headless client, with the embedding shell
// observing location changes through an optional callback.
type MemoryNavigator struct {
	mu       sync.Mutex
	location string
	onChange func(path string)
}

func NewMemoryNavigator(start string, onChange func(path string)) *MemoryNavigator {
	return &MemoryNavigator{
		location: start,
		onChange: onChange,
	}
}

func (n *MemoryNavigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

func (n *MemoryNavigator) Go(path string) {
	n.mu.Lock()
	n.location = path
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(path)
	}
}
