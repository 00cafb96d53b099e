package route

import "sync"

const maxRedirects = 4

// Navigator keeps a history stack and applies guard decisions to it, so a
// guarded page the user was redirected away from never enters the history.
type Navigator struct {
	mu      sync.Mutex
	guard   *Guard
	history []string
}

// Push navigates to path, adding a history entry.
func (n *Navigator) Push(path string) *Decision {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.navigate(path, false)
}

// Replace navigates to path, overwriting the current history entry.
func (n *Navigator) Replace(path string) *Decision {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.navigate(path, true)
}

// Back returns to the previous entry, resolving it again. It reports false
// when there is nowhere to go back to.
func (n *Navigator) Back() (*Decision, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.history) < 2 {
		return nil, false
	}
	n.history = n.history[:len(n.history)-1]
	return n.navigate(n.history[len(n.history)-1], true), true
}

// Current returns the path at the top of the history, or "" when empty.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.history) == 0 {
		return ""
	}
	return n.history[len(n.history)-1]
}

// History returns a copy of the history stack, oldest first.
func (n *Navigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.history...)
}

func (n *Navigator) navigate(path string, replace bool) *Decision {
	decision := n.guard.Resolve(path)
	n.record(normalize(path), replace)
	for hops := 0; decision.Redirect && hops < maxRedirects; hops++ {
		n.record(decision.Path, decision.Replace)
		decision = n.guard.Resolve(decision.Path)
	}
	return decision
}

func (n *Navigator) record(path string, replace bool) {
	if replace && len(n.history) > 0 {
		n.history[len(n.history)-1] = path
		return
	}
	n.history = append(n.history, path)
}

func NewNavigator(guard *Guard) *Navigator {
	return &Navigator{guard: guard}
}
