package cli

import "sync"

// maxRedirects bounds the chain of navigations one command may follow.
const maxRedirects = 5

// Router is the terminal's ui.Navigator. Navigate only records the target;
// the App mounts it once the current action returns.
type Router struct {
	mu       sync.Mutex
	location string
	pending  string
}

func NewRouter() *Router {
	return &Router{}
}

// Navigate requests a move to path. When several moves are requested before
// the App settles, the last one wins.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	r.pending = path
	r.mu.Unlock()
}

// Location is the path of the page mounted last.
func (r *Router) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.location
}

func (r *Router) enter(path string) {
	r.mu.Lock()
	r.location = path
	r.mu.Unlock()
}

// take returns and clears the pending navigation.
func (r *Router) take() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.pending
	r.pending = ""
	return p, p != ""
}
