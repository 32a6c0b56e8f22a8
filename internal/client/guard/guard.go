// Package guard gates a page on the state of the stored credential.
//
// A Guard is created per page mount and checked once, before the page
// renders anything the user can interact with. It either lets the page
// render or navigates away; it never re-runs for the same mount.
package guard

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/badgekeeper/internal/client/session"
	"github.com/dmitrijs2005/badgekeeper/internal/client/token"
	"github.com/dmitrijs2005/badgekeeper/internal/client/ui"
	"github.com/dmitrijs2005/badgekeeper/internal/logging"
)

// Policy selects how a page reacts to the stored credential.
type Policy int

const (
	// RequireAuthenticated renders only with a valid credential and sends
	// everyone else to the entry point.
	RequireAuthenticated Policy = iota
	// RedirectIfAuthenticated is for pages meant for signed-out users: a
	// valid credential skips the page, anything else renders it.
	RedirectIfAuthenticated
)

func (p Policy) String() string {
	switch p {
	case RequireAuthenticated:
		return "require-authenticated"
	case RedirectIfAuthenticated:
		return "redirect-if-authenticated"
	default:
		return "unknown"
	}
}

// Outcome is the result of the mount-time check.
type Outcome int

const (
	Unchecked Outcome = iota
	Rendered
	Redirected
)

func (o Outcome) String() string {
	switch o {
	case Rendered:
		return "rendered"
	case Redirected:
		return "redirected"
	default:
		return "unchecked"
	}
}

// Guard runs the check for one page mount.
type Guard struct {
	policy      Policy
	store       session.Store
	nav         ui.Navigator
	logger      logging.Logger
	entryPoint  string
	destination func(*token.Payload) string

	once    sync.Once
	outcome Outcome
	session *token.Payload
}

// Option customises a Guard.
type Option func(*Guard)

// WithEntryPoint sets where RequireAuthenticated sends signed-out users.
// Defaults to ui.PathSignup.
func WithEntryPoint(path string) Option {
	return func(g *Guard) { g.entryPoint = path }
}

// WithDestination sets where RedirectIfAuthenticated sends signed-in users.
// Defaults to the user's badge page.
func WithDestination(fn func(*token.Payload) string) Option {
	return func(g *Guard) { g.destination = fn }
}

// WithLogger attaches a logger.
func WithLogger(l logging.Logger) Option {
	return func(g *Guard) { g.logger = l }
}

func New(policy Policy, store session.Store, nav ui.Navigator, opts ...Option) *Guard {
	g := &Guard{
		policy:      policy,
		store:       store,
		nav:         nav,
		logger:      logging.NewNop(),
		entryPoint:  ui.PathSignup,
		destination: func(p *token.Payload) string { return ui.BadgePath(p.ID) },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check performs the mount-time check on the first call and returns the
// recorded outcome on every later call.
func (g *Guard) Check(ctx context.Context) Outcome {
	g.once.Do(func() {
		g.outcome = g.run(ctx)
		g.logger.Debug(ctx, "session guard checked", "policy", g.policy, "outcome", g.outcome)
	})
	return g.outcome
}

// Session returns the validated payload of the current credential once Check
// rendered under RequireAuthenticated, nil otherwise.
func (g *Guard) Session() *token.Payload {
	return g.session
}

func (g *Guard) run(ctx context.Context) Outcome {
	raw, err := g.store.Get(ctx)
	if err != nil {
		g.logger.Error(ctx, "failed to read session", "error", err)
		if g.policy == RequireAuthenticated {
			return g.redirect(g.entryPoint)
		}
		return Rendered
	}

	if raw == "" {
		if g.policy == RequireAuthenticated {
			return g.redirect(g.entryPoint)
		}
		return Rendered
	}

	payload, err := token.Parse(raw)
	if err != nil {
		g.invalidate(ctx, err)
		if g.policy == RequireAuthenticated {
			return g.redirect(g.entryPoint)
		}
		return Rendered
	}

	if g.policy == RedirectIfAuthenticated {
		return g.redirect(g.destination(payload))
	}

	g.session = payload
	return Rendered
}

func (g *Guard) invalidate(ctx context.Context, cause error) {
	reason := "decode"
	if errors.Is(cause, token.ErrValidation) {
		reason = "validation"
	}
	g.logger.Info(ctx, "clearing unusable session", "reason", reason, "error", cause)

	if err := g.store.Clear(ctx); err != nil {
		g.logger.Error(ctx, "failed to clear session", "error", err)
	}
}

func (g *Guard) redirect(path string) Outcome {
	g.nav.Navigate(path)
	return Redirected
}
