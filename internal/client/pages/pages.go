// Package pages assembles the client's pages from the session guard, the
// submission controller and the use cases in services. A page value lives
// for one mount: the renderer builds a fresh one from the Factory every time
// it enters a path.
package pages

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/badgekeeper/internal/client/client"
	"github.com/dmitrijs2005/badgekeeper/internal/client/guard"
	"github.com/dmitrijs2005/badgekeeper/internal/client/models"
	"github.com/dmitrijs2005/badgekeeper/internal/client/services"
	"github.com/dmitrijs2005/badgekeeper/internal/client/session"
	"github.com/dmitrijs2005/badgekeeper/internal/client/submit"
	"github.com/dmitrijs2005/badgekeeper/internal/client/ui"
	"github.com/dmitrijs2005/badgekeeper/internal/logging"
)

// ErrNotMounted is returned by Submit on a page whose mount did not render.
var ErrNotMounted = errors.New("page is not rendered")

// Page is anything the renderer can mount.
type Page interface {
	Mount(ctx context.Context) guard.Outcome
}

// Factory builds pages over shared collaborators.
type Factory struct {
	API      client.Client
	Store    session.Store
	Nav      ui.Navigator
	Notifier ui.Notifier
	Logger   logging.Logger
}

func (f *Factory) logger() logging.Logger {
	if f.Logger == nil {
		return logging.NewNop()
	}
	return f.Logger
}

// For returns the page mounted at path, or nil when no page lives there.
func (f *Factory) For(path string) Page {
	switch path {
	case ui.PathSignup:
		return f.Signup()
	case ui.PathLogin:
		return f.Login()
	case ui.PathCreateBadge:
		return f.CreateBadge()
	}
	if id, ok := ui.BadgeIDFromPath(path); ok {
		return f.Profile(id)
	}
	return nil
}

// form is a guarded page with one submission controller.
type form[F, R any] struct {
	guard *guard.Guard
	ctrl  *submit.Controller[F, R]

	mu      sync.Mutex
	outcome guard.Outcome
}

// Mount runs the page's session check. A page without a guard always
// renders. Later calls return the first outcome.
func (p *form[F, R]) Mount(ctx context.Context) guard.Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.outcome != guard.Unchecked {
		return p.outcome
	}
	if p.guard == nil {
		p.outcome = guard.Rendered
	} else {
		p.outcome = p.guard.Check(ctx)
	}
	return p.outcome
}

func (p *form[F, R]) mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outcome == guard.Rendered
}

// Submit arms the page's controller. The returned bool is false when an
// attempt is already running or has succeeded.
func (p *form[F, R]) Submit(ctx context.Context, fields F) (*submit.Attempt, bool, error) {
	if !p.mounted() {
		return nil, false, ErrNotMounted
	}
	a, ok := p.ctrl.Arm(ctx, fields)
	return a, ok, nil
}

func (p *form[F, R]) State() submit.State { return p.ctrl.State() }

func (p *form[F, R]) Subscribe(fn func(submit.State)) (cancel func()) {
	return p.ctrl.Subscribe(fn)
}

// Signup is the registration page. Signed-in users are sent to their badge.
type Signup struct {
	form[models.Credentials, string]
}

func (f *Factory) Signup() *Signup {
	return &Signup{form[models.Credentials, string]{
		guard: guard.New(guard.RedirectIfAuthenticated, f.Store, f.Nav, guard.WithLogger(f.logger())),
		ctrl:  submit.New(services.SignupFlow(f.API, f.Store, f.Nav), f.Store, f.Notifier, f.logger()),
	}}
}

// Login is the sign-in page. It has no session check.
type Login struct {
	form[models.Credentials, string]
}

func (f *Factory) Login() *Login {
	return &Login{form[models.Credentials, string]{
		ctrl: submit.New(services.LoginFlow(f.API, f.Store), f.Store, f.Notifier, f.logger()),
	}}
}

// CreateBadge is the badge form. Signed-out users are sent to signup.
type CreateBadge struct {
	form[models.BadgeForm, struct{}]
}

func (f *Factory) CreateBadge() *CreateBadge {
	return &CreateBadge{form[models.BadgeForm, struct{}]{
		guard: guard.New(guard.RequireAuthenticated, f.Store, f.Nav,
			guard.WithEntryPoint(ui.PathSignup), guard.WithLogger(f.logger())),
		ctrl: submit.New(services.CreateBadgeFlow(f.API, f.Store, f.Nav), f.Store, f.Notifier, f.logger()),
	}}
}

// Logout signs the user out and returns to signup.
func (f *Factory) Logout(ctx context.Context) error {
	return services.Logout(ctx, f.Store, f.Nav)
}
