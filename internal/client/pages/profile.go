package pages

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/badgekeeper/internal/client/guard"
	"github.com/dmitrijs2005/badgekeeper/internal/client/models"
	"github.com/dmitrijs2005/badgekeeper/internal/client/services"
	"github.com/dmitrijs2005/badgekeeper/internal/client/ui"
	"github.com/dmitrijs2005/badgekeeper/internal/logging"
)

// Profile displays the badge of one user. Only signed-in users may view
// badges; others are sent to login.
type Profile struct {
	id       string
	guard    *guard.Guard
	reader   *services.BadgeReader
	nav      ui.Navigator
	notifier ui.Notifier
	logger   logging.Logger

	once    sync.Once
	outcome guard.Outcome
	badge   *models.Badge
}

func (f *Factory) Profile(id string) *Profile {
	return &Profile{
		id: id,
		guard: guard.New(guard.RequireAuthenticated, f.Store, f.Nav,
			guard.WithEntryPoint(ui.PathLogin), guard.WithLogger(f.logger())),
		reader:   services.NewBadgeReader(f.API, f.logger()),
		nav:      f.Nav,
		notifier: f.Notifier,
		logger:   f.logger(),
	}
}

// ID is the badge owner shown by the page.
func (p *Profile) ID() string { return p.id }

// Mount checks the session and then loads the badge. A failed load leaves
// the page for signup with a notice and reports Redirected.
func (p *Profile) Mount(ctx context.Context) guard.Outcome {
	p.once.Do(func() {
		p.outcome = p.guard.Check(ctx)
		if p.outcome != guard.Rendered {
			return
		}
		b, err := p.reader.Fetch(ctx, p.id)
		if err != nil {
			p.notifier.Notify(services.FetchBadgeFailed)
			p.nav.Navigate(ui.PathSignup)
			p.outcome = guard.Redirected
			return
		}
		p.badge = b
	})
	return p.outcome
}

// Badge returns the loaded badge for display.
func (p *Profile) Badge() (models.BadgeView, bool) {
	if p.badge == nil {
		return models.BadgeView{}, false
	}
	return p.badge.View(), true
}
