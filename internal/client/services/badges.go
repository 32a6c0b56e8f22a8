package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/badgekeeper/internal/client/client"
	"github.com/dmitrijs2005/badgekeeper/internal/client/models"
	"github.com/dmitrijs2005/badgekeeper/internal/client/session"
	"github.com/dmitrijs2005/badgekeeper/internal/client/submit"
	"github.com/dmitrijs2005/badgekeeper/internal/client/token"
	"github.com/dmitrijs2005/badgekeeper/internal/client/ui"
	"github.com/dmitrijs2005/badgekeeper/internal/logging"
)

// ErrNotFoundOrServer covers every failed badge read. A missing badge and a
// failing server are not told apart.
var ErrNotFoundOrServer = errors.New("badge not found or server error")

var (
	CreateBadgeFailed = ui.Notice{
		Kind:        ui.KindDestructive,
		Title:       "Error creating badge",
		Description: "Please try again.",
	}
	FetchBadgeFailed = ui.Notice{
		Kind:        ui.KindDestructive,
		Title:       "Error loading badge",
		Description: "Please try again.",
	}
)

// CreateBadgeFlow sends the badge form with the stored credential. On
// success it navigates to the badge page of the subject named by that same
// credential, the one read when the form was armed.
func CreateBadgeFlow(api client.Client, store session.Store, nav ui.Navigator) submit.Flow[models.BadgeForm, struct{}] {
	return submit.Flow[models.BadgeForm, struct{}]{
		Name:       "create-badge",
		Authorized: true,
		Send: func(ctx context.Context, req submit.Request[models.BadgeForm]) (struct{}, error) {
			return struct{}{}, api.CreateBadge(ctx, req.Token, req.Fields.Details())
		},
		OnSuccess: func(ctx context.Context, req submit.Request[models.BadgeForm], _ struct{}) error {
			p, err := token.Parse(req.Token)
			if err != nil {
				err = fmt.Errorf("stored credential: %w", err)
				if cerr := store.Clear(ctx); cerr != nil {
					return errors.Join(err, fmt.Errorf("clear session: %w", cerr))
				}
				return err
			}
			nav.Navigate(ui.BadgePath(p.ID))
			return nil
		},
		Failure: CreateBadgeFailed,
	}
}

// BadgeReader fetches badges for display.
type BadgeReader struct {
	api    client.Client
	logger logging.Logger
}

func NewBadgeReader(api client.Client, logger logging.Logger) *BadgeReader {
	return &BadgeReader{api: api, logger: logger}
}

// Fetch reads the badge of user id with a single unauthenticated request.
// Any failure is reported as ErrNotFoundOrServer.
func (r *BadgeReader) Fetch(ctx context.Context, id string) (*models.Badge, error) {
	b, err := r.api.GetBadge(ctx, id)
	if err != nil {
		r.logger.Warn(ctx, "badge read failed", "id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrNotFoundOrServer, err)
	}
	return b, nil
}
