// Package services holds the client's use cases: the submission flows of the
// signup, login and badge forms, logout, and the badge read path. Each flow
// is a submit.Flow; the pages run them through a submit.Controller.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/badgekeeper/internal/client/client"
	"github.com/dmitrijs2005/badgekeeper/internal/client/models"
	"github.com/dmitrijs2005/badgekeeper/internal/client/session"
	"github.com/dmitrijs2005/badgekeeper/internal/client/submit"
	"github.com/dmitrijs2005/badgekeeper/internal/client/token"
	"github.com/dmitrijs2005/badgekeeper/internal/client/ui"
)

var (
	SignupFailed = ui.Notice{
		Kind:        ui.KindDestructive,
		Title:       "Something went wrong!",
		Description: "Sign up not processed. Please try again!",
	}
	LoginFailed = ui.Notice{
		Kind:        ui.KindDestructive,
		Title:       "User not found!",
		Description: "Your user details may be incorrect. Please try again!",
	}
)

// SignupFlow registers the user, stores the issued credential and moves on
// to the badge form.
func SignupFlow(api client.Client, store session.Store, nav ui.Navigator) submit.Flow[models.Credentials, string] {
	return submit.Flow[models.Credentials, string]{
		Name: "signup",
		Send: func(ctx context.Context, req submit.Request[models.Credentials]) (string, error) {
			return api.Signup(ctx, req.Fields)
		},
		OnSuccess: func(ctx context.Context, _ submit.Request[models.Credentials], tok string) error {
			if err := persistCredential(ctx, store, tok); err != nil {
				return err
			}
			nav.Navigate(ui.PathCreateBadge)
			return nil
		},
		Failure: SignupFailed,
	}
}

// LoginFlow authenticates the user and stores the issued credential. The
// page stays where it is and the form can be submitted again.
func LoginFlow(api client.Client, store session.Store) submit.Flow[models.Credentials, string] {
	return submit.Flow[models.Credentials, string]{
		Name: "login",
		Send: func(ctx context.Context, req submit.Request[models.Credentials]) (string, error) {
			return api.Login(ctx, req.Fields)
		},
		OnSuccess: func(ctx context.Context, _ submit.Request[models.Credentials], tok string) error {
			return persistCredential(ctx, store, tok)
		},
		Failure:        LoginFailed,
		ResetOnSuccess: true,
	}
}

// Logout empties the credential slot and returns to the signup page.
func Logout(ctx context.Context, store session.Store, nav ui.Navigator) error {
	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	nav.Navigate(ui.PathSignup)
	return nil
}

// persistCredential stores a freshly issued credential. A credential the
// client could not use later is refused, leaving the slot untouched.
func persistCredential(ctx context.Context, store session.Store, tok string) error {
	if _, err := token.Parse(tok); err != nil {
		return fmt.Errorf("issued credential rejected: %w", err)
	}
	if err := store.Set(ctx, tok); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}
