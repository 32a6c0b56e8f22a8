package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/badgekeeper/internal/client/models"
	"github.com/dmitrijs2005/badgekeeper/internal/client/pages"
	"github.com/dmitrijs2005/badgekeeper/internal/client/submit"
	"github.com/dmitrijs2005/badgekeeper/internal/client/ui"
	"github.com/dmitrijs2005/badgekeeper/internal/common"
)

// graduationLayout is the date format accepted by the badge form.
const graduationLayout = "2006-01-02"

var errRequired = errors.New("all fields are required")

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup opens the signup page and, when it renders, submits the account
// details the user enters.
func (a *App) Signup(ctx context.Context) error {
	page, ok := a.open(ctx, ui.PathSignup).(*pages.Signup)
	if !ok {
		return nil
	}
	creds, err := a.readCredentials()
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	attempt, armed, err := page.Submit(ctx, creds)
	return a.await(ctx, attempt, armed, err, "Signed up!")
}

// Login opens the login page and submits the credentials the user enters.
func (a *App) Login(ctx context.Context) error {
	page, ok := a.open(ctx, ui.PathLogin).(*pages.Login)
	if !ok {
		return nil
	}
	creds, err := a.readCredentials()
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	attempt, armed, err := page.Submit(ctx, creds)
	return a.await(ctx, attempt, armed, err, "Logged in!")
}

// CreateBadge opens the badge form and submits the details the user enters.
func (a *App) CreateBadge(ctx context.Context) error {
	page, ok := a.open(ctx, ui.PathCreateBadge).(*pages.CreateBadge)
	if !ok {
		return nil
	}
	form, err := a.readBadgeForm()
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	attempt, armed, err := page.Submit(ctx, form)
	return a.await(ctx, attempt, armed, err, "Badge created!")
}

// Show opens the badge page of user id.
func (a *App) Show(ctx context.Context, id string) error {
	a.open(ctx, ui.BadgePath(id))
	return nil
}

// Me opens the signed-in user's own badge page.
func (a *App) Me(ctx context.Context) error {
	p := a.session(ctx)
	if p == nil {
		printlnFn("Not logged in")
		return nil
	}
	a.open(ctx, ui.BadgePath(p.ID))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.pages.Logout(ctx); err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("Logged out")
	a.settle(ctx)
	return nil
}

// Status prints the current page and the session subject.
func (a *App) Status(ctx context.Context) error {
	loc := a.router.Location()
	if loc == "" {
		loc = "-"
	}
	printlnFn("Page:", loc)

	p := a.session(ctx)
	if p == nil {
		printlnFn("Session: none")
		return nil
	}
	printlnFn("Session:", p.ID)
	if exp, ok := p.ExpiresAt(); ok {
		printlnFn("Expires:", exp.UTC().Format(time.RFC3339))
	}
	return nil
}

// await waits for a submitted attempt and mounts wherever it navigated.
// Failures were already shown by the page's notifier.
func (a *App) await(ctx context.Context, attempt *submit.Attempt, armed bool, err error, success string) error {
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	if !armed {
		printlnFn("A submission is already in progress")
		return nil
	}
	if err := attempt.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			printlnFn("Interrupted; the request was left to finish in the background")
		}
		return err
	}
	printlnFn(success)
	a.settle(ctx)
	return nil
}

func (a *App) readCredentials() (models.Credentials, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return models.Credentials{}, err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		return models.Credentials{}, errRequired
	}
	return models.Credentials{Email: email, Password: string(password)}, nil
}

func (a *App) readBadgeForm() (models.BadgeForm, error) {
	var f models.BadgeForm
	var date string

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter full name", &f.FullName},
		{"Enter university", &f.University},
		{"Enter major", &f.Major},
		{"Enter graduation date (YYYY-MM-DD)", &date},
		{"Enter GitHub profile URL", &f.GitHub},
	}
	for _, fl := range fields {
		v, err := getSimpleText(a.reader, fl.prompt, a.out)
		if err != nil {
			return models.BadgeForm{}, err
		}
		if strings.TrimSpace(v) == "" {
			return models.BadgeForm{}, errRequired
		}
		*fl.dst = v
	}

	d, err := time.ParseInLocation(graduationLayout, date, time.UTC)
	if err != nil {
		return models.BadgeForm{}, fmt.Errorf("graduation date: %w", err)
	}
	f.GraduationDate = d
	return f, nil
}
