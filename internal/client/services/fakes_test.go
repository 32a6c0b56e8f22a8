package services

import (
	"context"
	"encoding/base64"
	"sync"

	"github.com/dmitrijs2005/badgekeeper/internal/client/models"
)

type fakeAPI struct {
	mu sync.Mutex

	signupCreds models.Credentials
	signupTok   string
	signupErr   error

	loginCreds models.Credentials
	loginTok   string
	loginErr   error

	createToken   string
	createDetails models.BadgeDetails
	createErr     error
	createCalls   int

	getID    string
	getBadge *models.Badge
	getErr   error
	getCalls int
}

func (f *fakeAPI) Signup(_ context.Context, c models.Credentials) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signupCreds = c
	return f.signupTok, f.signupErr
}

func (f *fakeAPI) Login(_ context.Context, c models.Credentials) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCreds = c
	return f.loginTok, f.loginErr
}

func (f *fakeAPI) CreateBadge(_ context.Context, tok string, d models.BadgeDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.createToken, f.createDetails = tok, d
	return f.createErr
}

func (f *fakeAPI) GetBadge(_ context.Context, id string) (*models.Badge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	f.getID = id
	return f.getBadge, f.getErr
}

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) Navigate(p string) {
	r.mu.Lock()
	r.paths = append(r.paths, p)
	r.mu.Unlock()
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func credential(payload string) string {
	enc := base64.RawURLEncoding.EncodeToString
	return enc([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." + enc([]byte(payload)) + ".sig"
}
