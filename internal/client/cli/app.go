package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/badgekeeper/internal/client/client"
	"github.com/dmitrijs2005/badgekeeper/internal/client/config"
	"github.com/dmitrijs2005/badgekeeper/internal/client/guard"
	"github.com/dmitrijs2005/badgekeeper/internal/client/pages"
	"github.com/dmitrijs2005/badgekeeper/internal/client/session"
	"github.com/dmitrijs2005/badgekeeper/internal/client/token"
	"github.com/dmitrijs2005/badgekeeper/internal/filex"
	"github.com/dmitrijs2005/badgekeeper/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  session.Store
	closer io.Closer
	pages  *pages.Factory
	router *Router
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	if _, err := filex.EnsureParentDir(c.SessionDBPath); err != nil {
		logger.Error(ctx, "error preparing session directory", "path", c.SessionDBPath, "error", err)
		return nil, err
	}

	store, err := session.OpenSQLiteStore(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing session store", "path", c.SessionDBPath, "error", err)
		return nil, err
	}

	router := NewRouter()
	factory := &pages.Factory{
		API:      client.NewHTTPClient(c.ServerURL, logger),
		Store:    store,
		Nav:      router,
		Notifier: newTerminalNotifier(os.Stdout),
		Logger:   logger,
	}

	return &App{
		config: c,
		logger: logger,
		store:  store,
		closer: store,
		pages:  factory,
		router: router,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user leaves.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closer == nil {
			return
		}
		if err := a.closer.Close(); err != nil {
			a.logger.Warn(ctx, "failed to close session store", "error", err)
		}
	}()

	printlnFn("Welcome to badgekeeper CLI (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

// session returns the stored credential's payload, or nil when there is no
// usable credential.
func (a *App) session(ctx context.Context) *token.Payload {
	raw, err := a.store.Get(ctx)
	if err != nil || raw == "" {
		return nil
	}
	p, err := token.Parse(raw)
	if err != nil {
		return nil
	}
	return p
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session(ctx) != nil
}

func (a *App) getStatus(ctx context.Context) string {
	s := a.router.Location()
	if p := a.session(ctx); p != nil {
		if s != "" {
			s += " "
		}
		s += p.ID
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// open mounts the page at path and follows the redirects its mount asks
// for. A chain that comes back to a path it already mounted is cut there,
// so each page mounts at most once per call. It returns the page that
// finally rendered, or nil.
func (a *App) open(ctx context.Context, path string) pages.Page {
	visited := make(map[string]struct{}, maxRedirects+1)
	for hop := 0; hop <= maxRedirects; hop++ {
		if _, seen := visited[path]; seen {
			a.logger.Warn(ctx, "redirect loop", "at", path)
			printlnFn("Redirect loop, stopped at", a.router.Location())
			return nil
		}
		visited[path] = struct{}{}
		a.router.enter(path)

		page := a.pages.For(path)
		if page == nil {
			printlnFn("No page at", path)
			return nil
		}
		outcome := page.Mount(ctx)

		next, ok := a.router.take()
		if !ok {
			if outcome != guard.Rendered {
				return nil
			}
			a.render(page)
			return page
		}
		a.logger.Debug(ctx, "redirect", "from", path, "to", next)
		path = next
	}

	a.logger.Warn(ctx, "too many redirects", "last", path)
	printlnFn("Too many redirects, stopped at", a.router.Location())
	return nil
}

// settle mounts the page a finished action navigated to, if any.
func (a *App) settle(ctx context.Context) {
	if next, ok := a.router.take(); ok {
		a.open(ctx, next)
	}
}

func (a *App) render(page pages.Page) {
	p, ok := page.(*pages.Profile)
	if !ok {
		printlnFn("Now at", a.router.Location())
		return
	}
	v, ok := p.Badge()
	if !ok {
		return
	}
	printlnFn(v.FullName)
	printlnFn(v.Subtitle())
	printlnFn("Major:", v.Major)
	if v.GitHub != "" {
		printlnFn("GitHub:", v.GitHub)
	}
}
