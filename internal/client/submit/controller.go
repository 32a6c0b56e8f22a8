package submit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/badgekeeper/internal/client/session"
	"github.com/dmitrijs2005/badgekeeper/internal/client/ui"
	"github.com/dmitrijs2005/badgekeeper/internal/logging"
	"github.com/google/uuid"
)

// ErrMissingCredential fails an authorized attempt when the store is empty.
var ErrMissingCredential = errors.New("no stored credential")

// State of a Controller.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateInFlight
	StateSucceeded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateInFlight:
		return "in-flight"
	case StateSucceeded:
		return "succeeded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Request is the snapshot sent by one attempt.
type Request[F any] struct {
	ID     uuid.UUID
	Fields F
	// Token is the stored credential, set only for authorized flows.
	Token string
}

// Flow describes one kind of submission.
type Flow[F, R any] struct {
	// Name labels log lines.
	Name string
	// Authorized attaches the stored credential to the request.
	Authorized bool
	// Send issues the single outbound request.
	Send func(ctx context.Context, req Request[F]) (R, error)
	// OnSuccess runs after a successful Send. An error turns the attempt
	// into a failure.
	OnSuccess func(ctx context.Context, req Request[F], res R) error
	// Failure is shown on every failed attempt.
	Failure ui.Notice
	// ResetOnSuccess returns the controller to Idle after success instead of
	// leaving it Succeeded.
	ResetOnSuccess bool
}

// Controller runs attempts of a single Flow, one at a time.
type Controller[F, R any] struct {
	flow     Flow[F, R]
	store    session.Store
	notifier ui.Notifier
	logger   logging.Logger

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

func New[F, R any](flow Flow[F, R], store session.Store, notifier ui.Notifier, logger logging.Logger) *Controller[F, R] {
	return &Controller[F, R]{
		flow:     flow,
		store:    store,
		notifier: notifier,
		logger:   logger.With("flow", flow.Name),
		subs:     make(map[int]func(State)),
	}
}

// State returns the current state.
func (c *Controller[F, R]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn for every later state change. The returned function
// removes it.
func (c *Controller[F, R]) Subscribe(fn func(State)) (cancel func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Arm starts an attempt with the given fields. It reports false, and does
// nothing, unless the controller is Idle.
func (c *Controller[F, R]) Arm(ctx context.Context, fields F) (*Attempt, bool) {
	if !c.transition(StateIdle, StateArmed) {
		c.logger.Debug(ctx, "arm ignored", "state", c.State())
		return nil, false
	}

	req := Request[F]{ID: uuid.New(), Fields: fields}
	attempt := newAttempt(req.ID)
	log := c.logger.With("attempt", req.ID.String())

	if c.flow.Authorized {
		tok, err := c.store.Get(ctx)
		if err == nil && tok == "" {
			err = ErrMissingCredential
		}
		if err != nil {
			c.fail(ctx, log, attempt, fmt.Errorf("read credential: %w", err))
			return attempt, true
		}
		req.Token = tok
	}

	c.move(StateInFlight)
	log.Debug(ctx, "submission in flight")

	// The attempt outlives the caller: values pass through, cancellation
	// does not.
	go c.run(context.WithoutCancel(ctx), log, req, attempt)

	return attempt, true
}

func (c *Controller[F, R]) run(ctx context.Context, log logging.Logger, req Request[F], attempt *Attempt) {
	res, err := c.flow.Send(ctx, req)
	if err == nil && c.flow.OnSuccess != nil {
		err = c.flow.OnSuccess(ctx, req, res)
	}
	if err != nil {
		c.fail(ctx, log, attempt, err)
		return
	}

	next := StateSucceeded
	if c.flow.ResetOnSuccess {
		next = StateIdle
	}
	c.move(next)
	log.Info(ctx, "submission succeeded")

	attempt.finish(nil)
}

func (c *Controller[F, R]) fail(ctx context.Context, log logging.Logger, attempt *Attempt, err error) {
	c.move(StateIdle)

	log.Warn(ctx, "submission failed", "error", err)
	c.notifier.Notify(c.flow.Failure)

	attempt.finish(err)
}

// transition moves from -> to and notifies subscribers. It reports false
// when the controller is not in from.
func (c *Controller[F, R]) transition(from, to State) bool {
	c.mu.Lock()
	if c.state != from {
		c.mu.Unlock()
		return false
	}
	subs := c.setLocked(to)
	c.mu.Unlock()

	notify(subs, to)
	return true
}

// move sets the state unconditionally and notifies subscribers.
func (c *Controller[F, R]) move(to State) {
	c.mu.Lock()
	subs := c.setLocked(to)
	c.mu.Unlock()

	notify(subs, to)
}

func (c *Controller[F, R]) setLocked(to State) []func(State) {
	c.state = to
	subs := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(State), s State) {
	for _, fn := range subs {
		fn(s)
	}
}
