package submit

import (
	"context"

	"github.com/google/uuid"
)

// Attempt is the handle of one armed submission.
type Attempt struct {
	id   uuid.UUID
	done chan struct{}
	err  error
}

func newAttempt(id uuid.UUID) *Attempt {
	return &Attempt{id: id, done: make(chan struct{})}
}

func (a *Attempt) finish(err error) {
	a.err = err
	close(a.done)
}

// ID identifies the attempt in logs.
func (a *Attempt) ID() uuid.UUID { return a.id }

// Done is closed once the attempt resolved.
func (a *Attempt) Done() <-chan struct{} { return a.done }

// Err returns the failure cause once Done is closed, nil before that and on
// success.
func (a *Attempt) Err() error {
	select {
	case <-a.done:
		return a.err
	default:
		return nil
	}
}

// Wait blocks until the attempt resolves or ctx ends. Giving up on ctx does
// not cancel the attempt itself.
func (a *Attempt) Wait(ctx context.Context) error {
	select {
	case <-a.done:
		return a.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
