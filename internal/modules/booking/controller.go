// README: Booking form controller; owns one session's state, memoizes derived values, persists selections.
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type Deps struct {
	Env    Env
	Store  SelectionStore
	Logger *zap.Logger
}

type Controller struct {
	env       Env
	store     SelectionStore
	logger    *zap.Logger
	sessionID string

	mu       sync.Mutex
	state    State
	saved    *Selection
	memoKey  string
	computed Computed
}

// NewController starts a session at DefaultState. Store may be nil.
func NewController(deps Deps, sessionID string) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		env:       deps.Env,
		store:     deps.Store,
		logger:    logger.Named("booking").With(zap.String("session", sessionID)),
		sessionID: sessionID,
		state:     DefaultState(deps.Env),
	}
}

func (c *Controller) SessionID() string { return c.sessionID }

// Replace adopts a client-held state as is, e.g. before dispatching the next
// edit in a stateless request. It does not persist.
func (c *Controller) Replace(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s.clone()
}

// Restore replays the saved selection on top of the current state. A missing
// or unreadable selection leaves the state untouched.
func (c *Controller) Restore(ctx context.Context) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		return c.state.clone()
	}

	raw, err := c.store.Load(ctx, c.sessionID)
	switch {
	case errors.Is(err, ErrNoSelection):
		return c.state.clone()
	case err != nil:
		c.logger.Warn("load selection", zap.Error(err))
		return c.state.clone()
	}

	events := SelectionEvents(raw)
	if events == nil {
		// saved stays nil so the next Dispatch overwrites the entry
		c.logger.Warn("discarding unreadable selection", zap.ByteString("raw", raw))
		return c.state.clone()
	}
	for _, ev := range events {
		c.state = Reduce(c.env, c.state, ev)
	}
	sel := SelectionOf(c.state)
	c.saved = &sel
	return c.state.clone()
}

// Dispatch reduces ev into the session state and saves the selection when
// it changed. Store failures are logged only.
func (c *Controller) Dispatch(ctx context.Context, ev Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.env, c.state, ev)
	c.persist(ctx)
	return c.state.clone()
}

func (c *Controller) persist(ctx context.Context) {
	if c.store == nil {
		return
	}
	sel := SelectionOf(c.state)
	if c.saved != nil && *c.saved == sel {
		return
	}
	raw, err := json.Marshal(sel)
	if err != nil {
		c.logger.Error("encode selection", zap.Error(err))
		return
	}
	if err := c.store.Save(ctx, c.sessionID, raw); err != nil {
		c.logger.Warn("save selection", zap.Error(err))
		return
	}
	c.saved = &sel
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Computed derives the form's values, reusing the last result while the
// state is unchanged.
func (c *Controller) Computed() Computed {
	c.mu.Lock()
	defer c.mu.Unlock()
	key, err := json.Marshal(c.state)
	if err == nil && string(key) == c.memoKey {
		return c.computed
	}
	c.computed = Compute(c.env, c.state)
	if err == nil {
		c.memoKey = string(key)
	}
	return c.computed
}
