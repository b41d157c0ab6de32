package engine

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/tatianab/enterprise-empire/internal/models"
	"github.com/tatianab/enterprise-empire/internal/observe"
)

// IDFunc returns a new identifier for a record of the given kind
// ("fin", "mkt" or "op"). Identifiers must be unique per kind.
type IDFunc func(prefix string) string

// NewID is the default [IDFunc]. It produces prefixed random UUIDs.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Engine owns a single game state and serializes every transition applied
// to it. Readers get copies; the stored state is never handed out.
type Engine struct {
	mu    sync.Mutex
	state models.GameState

	// notifyMu keeps observer callbacks in commit order.
	notifyMu sync.Mutex

	subMu     sync.Mutex
	observers []observer
	nextObs   int

	newID   IDFunc
	logger  *slog.Logger
	metrics *observe.Metrics
}

type observer struct {
	id int
	fn func(models.GameState)
}

// Option configures an [Engine].
type Option func(*Engine)

// WithLogger sets the logger used for transition logs.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics sets the metric instruments. Defaults to [observe.DefaultMetrics].
func WithMetrics(m *observe.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithIDFunc replaces the identifier generator.
func WithIDFunc(f IDFunc) Option {
	return func(e *Engine) { e.newID = f }
}

// NewEngine returns an engine holding [models.DefaultState].
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		state: models.DefaultState(),
		newID: NewID,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.metrics == nil {
		e.metrics = observe.DefaultMetrics()
	}
	return e
}

// State returns a copy of the current state.
func (e *Engine) State() models.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Dispatch applies a to the current state. Invalid payloads are rejected
// with an error wrapping [ErrInvalidPayload] and leave the state untouched.
//
// Observers are called after the new state is committed, in the order they
// subscribed. They may subscribe or unsubscribe but must not call Dispatch.
func (e *Engine) Dispatch(ctx context.Context, a Action) error {
	e.mu.Lock()
	next, err := Reduce(e.state, a, e.newID)
	if err != nil {
		e.mu.Unlock()
		e.logger.WarnContext(ctx, "transition rejected", "transition", a.Transition(), "err", err)
		e.metrics.RecordRejected(ctx, a.Transition())
		return err
	}
	e.state = next
	e.notifyMu.Lock()
	e.mu.Unlock()
	defer e.notifyMu.Unlock()

	e.logger.DebugContext(ctx, "transition applied",
		"transition", a.Transition(),
		"turn", next.CurrentTurn,
		"phase", next.CurrentPhase,
		"cash", next.Company.Resources.Cash,
	)
	e.metrics.RecordApplied(ctx, a.Transition(), next.CurrentTurn, next.Company.Resources.Cash)

	e.subMu.Lock()
	observers := slices.Clone(e.observers)
	e.subMu.Unlock()

	for _, o := range observers {
		o.fn(next.Clone())
	}
	return nil
}

// Subscribe registers fn to receive a copy of the state after every
// committed transition. The returned function removes the subscription.
// Changes made while observers are being notified take effect from the
// next commit.
func (e *Engine) Subscribe(fn func(models.GameState)) (unsubscribe func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	id := e.nextObs
	e.nextObs++
	e.observers = append(e.observers, observer{id: id, fn: fn})

	return func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		e.observers = slices.DeleteFunc(e.observers, func(o observer) bool { return o.id == id })
	}
}
