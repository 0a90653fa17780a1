package services

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ErrConnection is the simulated transient failure raised by RandomTransport
var ErrConnection = errors.New("Error de conexión. Intentá nuevamente.")

// Op names a facade operation, e.g. {Entity: "cases", Action: "list"}
type Op struct {
	Entity string
	Action string
}

func (o Op) String() string { return o.Entity + "." + o.Action }

// Action names
const (
	ActionList     = "list"
	ActionGet      = "get"
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionSearch   = "search"
	ActionByCase   = "by_case"
	ActionByClient = "by_client"
	ActionStats    = "stats"
	ActionGenerate = "generate"
)

// Window is the uniform latency range of one operation
type Window struct {
	Min time.Duration
	Max time.Duration
}

func ms(lo, hi int) Window {
	return Window{Min: time.Duration(lo) * time.Millisecond, Max: time.Duration(hi) * time.Millisecond}
}

// DefaultWindows holds the latency window per action, with per-entity overrides keyed by Op.String()
var DefaultWindows = map[string]Window{
	ActionList:     ms(400, 800),
	ActionGet:      ms(300, 500),
	ActionCreate:   ms(500, 800),
	ActionUpdate:   ms(400, 600),
	ActionDelete:   ms(300, 500),
	ActionSearch:   ms(200, 400),
	ActionByCase:   ms(200, 400),
	ActionByClient: ms(200, 400),
	ActionStats:    ms(300, 500),
	ActionGenerate: ms(600, 1000),

	// client, deadline and user reads are lighter
	"clients.list":     ms(300, 500),
	"clients.get":      ms(200, 400),
	"clients.create":   ms(400, 600),
	"clients.update":   ms(300, 500),
	"deadlines.list":   ms(300, 500),
	"deadlines.get":    ms(200, 400),
	"deadlines.create": ms(400, 600),
	"deadlines.update": ms(300, 500),
	"users.list":       ms(300, 500),
	"users.get":        ms(200, 400),
}

// Transport simulates the network between callers and the repository
type Transport interface {
	// Wait blocks for the simulated round trip of op. It returns ctx.Err() when the
	// context ends first, or ErrConnection for a simulated failure.
	Wait(ctx context.Context, op Op) error
}

// NoopTransport never waits and never fails
type NoopTransport struct{}

func (NoopTransport) Wait(ctx context.Context, op Op) error {
	return ctx.Err()
}

// RandomTransport waits a uniformly random delay inside the operation window,
// scaled by Scale, then fails with probability FailureRate
type RandomTransport struct {
	Windows     map[string]Window
	Scale       float64
	FailureRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomTransport creates a transport with DefaultWindows and a time-seeded source
func NewRandomTransport(scale, failureRate float64) *RandomTransport {
	return &RandomTransport{
		Windows:     DefaultWindows,
		Scale:       scale,
		FailureRate: failureRate,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithSeed replaces the random source so delays and failures are reproducible
func (t *RandomTransport) WithSeed(seed int64) *RandomTransport {
	t.mu.Lock()
	t.rnd = rand.New(rand.NewSource(seed))
	t.mu.Unlock()
	return t
}

func (t *RandomTransport) window(op Op) Window {
	if w, ok := t.Windows[op.String()]; ok {
		return w
	}
	if w, ok := t.Windows[op.Action]; ok {
		return w
	}
	return ms(300, 500)
}

// draw returns the scaled delay and whether this call fails
func (t *RandomTransport) draw(op Op) (time.Duration, bool) {
	w := t.window(op)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rnd == nil {
		t.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	delay := w.Min
	if span := w.Max - w.Min; span > 0 {
		delay += time.Duration(t.rnd.Int63n(int64(span)))
	}
	delay = time.Duration(float64(delay) * t.Scale)
	return delay, t.rnd.Float64() < t.FailureRate
}

func (t *RandomTransport) Wait(ctx context.Context, op Op) error {
	delay, fail := t.draw(op)
	simulatedLatency.WithLabelValues(op.Entity, op.Action).Observe(delay.Seconds())

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if fail {
		simulatedFailures.WithLabelValues(op.Entity, op.Action).Inc()
		return ErrConnection
	}
	return nil
}
