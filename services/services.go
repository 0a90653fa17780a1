package services

import (
	"context"
	"errors"
	"time"

	"expedientes_app_go/repository"
)

// Services is the facade UI screens talk to. Every call first waits on the
// Transport, then runs against the repository.
type Services struct {
	Clients   *ClientService
	Cases     *CaseService
	Deadlines *DeadlineService
	Hearings  *HearingService
	Fees      *FeeService
	Invoices  *InvoiceService
	Users     *UserService
}

// Option configures the facade
type Option func(*base)

// WithClock overrides the time source used by stats and invoice generation
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// New builds the facade over repo. A nil transport behaves like NoopTransport.
func New(repo *repository.Repository, transport Transport, opts ...Option) *Services {
	if transport == nil {
		transport = NoopTransport{}
	}
	b := &base{
		repo:      repo,
		transport: transport,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(b)
	}

	return &Services{
		Clients:   &ClientService{b},
		Cases:     &CaseService{b},
		Deadlines: &DeadlineService{b},
		Hearings:  &HearingService{b},
		Fees:      &FeeService{b},
		Invoices:  &InvoiceService{b},
		Users:     &UserService{b},
	}
}

type base struct {
	repo      *repository.Repository
	transport Transport
	now       func() time.Time
}

func resultLabel(err error, found bool) string {
	switch {
	case err == nil && found:
		return "ok"
	case err == nil:
		return "not_found"
	case errors.Is(err, ErrConnection):
		return "connection_error"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

func observe(op Op, start time.Time, err error, found bool) {
	operationTotal.WithLabelValues(op.Entity, op.Action, resultLabel(err, found)).Inc()
	operationDuration.WithLabelValues(op.Entity, op.Action).Observe(time.Since(start).Seconds())
}

// run waits on the transport and only then calls fn
func run[T any](ctx context.Context, b *base, op Op, fn func() T) (T, error) {
	start := time.Now()
	if err := b.transport.Wait(ctx, op); err != nil {
		observe(op, start, err, false)
		var zero T
		return zero, err
	}
	out := fn()
	observe(op, start, nil, true)
	return out, nil
}

// runFound is run for lookups that may miss
func runFound[T any](ctx context.Context, b *base, op Op, fn func() (T, bool)) (T, bool, error) {
	start := time.Now()
	var zero T
	if err := b.transport.Wait(ctx, op); err != nil {
		observe(op, start, err, false)
		return zero, false, err
	}
	out, ok := fn()
	observe(op, start, nil, ok)
	return out, ok, nil
}
