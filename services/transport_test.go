package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpString(t *testing.T) {
	assert.Equal(t, "cases.list", Op{Entity: "cases", Action: ActionList}.String())
}

func TestRandomTransport_Windows(t *testing.T) {
	tr := NewRandomTransport(1, 0)

	assert.Equal(t, ms(300, 500), tr.window(Op{Entity: "clients", Action: ActionList}))
	assert.Equal(t, ms(400, 800), tr.window(Op{Entity: "cases", Action: ActionList}))
	assert.Equal(t, ms(600, 1000), tr.window(Op{Entity: "invoices", Action: ActionGenerate}))
	assert.Equal(t, ms(300, 500), tr.window(Op{Entity: "cases", Action: "unknown"}))
}

func TestRandomTransport_DrawStaysInWindow(t *testing.T) {
	tr := NewRandomTransport(1, 0).WithSeed(42)
	op := Op{Entity: "cases", Action: ActionCreate}

	for i := 0; i < 100; i++ {
		delay, fail := tr.draw(op)
		assert.False(t, fail)
		assert.GreaterOrEqual(t, delay, 500*time.Millisecond)
		assert.Less(t, delay, 800*time.Millisecond)
	}
}

func TestRandomTransport_Scale(t *testing.T) {
	tr := NewRandomTransport(0.01, 0).WithSeed(1)
	delay, _ := tr.draw(Op{Entity: "cases", Action: ActionCreate})
	assert.Less(t, delay, 8*time.Millisecond)

	tr = NewRandomTransport(0, 0)
	delay, _ = tr.draw(Op{Entity: "cases", Action: ActionCreate})
	assert.Zero(t, delay)
}

func TestRandomTransport_Wait(t *testing.T) {
	t.Run("Succeeds", func(t *testing.T) {
		tr := NewRandomTransport(0.001, 0)
		require.NoError(t, tr.Wait(context.Background(), Op{Entity: "cases", Action: ActionGet}))
	})

	t.Run("Fails", func(t *testing.T) {
		tr := NewRandomTransport(0, 1)
		assert.ErrorIs(t, tr.Wait(context.Background(), Op{Entity: "cases", Action: ActionGet}), ErrConnection)
	})

	t.Run("Canceled", func(t *testing.T) {
		tr := NewRandomTransport(10, 0)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := tr.Wait(ctx, Op{Entity: "cases", Action: ActionList})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("Custom windows", func(t *testing.T) {
		tr := NewRandomTransport(1, 0)
		tr.Windows = map[string]Window{ActionGet: {}}
		require.NoError(t, tr.Wait(context.Background(), Op{Entity: "cases", Action: ActionGet}))
	})
}

func TestNoopTransport(t *testing.T) {
	assert.NoError(t, NoopTransport{}.Wait(context.Background(), Op{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NoopTransport{}.Wait(ctx, Op{}), context.Canceled)
}
