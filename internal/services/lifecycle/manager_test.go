package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestShutdown_ReverseOrderOnce(t *testing.T) {
	m := New(0, nil)
	var order []string
	m.Register("store", func(ctx context.Context) error {
		order = append(order, "store")
		return nil
	})
	m.RegisterCloser("outbox", closerFunc(func() error {
		order = append(order, "outbox")
		return nil
	}))
	m.Register("http", func(ctx context.Context) error {
		order = append(order, "http")
		return nil
	})

	assert.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, []string{"http", "outbox", "store"}, order)

	assert.NoError(t, m.Shutdown(context.Background()))
	assert.Len(t, order, 3)
}

func TestShutdown_JoinsErrors(t *testing.T) {
	m := New(0, nil)
	boom := errors.New("boom")
	m.Register("a", func(ctx context.Context) error { return boom })
	m.Register("b", func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, m.Shutdown(context.Background()), boom)
}

func TestShutdown_SkipsAfterDeadline(t *testing.T) {
	m := New(0, nil)
	called := false
	m.Register("late", func(ctx context.Context) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Shutdown(ctx), context.Canceled)
	assert.False(t, called)
}
