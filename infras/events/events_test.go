package events_test

import (
	"context"
	"testing"
	"time"

	"scaffold/config"
	"scaffold/infras/events"
	"scaffold/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus(t *testing.T) events.Bus {
	t.Helper()

	cfg := &config.Config{}
	cfg.Events.BufferSize = 8

	bus := events.New(cfg, mocks.NewOtel())
	t.Cleanup(func() { _ = bus.Close() })

	return bus
}

func TestBus_PublishConsume(t *testing.T) {
	bus := newBus(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan events.Event, 1)
	require.NoError(t, bus.Consume(ctx, "items", func(event events.Event) {
		received <- event
	}))

	occurredAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sent := events.NewEvent("item", events.ActionCreated, 1, occurredAt)

	require.NoError(t, bus.Publish(ctx, "items", sent))

	select {
	case got := <-received:
		assert.Equal(t, sent.Entity, got.Entity)
		assert.Equal(t, sent.Action, got.Action)
		assert.Equal(t, sent.ID, got.ID)
		assert.True(t, sent.OccurredAt.Equal(got.OccurredAt))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBus_TopicsAreIsolated(t *testing.T) {
	bus := newBus(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan events.Event, 1)
	require.NoError(t, bus.Consume(ctx, "todos", func(event events.Event) {
		received <- event
	}))

	require.NoError(t, bus.Publish(ctx, "items", events.NewEvent("item", events.ActionDeleted, 3, time.Now())))

	select {
	case got := <-received:
		t.Fatalf("unexpected event on todos topic: %+v", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := newBus(t)

	err := bus.Publish(context.Background(), "items", events.NewEvent("item", events.ActionUpdated, 1, time.Now()))

	assert.NoError(t, err)
}

func TestBus_PublishAfterClose(t *testing.T) {
	cfg := &config.Config{}
	bus := events.New(cfg, mocks.NewOtel())

	require.NoError(t, bus.Close())

	err := bus.Publish(context.Background(), "items", events.NewEvent("item", events.ActionCreated, 1, time.Now()))

	assert.Error(t, err)
}
