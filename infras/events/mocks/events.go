package mocks

import (
	"context"
	"sync"

	"scaffold/infras/events"
)

// Bus records published events instead of delivering them.
type Bus struct {
	mu        sync.Mutex
	published map[string][]events.Event
	Err       error
}

func NewBus() *Bus {
	return &Bus{published: map[string][]events.Event{}}
}

// Publish implements events.Bus.
func (b *Bus) Publish(_ context.Context, topic string, event events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Err != nil {
		return b.Err
	}

	b.published[topic] = append(b.published[topic], event)

	return nil
}

// Consume implements events.Bus.
func (b *Bus) Consume(_ context.Context, _ string, _ func(event events.Event)) error {
	return nil
}

// Close implements events.Bus.
func (b *Bus) Close() error {
	return nil
}

// Published returns a copy of the events published on topic.
func (b *Bus) Published(topic string) []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]events.Event(nil), b.published[topic]...)
}
