// Package events carries record lifecycle notifications between the domain
// services and whoever listens for them. Delivery is in-process and best
// effort: events published while nobody is subscribed are dropped.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"scaffold/config"
	"scaffold/infras/otel"
	"scaffold/shared/constant"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog/log"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"

	metadataEntity = "entity"
	metadataAction = "action"
)

type Event struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         int       `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Bus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Consume(ctx context.Context, topic string, handler func(event Event)) error
	Close() error
}

type busImpl struct {
	pubSub *gochannel.GoChannel
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Bus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: config.Events.BufferSize},
		NewLoggerAdapter(),
	)

	log.Info().Int64("buffer", config.Events.BufferSize).Msg("Event bus initialized")

	return &busImpl{
		pubSub: pubSub,
		otel:   otel,
	}
}

func (b *busImpl) Publish(ctx context.Context, topic string, event Event) (err error) {
	_, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"event.topic":  topic,
		"event.entity": event.Entity,
		"event.action": event.Action,
		"event.id":     event.ID,
	})

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(metadataEntity, event.Entity)
	msg.Metadata.Set(metadataAction, event.Action)

	if err = b.pubSub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", topic, err)
	}

	return nil
}

// Consume subscribes to topic and hands every decoded event to handler on a
// background goroutine until ctx is done or the bus is closed.
func (b *busImpl) Consume(ctx context.Context, topic string, handler func(event Event)) error {
	messages, err := b.pubSub.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}

	go func() {
		for msg := range messages {
			var event Event

			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				log.Error().Err(err).Str("topic", topic).Str("message_id", msg.UUID).Msg("failed to decode event")
				msg.Ack()

				continue
			}

			handler(event)
			msg.Ack()
		}
	}()

	return nil
}

func (b *busImpl) Close() error {
	if err := b.pubSub.Close(); err != nil {
		return fmt.Errorf("failed to close event bus: %w", err)
	}

	return nil
}

// NewEvent stamps an event for the given record.
func NewEvent(entity, action string, id int, occurredAt time.Time) Event {
	return Event{
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: occurredAt,
	}
}
