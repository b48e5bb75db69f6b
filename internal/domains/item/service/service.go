package service

import (
	"context"
	"fmt"
	"time"

	"scaffold/infras/events"
	"scaffold/infras/otel"
	"scaffold/internal/domains/item/model"
	"scaffold/internal/domains/item/model/dto"
	"scaffold/internal/domains/item/repository"
	"scaffold/shared/constant"
	"scaffold/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Item interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (dto.ItemResponse, error)
	GetAll(ctx context.Context) ([]dto.ItemResponse, error)
	Get(ctx context.Context, id int) (dto.ItemResponse, error)
	Update(ctx context.Context, req dto.CreateItemRequest, id int) (dto.ItemResponse, error)
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo   repository.Item
	events events.Bus
	otel   otel.Otel
	now    func() time.Time
}

func New(repo repository.Item, events events.Bus, otel otel.Otel) Item {
	return &serviceImpl{
		repo:   repo,
		events: events,
		otel:   otel,
		now:    timezone.Now,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.repo.Insert(ctx, req.ToModel(0))
	if err != nil {
		log.Error().Err(err).Msg("failed to create item")

		return res, fmt.Errorf("failed to create item: %w", err)
	}

	s.publish(ctx, events.ActionCreated, item.ID)
	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get items")

		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	scope.SetAttribute("items.count", len(items))

	return dto.FromModels(items), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

// Update replaces the whole item; fields missing from req fall back to their create defaults.
func (s *serviceImpl) Update(ctx context.Context, req dto.CreateItemRequest, id int) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.repo.Update(ctx, id, req.ToModel(id))
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to update item")

		return res, fmt.Errorf("failed to update item: %w", err)
	}

	s.publish(ctx, events.ActionUpdated, item.ID)
	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete item")

		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.publish(ctx, events.ActionDeleted, id)

	return nil
}

// publish never fails the request; the record change has already happened.
func (s *serviceImpl) publish(ctx context.Context, action string, id int) {
	event := events.NewEvent(model.EntityName, action, id, s.now())

	if err := s.events.Publish(ctx, constant.TopicItems, event); err != nil {
		log.Warn().Err(err).Str("action", action).Int("id", id).Msg("failed to publish item event")
	}
}
