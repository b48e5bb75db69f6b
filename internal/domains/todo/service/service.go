package service

import (
	"context"
	"fmt"
	"time"

	"scaffold/infras/events"
	"scaffold/infras/otel"
	"scaffold/internal/domains/todo/model"
	"scaffold/internal/domains/todo/model/dto"
	"scaffold/internal/domains/todo/repository"
	"scaffold/shared/constant"
	"scaffold/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context) ([]dto.TodoResponse, error)
	Get(ctx context.Context, id int) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.CreateTodoRequest, id int) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int) error
}

type serviceImpl struct {
	repo   repository.Todo
	events events.Bus
	otel   otel.Otel
	now    func() time.Time
}

func New(repo repository.Todo, events events.Bus, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:   repo,
		events: events,
		otel:   otel,
		now:    timezone.Now,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.now()

	todo, err := s.repo.Insert(ctx, req.ToModel(0, now))
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	s.publish(ctx, events.ActionCreated, todo.ID, now)
	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	scope.SetAttribute("todos.count", len(todos))

	return dto.FromModels(todos), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	res.FromModel(todo)

	return res, nil
}

// Update replaces the todo; created_at survives and updated_at moves to now
// even when nothing else changed.
func (s *serviceImpl) Update(ctx context.Context, req dto.CreateTodoRequest, id int) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.now()

	todo, err := s.repo.Update(ctx, id, req.ToModel(id, now))
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	s.publish(ctx, events.ActionUpdated, todo.ID, now)
	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.publish(ctx, events.ActionDeleted, id, s.now())

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, action string, id int, at time.Time) {
	event := events.NewEvent(model.EntityName, action, id, at)

	if err := s.events.Publish(ctx, constant.TopicTodos, event); err != nil {
		log.Warn().Err(err).Str("action", action).Int("id", id).Msg("failed to publish todo event")
	}
}
