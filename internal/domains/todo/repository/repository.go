package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"scaffold/infras/otel"
	"scaffold/internal/domains/todo/model"
	gRepo "scaffold/shared/repository"
)

type Todo interface {
	Insert(ctx context.Context, model model.Todo) (model.Todo, error)
	GetAll(ctx context.Context) ([]model.Todo, error)
	Get(ctx context.Context, id int) (model.Todo, error)
	Update(ctx context.Context, id int, model model.Todo) (model.Todo, error)
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	store *gRepo.Memory[model.Todo]
}

func New(otel otel.Otel) Todo {
	return &repositoryImpl{
		store: gRepo.NewMemory[model.Todo](model.EntityName, model.Label, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, todo model.Todo) (model.Todo, error) {
	return r.store.Insert(ctx, func(id int) model.Todo {
		todo.ID = id

		return todo
	}), nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Todo, error) {
	return r.store.GetAll(ctx), nil
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Todo, error) {
	return r.store.Get(ctx, id) //nolint:wrapcheck
}

// Update replaces the stored todo. The id and created_at of the stored
// record win over whatever the caller passed; updated_at is taken from todo.
func (r *repositoryImpl) Update(ctx context.Context, id int, todo model.Todo) (model.Todo, error) {
	return r.store.Update(ctx, id, func(existing model.Todo) model.Todo { //nolint:wrapcheck
		todo.ID = id
		todo.Touch(existing.CreatedAt, todo.UpdatedAt)

		return todo
	})
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) error {
	return r.store.Delete(ctx, id) //nolint:wrapcheck
}
