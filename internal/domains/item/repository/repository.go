package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"scaffold/infras/otel"
	"scaffold/internal/domains/item/model"
	gRepo "scaffold/shared/repository"
)

type Item interface {
	Insert(ctx context.Context, model model.Item) (model.Item, error)
	GetAll(ctx context.Context) ([]model.Item, error)
	Get(ctx context.Context, id int) (model.Item, error)
	Update(ctx context.Context, id int, model model.Item) (model.Item, error)
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	store *gRepo.Memory[model.Item]
}

func New(otel otel.Otel) Item {
	return &repositoryImpl{
		store: gRepo.NewMemory[model.Item](model.EntityName, model.Label, otel),
	}
}

// Insert stores the item under a freshly assigned id, ignoring any id the caller set.
func (r *repositoryImpl) Insert(ctx context.Context, item model.Item) (model.Item, error) {
	return r.store.Insert(ctx, func(id int) model.Item {
		item.ID = id

		return item
	}), nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Item, error) {
	return r.store.GetAll(ctx), nil
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (model.Item, error) {
	return r.store.Get(ctx, id) //nolint:wrapcheck
}

// Update replaces every field of the stored item except its id.
func (r *repositoryImpl) Update(ctx context.Context, id int, item model.Item) (model.Item, error) {
	return r.store.Update(ctx, id, func(model.Item) model.Item { //nolint:wrapcheck
		item.ID = id

		return item
	})
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) error {
	return r.store.Delete(ctx, id) //nolint:wrapcheck
}
