package repository_test

import (
	"context"
	"testing"

	"scaffold/infras/otel/mocks"
	"scaffold/internal/domains/item/model"
	"scaffold/internal/domains/item/repository"
	"scaffold/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(mocks.NewOtel())

	created, err := repo.Insert(ctx, model.Item{ID: 99, Name: "Widget", Price: 9.99, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID, "store must ignore the caller supplied id")

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := repo.Update(ctx, created.ID, model.Item{ID: 50, Name: "Widget", Price: 12.5, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, model.Item{ID: 1, Name: "Widget", Price: 12.5, IsActive: true}, updated)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
	assert.Equal(t, "Item not found", err.Error())
}

func TestItemRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(mocks.NewOtel())

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Insert(ctx, model.Item{Name: name, Price: 1, IsActive: true})
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, 2))

	items, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "c", items[1].Name)
}

func TestItemRepository_MissingID(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(mocks.NewOtel())

	_, err := repo.Update(ctx, 1, model.Item{Name: "x"})
	assert.True(t, failure.IsNotFound(err))

	err = repo.Delete(ctx, 1)
	assert.True(t, failure.IsNotFound(err))
}
