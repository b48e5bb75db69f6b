package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"scaffold/infras/otel"
	"scaffold/shared/constant"
	"scaffold/shared/failure"
)

const firstID = 1

type entry[T any] struct {
	id     int
	record T
}

// Memory is a process-local record store. Records keep insertion order and
// ids come from a counter that never goes backwards, so a deleted id is
// never handed out again.
type Memory[T any] struct {
	mu       sync.RWMutex
	otel     otel.Otel
	entitas  string
	notFound string
	nextID   int
	entries  []entry[T]
}

func NewMemory[T any](entitasName, label string, otl otel.Otel) *Memory[T] {
	return &Memory[T]{
		otel:     otl,
		entitas:  entitasName,
		notFound: label + " not found",
		nextID:   firstID,
	}
}

func (repo *Memory[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, op))
}

// Insert assigns the next id, lets build produce the record for it and appends the result.
func (repo *Memory[T]) Insert(ctx context.Context, build func(id int) T) T {
	_, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	id := repo.nextID
	record := build(id)

	repo.entries = append(repo.entries, entry[T]{id: id, record: record})
	repo.nextID++

	scope.SetAttribute("record.id", id)

	return record
}

func (repo *Memory[T]) GetAll(ctx context.Context) []T {
	_, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	records := make([]T, len(repo.entries))
	for i, e := range repo.entries {
		records[i] = e.record
	}

	return records
}

func (repo *Memory[T]) Get(ctx context.Context, id int) (T, error) {
	_, scope := repo.scope(ctx, "Get")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	idx := repo.indexOf(id)
	if idx == -1 {
		var zero T

		err := failure.NotFound(repo.notFound)
		scope.TraceError(err)

		return zero, err //nolint:wrapcheck
	}

	return repo.entries[idx].record, nil
}

func (repo *Memory[T]) Exist(ctx context.Context, id int) bool {
	_, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.indexOf(id) != -1
}

func (repo *Memory[T]) Count(ctx context.Context) int {
	_, scope := repo.scope(ctx, "Count")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.entries)
}

// Update swaps the record stored under id for replace(existing). The record
// keeps its id and its position in the listing order.
func (repo *Memory[T]) Update(ctx context.Context, id int, replace func(existing T) T) (T, error) {
	_, scope := repo.scope(ctx, "Update")
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	idx := repo.indexOf(id)
	if idx == -1 {
		var zero T

		err := failure.NotFound(repo.notFound)
		scope.TraceError(err)

		return zero, err //nolint:wrapcheck
	}

	updated := replace(repo.entries[idx].record)
	repo.entries[idx].record = updated

	return updated, nil
}

func (repo *Memory[T]) Delete(ctx context.Context, id int) error {
	_, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	idx := repo.indexOf(id)
	if idx == -1 {
		err := failure.NotFound(repo.notFound)
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	repo.entries = slices.Delete(repo.entries, idx, idx+1)

	return nil
}

// indexOf scans for id; callers must hold the lock.
func (repo *Memory[T]) indexOf(id int) int {
	return slices.IndexFunc(repo.entries, func(e entry[T]) bool {
		return e.id == id
	})
}
