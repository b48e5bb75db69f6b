package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"scaffold/internal/domains/todo/model"
	"scaffold/internal/domains/todo/model/dto"
	gModel "scaffold/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTodoRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	description := "Two litres"

	req := dto.CreateTodoRequest{Title: "Buy milk", Description: &description}

	todo := req.ToModel(3, now)

	assert.Equal(t, 3, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, &description, todo.Description)
	assert.False(t, todo.Completed)
	assert.Equal(t, now, todo.CreatedAt)
	assert.Equal(t, now, todo.UpdatedAt)
}

func TestTodoResponse_FromModel(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	todo := model.Todo{
		ID:         7,
		Title:      "Walk dog",
		Completed:  true,
		Timestamps: gModel.Timestamps{CreatedAt: created, UpdatedAt: updated},
	}

	var response dto.TodoResponse
	response.FromModel(todo)

	assert.Equal(t, dto.TodoResponse{
		ID:        7,
		Title:     "Walk dog",
		Completed: true,
		CreatedAt: created,
		UpdatedAt: updated,
	}, response)
}

func TestTodoResponse_JSONShape(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var response dto.TodoResponse
	response.FromModel(model.Todo{ID: 1, Title: "a", Timestamps: gModel.Timestamps{CreatedAt: created, UpdatedAt: created}})

	raw, err := json.Marshal(response)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"title": "a",
		"description": null,
		"completed": false,
		"created_at": "2025-01-01T00:00:00Z",
		"updated_at": "2025-01-01T00:00:00Z"
	}`, string(raw))
}

func TestFromModels_EmptyListIsNotNil(t *testing.T) {
	response := dto.FromModels(nil)

	assert.NotNil(t, response)
	assert.Empty(t, response)
}

func TestCreateTodoRequest_UnmarshalJSON(t *testing.T) {
	var req dto.CreateTodoRequest

	require.NoError(t, json.Unmarshal([]byte(`{"title":"a","completed":true}`), &req))
	assert.Equal(t, dto.CreateTodoRequest{Title: "a", Completed: true}, req)

	err := json.Unmarshal([]byte(`{"title":"a","completed":null}`), &req)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "completed", typeErr.Field)
}
