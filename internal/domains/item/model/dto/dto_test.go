package dto_test

import (
	"encoding/json"
	"testing"

	"scaffold/internal/domains/item/model"
	"scaffold/internal/domains/item/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateItemRequest_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateItemRequest
		expected model.Item
	}{
		{
			name: "defaults is_active to true and description to nil",
			req:  dto.CreateItemRequest{Name: "Widget", Price: ptr(9.99)},
			expected: model.Item{
				ID:       1,
				Name:     "Widget",
				Price:    9.99,
				IsActive: true,
			},
		},
		{
			name: "keeps explicit values",
			req: dto.CreateItemRequest{
				Name:        "Gadget",
				Description: ptr("shiny"),
				Price:       ptr(0.0),
				IsActive:    ptr(false),
			},
			expected: model.Item{
				ID:          1,
				Name:        "Gadget",
				Description: ptr("shiny"),
				Price:       0,
				IsActive:    false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.ToModel(1))
		})
	}
}

func TestItemResponse_FromModel(t *testing.T) {
	item := model.Item{ID: 4, Name: "Widget", Description: ptr("d"), Price: 12.5, IsActive: true}

	var response dto.ItemResponse
	response.FromModel(item)

	assert.Equal(t, dto.ItemResponse{ID: 4, Name: "Widget", Description: ptr("d"), Price: 12.5, IsActive: true}, response)
}

func TestFromModels(t *testing.T) {
	items := []model.Item{
		{ID: 1, Name: "a", Price: 1},
		{ID: 3, Name: "c", Price: 3},
	}

	response := dto.FromModels(items)

	assert.Len(t, response, 2)
	assert.Equal(t, 1, response[0].ID)
	assert.Equal(t, 3, response[1].ID)
}

func TestFromModels_EmptyListIsNotNil(t *testing.T) {
	response := dto.FromModels(nil)

	assert.NotNil(t, response, "an empty list must encode as [] rather than null")
	assert.Empty(t, response)
}

func TestCreateItemRequest_UnmarshalJSON(t *testing.T) {
	var req dto.CreateItemRequest

	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","price":2,"description":null}`), &req))
	assert.Equal(t, dto.CreateItemRequest{Name: "a", Price: ptr(2.0)}, req)

	err := json.Unmarshal([]byte(`{"name":"a","price":2,"is_active":null}`), &req)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "is_active", typeErr.Field)
}
