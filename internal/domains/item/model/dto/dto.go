package dto

import (
	"encoding/json"
	"reflect"

	"scaffold/internal/domains/item/model"
	"scaffold/shared/validator"
)

// CreateItemRequest is the body of both create and full-replace requests.
type CreateItemRequest struct {
	Name        string   `json:"name"        validate:"required,notblank" example:"Widget"`
	Description *string  `json:"description"                             example:"A small widget"`
	Price       *float64 `json:"price"       validate:"required"          example:"9.99"`
	IsActive    *bool    `json:"is_active"                               example:"true"`
} // @name ItemCreate

// UnmarshalJSON treats an explicit null is_active as a type error instead of
// falling back to the default.
func (c *CreateItemRequest) UnmarshalJSON(data []byte) error {
	type plain CreateItemRequest

	if err := validator.RejectNull(data, map[string]reflect.Type{"is_active": reflect.TypeOf(true)}); err != nil {
		return err //nolint:wrapcheck
	}

	return json.Unmarshal(data, (*plain)(c)) //nolint:wrapcheck
}

// ToModel builds the record for the given id. IsActive defaults to true.
func (c *CreateItemRequest) ToModel(id int) model.Item {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	var price float64
	if c.Price != nil {
		price = *c.Price
	}

	return model.Item{
		ID:          id,
		Name:        c.Name,
		Description: c.Description,
		Price:       price,
		IsActive:    isActive,
	}
}

type ItemResponse struct {
	ID          int     `json:"id"          example:"1"`
	Name        string  `json:"name"        example:"Widget"`
	Description *string `json:"description" example:"A small widget"`
	Price       float64 `json:"price"       example:"9.99"`
	IsActive    bool    `json:"is_active"   example:"true"`
} // @name Item

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.IsActive = model.IsActive
}

func FromModels(models []model.Item) []ItemResponse {
	res := make([]ItemResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
