package dto

import (
	"encoding/json"
	"reflect"
	"time"

	"scaffold/internal/domains/todo/model"
	"scaffold/shared/validator"
)

// CreateTodoRequest is the body of both create and full-replace requests.
type CreateTodoRequest struct {
	Title       string  `json:"title"       validate:"required,notblank" example:"Buy milk"`
	Description *string `json:"description"                             example:"Two litres"`
	Completed   bool    `json:"completed"                               example:"false"`
} // @name TodoCreate

// UnmarshalJSON rejects an explicit null completed; leaving it out means false.
func (c *CreateTodoRequest) UnmarshalJSON(data []byte) error {
	type plain CreateTodoRequest

	if err := validator.RejectNull(data, map[string]reflect.Type{"completed": reflect.TypeOf(false)}); err != nil {
		return err //nolint:wrapcheck
	}

	return json.Unmarshal(data, (*plain)(c)) //nolint:wrapcheck
}

// ToModel builds a todo with both timestamps set to now.
func (c *CreateTodoRequest) ToModel(id int, now time.Time) model.Todo {
	todo := model.Todo{
		ID:          id,
		Title:       c.Title,
		Description: c.Description,
		Completed:   c.Completed,
	}
	todo.Stamp(now)

	return todo
}

type TodoResponse struct {
	ID          int       `json:"id"          example:"1"`
	Title       string    `json:"title"       example:"Buy milk"`
	Description *string   `json:"description" example:"Two litres"`
	Completed   bool      `json:"completed"   example:"false"`
	CreatedAt   time.Time `json:"created_at"  example:"2025-01-01T00:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at"  example:"2025-01-01T00:00:00Z"`
} // @name Todo

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Completed = model.Completed
	r.CreatedAt = model.CreatedAt
	r.UpdatedAt = model.UpdatedAt
}

func FromModels(models []model.Todo) []TodoResponse {
	res := make([]TodoResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
