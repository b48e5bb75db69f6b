package model

import "scaffold/shared/model"

const (
	EntityName = "todo"
	Label      = "Todo"
)

type Todo struct {
	ID          int
	Title       string
	Description *string
	Completed   bool
	model.Timestamps
}
