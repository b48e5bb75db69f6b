package model

const (
	EntityName = "item"
	Label      = "Item"
)

type Item struct {
	ID          int
	Name        string
	Description *string
	Price       float64
	IsActive    bool
}
