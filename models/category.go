package models

import "time"

// Category groups expenses. Names are unique per user.
type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// AddCategoryRequest carries the name of a new category.
type AddCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
