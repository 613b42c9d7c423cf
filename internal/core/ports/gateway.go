package ports

import "context"

// Page selects a window of a list.
type Page struct {
	Limit  int
	Offset int
}

// Gateway is the uniform CRUD contract of every entity table. T is the row
// type, C the create input and U the partial update input.
type Gateway[T, C, U any] interface {
	List(ctx context.Context, page Page) ([]T, int, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in C) (*T, error)
	Update(ctx context.Context, id int64, in U) (*T, error)
	// SoftDelete tombstones the row and returns it as it was deleted.
	SoftDelete(ctx context.Context, id int64) (*T, error)
}
