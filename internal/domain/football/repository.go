package football

import "context"

// Repository loads the immutable dataset from its backing store.
type Repository interface {
	Load(ctx context.Context) (Dataset, error)
}

// Writer replaces the stored dataset in one step.
type Writer interface {
	Replace(ctx context.Context, ds Dataset) error
}
