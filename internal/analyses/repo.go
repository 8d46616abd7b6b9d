package analyses

import "context"

// Repo defines persistence operations for analyses.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) (int64, error)
	GetByID(ctx context.Context, id int64) (Analysis, error)
	List(ctx context.Context, limit, offset int) ([]Analysis, error)
	ListAll(ctx context.Context) ([]Analysis, error)
	Search(ctx context.Context, query string, limit int) ([]Analysis, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Stats(ctx context.Context) (Stats, error)
}
