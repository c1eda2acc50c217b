package history

import "context"

// Repo stores and lists prediction records.
type Repo interface {
	Insert(ctx context.Context, p Prediction) error
	ListRecent(ctx context.Context, limit int) ([]Prediction, error)
}
