package out

import "context"

// CollectionStore persists the ordered task list wholesale.
type CollectionStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, tasks []string) error
}
