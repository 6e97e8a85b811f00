package catalog

import (
	"context"

	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryRepository is the persistence port for catalog categories.
// Lookups return shared.ErrNotFound when no row matches.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// ExistsByName backs the uniqueness check on create and rename.
	ExistsByName(ctx context.Context, name string) (bool, error)

	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
