package repository

import (
	"context"

	"shopfront/internal/domain/entity"
)

// CategoryRepository defines the operations for category persistence and the
// user/category association set.
type CategoryRepository interface {
	// ListAll returns every category, ordered by ID.
	ListAll(ctx context.Context) ([]*entity.Category, error)

	// ListIDsForUser returns the IDs of the categories currently associated
	// with the given user.
	ListIDsForUser(ctx context.Context, userID uint64) ([]uint64, error)

	// ReplaceForUser discards the user's prior association set and installs
	// exactly the given category IDs. Callers are expected to run this inside
	// a transaction so concurrent readers never observe the intermediate
	// empty set.
	ReplaceForUser(ctx context.Context, userID uint64, categoryIDs []uint64) error
}
