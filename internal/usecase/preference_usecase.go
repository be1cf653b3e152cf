package usecase

import (
	"context"

	"shopfront/internal/domain/entity"
)

// PreferenceUsecase defines the operations on a user's category preferences.
type PreferenceUsecase interface {
	// ListCategories returns every category flagged with whether the user has
	// it associated.
	ListCategories(ctx context.Context, userID uint64) ([]*entity.CategorySelection, error)

	// ReplaceCategories installs exactly the given category set for the user,
	// replacing whatever was associated before. The write is atomic from the
	// caller's perspective.
	ReplaceCategories(ctx context.Context, userID uint64, categoryIDs []uint64) error
}
