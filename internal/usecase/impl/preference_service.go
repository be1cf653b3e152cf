package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "shopfront/internal/delivery/context"
	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"
	"shopfront/internal/usecase"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(
	txManager repository.TransactionManager,
	categoryRepo repository.CategoryRepository,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		txManager:    txManager,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *preferenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns every category flagged with the user's association.
func (srv *preferenceService) ListCategories(ctx context.Context, userID uint64) ([]*entity.CategorySelection, error) {
	categories, err := srv.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	activeIDs, err := srv.categoryRepo.ListIDsForUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user category ids")
	}

	active := make(map[uint64]struct{}, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = struct{}{}
	}

	selections := make([]*entity.CategorySelection, 0, len(categories))
	for _, category := range categories {
		_, isAssociated := active[category.ID]
		selections = append(selections, &entity.CategorySelection{
			ID:           category.ID,
			Name:         category.Name,
			IsAssociated: isAssociated,
		})
	}

	return selections, nil
}

// ReplaceCategories replaces the user's full association set with exactly the
// given IDs. The delete and the inserts run in one transaction so a concurrent
// reader never observes the transient empty set.
func (srv *preferenceService) ReplaceCategories(ctx context.Context, userID uint64, categoryIDs []uint64) error {
	srv.log(ctx).Info("Replacing category associations",
		slog.Uint64("userID", userID),
		slog.Int("count", len(categoryIDs)),
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CategoryRepo().ReplaceForUser(ctx, userID, dedupe(categoryIDs))
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to replace category associations",
			slog.Uint64("userID", userID),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

// dedupe drops duplicate IDs while preserving order. The request body is a
// set of identifiers; repeating one must not break the composite-key insert.
func dedupe(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
