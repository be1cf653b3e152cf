package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/infra/persistence/model"
)

// categoryRepository implements repository.CategoryRepository using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// ListAll returns every category, ordered by ID.
func (repo *categoryRepository) ListAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, &entity.Category{
			ID:   categoryM.ID,
			Name: categoryM.Name,
		})
	}

	return categories, nil
}

// ListIDsForUser returns the IDs of the categories associated with the user.
func (repo *categoryRepository) ListIDsForUser(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := repo.db.WithContext(ctx).
		Model(&model.UserCategoryModel{}).
		Where("user_id = ?", userID).
		Order("category_id").
		Pluck("category_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category ids for user")
	}

	return ids, nil
}

// ReplaceForUser deletes the user's existing associations and inserts the new
// set. The delete and inserts must share a transaction; run this through the
// transaction manager.
func (repo *categoryRepository) ReplaceForUser(ctx context.Context, userID uint64, categoryIDs []uint64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserCategoryModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear category associations")
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	rows := make([]model.UserCategoryModel, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		rows = append(rows, model.UserCategoryModel{
			UserID:     userID,
			CategoryID: categoryID,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) || isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category ids")
		}

		return errors.Wrap(err, "failed to insert category associations")
	}

	return nil
}
