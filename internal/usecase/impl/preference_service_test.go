package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"
	mockRepo "shopfront/internal/mocks/repository"
	"shopfront/internal/usecase"
)

// preferenceServiceFixtures holds all test dependencies for preference service tests.
type preferenceServiceFixtures struct {
	service      usecase.PreferenceUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestPreferenceService(t *testing.T) preferenceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewPreferenceService(txManager, categoryRepo, newDiscardLogger())

	return preferenceServiceFixtures{
		service:      service,
		txManager:    txManager,
		categoryRepo: categoryRepo,
	}
}

func TestPreferenceService_ListCategories_FlagsAssociations(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().ListAll(ctx).Return([]*entity.Category{
		{ID: 1, Name: "electronics"},
		{ID: 2, Name: "books"},
		{ID: 3, Name: "garden"},
	}, nil)
	fx.categoryRepo.EXPECT().ListIDsForUser(ctx, uint64(7)).Return([]uint64{1, 3}, nil)

	selections, err := fx.service.ListCategories(ctx, 7)

	require.NoError(t, err)
	require.Len(t, selections, 3)
	assert.True(t, selections[0].IsAssociated)
	assert.False(t, selections[1].IsAssociated)
	assert.True(t, selections[2].IsAssociated)
	assert.Equal(t, "books", selections[1].Name)
}

func TestPreferenceService_ListCategories_EmptySelection(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().ListAll(ctx).Return([]*entity.Category{
		{ID: 1, Name: "electronics"},
	}, nil)
	fx.categoryRepo.EXPECT().ListIDsForUser(ctx, uint64(7)).Return(nil, nil)

	selections, err := fx.service.ListCategories(ctx, 7)

	require.NoError(t, err)
	require.Len(t, selections, 1)
	assert.False(t, selections[0].IsAssociated)
}

func TestPreferenceService_ListCategories_StorageFailure(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().ListAll(ctx).Return(nil, errors.New("connection reset"))

	selections, err := fx.service.ListCategories(ctx, 7)

	require.Error(t, err)
	assert.Nil(t, selections)
}

func TestPreferenceService_ReplaceCategories_RunsInTransaction(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().
				ReplaceForUser(ctx, uint64(7), []uint64{1, 3}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ReplaceCategories(ctx, 7, []uint64{1, 3})
	require.NoError(t, err)
}

func TestPreferenceService_ReplaceCategories_DedupesIDs(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().
				ReplaceForUser(ctx, uint64(7), []uint64{2, 1}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ReplaceCategories(ctx, 7, []uint64{2, 1, 2, 2, 1})
	require.NoError(t, err)
}

func TestPreferenceService_ReplaceCategories_EmptySetClears(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().
				ReplaceForUser(ctx, uint64(7), []uint64{}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ReplaceCategories(ctx, 7, nil)
	require.NoError(t, err)
}

func TestPreferenceService_ReplaceCategories_FailurePropagates(t *testing.T) {
	fx := createTestPreferenceService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	err := fx.service.ReplaceCategories(ctx, 7, []uint64{1})
	require.Error(t, err)
}
