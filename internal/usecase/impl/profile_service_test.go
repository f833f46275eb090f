package impl

import (
	"context"
	"testing"
	"time"

	"hdnotes/internal/domain/entity"
	domainerrors "hdnotes/internal/domain/errors"
	"hdnotes/internal/domain/repository"
	mockRepo "hdnotes/internal/mocks/repository"
	"hdnotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileTestFixture struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	refreshRepo *mockRepo.MockRefreshTokenRepository
	noteRepo    *mockRepo.MockNoteRepository
	service     usecase.ProfileUsecase
}

func createTestProfileService(t *testing.T) *profileTestFixture {
	t.Helper()

	fx := &profileTestFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		refreshRepo: mockRepo.NewMockRefreshTokenRepository(t),
		noteRepo:    mockRepo.NewMockNoteRepository(t),
	}
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo).Maybe()
	fx.factory.EXPECT().RefreshTokenRepo().Return(fx.refreshRepo).Maybe()
	fx.factory.EXPECT().NoteRepo().Return(fx.noteRepo).Maybe()
	expectTransaction(fx.txManager, fx.factory)

	fx.service = NewProfileService(fx.txManager, fx.accountRepo, newDiscardLogger())

	return fx
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", IsVerified: true}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := fx.service.GetProfile(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	got, err := fx.service.GetProfile(ctx, accountID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_UpdateProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	account := &entity.Account{
		ID:          uuid.New(),
		Name:        "Alice",
		Email:       "alice@example.com",
		DateOfBirth: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
	}
	newName := "  Alice Liddell "

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil).Once()

	got, err := fx.service.UpdateProfile(ctx, account.ID, &usecase.UpdateProfileInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", got.Name)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), got.DateOfBirth)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()
	dob := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.UpdateProfile(ctx, accountID, &usecase.UpdateProfileInput{DateOfBirth: &dob})

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_DeleteAccount(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.noteRepo.EXPECT().DeleteByOwner(ctx, accountID).Return(nil).Once()
	fx.refreshRepo.EXPECT().DeleteRefreshTokensByAccountID(ctx, accountID).Return(nil).Once()
	fx.accountRepo.EXPECT().Delete(ctx, accountID).Return(nil).Once()

	require.NoError(t, fx.service.DeleteAccount(ctx, accountID))
}

func TestProfileService_DeleteAccount_StopsOnFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.noteRepo.EXPECT().DeleteByOwner(ctx, accountID).Return(errors.New("db error")).Once()

	err := fx.service.DeleteAccount(ctx, accountID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete notes")
	fx.accountRepo.AssertNotCalled(t, "Delete", ctx, accountID)
}
