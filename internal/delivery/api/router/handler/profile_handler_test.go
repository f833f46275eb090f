package handler

import (
	"net/http"
	"testing"
	"time"

	"hdnotes/internal/domain/entity"
	domainerrors "hdnotes/internal/domain/errors"
	mockUC "hdnotes/internal/mocks/usecase"
	"hdnotes/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileHandlerFixture struct {
	handler   *ProfileHandler
	profileUC *mockUC.MockProfileUsecase
	sessionUC *mockUC.MockSessionUsecase
}

func createTestProfileHandler(t *testing.T) *profileHandlerFixture {
	profileUC := mockUC.NewMockProfileUsecase(t)
	sessionUC := mockUC.NewMockSessionUsecase(t)

	return &profileHandlerFixture{
		handler: NewProfileHandler(ProfileHandlerParams{
			ProfileUC: profileUC,
			SessionUC: sessionUC,
			Logger:    newDiscardLogger(),
		}),
		profileUC: profileUC,
		sessionUC: sessionUC,
	}
}

func TestProfileHandler_GetProfile(t *testing.T) {
	f := createTestProfileHandler(t)
	account := newTestAccount()
	f.profileUC.EXPECT().GetProfile(mock.Anything, account.ID).Return(account, nil)

	c, rec := newTestContext(http.MethodGet, "/user/profile", "")
	withAccount(c, account)

	require.NoError(t, f.handler.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	view := decodeData[AccountView](t, rec)
	assert.Equal(t, account.Email, view.Email)
	assert.True(t, view.IsVerified)
	require.NotNil(t, view.LastLoginAt)
	assert.True(t, account.LastLoginAt.Equal(*view.LastLoginAt))
}

func TestProfileHandler_GetProfile_Unauthenticated(t *testing.T) {
	f := createTestProfileHandler(t)
	c, rec := newTestContext(http.MethodGet, "/user/profile", "")

	require.NoError(t, f.handler.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	t.Run("updates the provided fields", func(t *testing.T) {
		f := createTestProfileHandler(t)
		account := newTestAccount()
		updated := *account
		updated.Name = "Alice Cooper"

		f.profileUC.EXPECT().
			UpdateProfile(mock.Anything, account.ID, mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
				return input.Name != nil && *input.Name == "Alice Cooper" &&
					input.DateOfBirth != nil &&
					input.DateOfBirth.Equal(time.Date(1994, 2, 3, 0, 0, 0, 0, time.UTC))
			})).
			Return(&updated, nil)

		c, rec := newTestContext(http.MethodPut, "/user/profile",
			`{"name":"  Alice Cooper ","dateOfBirth":"1994-02-03T10:00:00Z"}`)
		withAccount(c, account)

		require.NoError(t, f.handler.UpdateProfile(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeData[ProfileUpdatedResponse](t, rec)
		assert.Equal(t, MessageProfileUpdated, resp.Message)
		assert.Equal(t, "Alice Cooper", resp.User.Name)
	})

	t.Run("omitted fields are left alone", func(t *testing.T) {
		f := createTestProfileHandler(t)
		account := newTestAccount()
		f.profileUC.EXPECT().
			UpdateProfile(mock.Anything, account.ID, &usecase.UpdateProfileInput{}).
			Return(account, nil)

		c, rec := newTestContext(http.MethodPut, "/user/profile", `{}`)
		withAccount(c, account)

		require.NoError(t, f.handler.UpdateProfile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		f := createTestProfileHandler(t)
		c, rec := newTestContext(http.MethodPut, "/user/profile", `{"name":"   "}`)
		withAccount(c, newTestAccount())

		require.NoError(t, f.handler.UpdateProfile(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "name")
	})
}

func TestProfileHandler_DeleteAccount(t *testing.T) {
	f := createTestProfileHandler(t)
	account := newTestAccount()
	f.profileUC.EXPECT().DeleteAccount(mock.Anything, account.ID).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/user/account", "")
	withAccount(c, account)

	require.NoError(t, f.handler.DeleteAccount(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, MessageAccountDeleted, decodeData[map[string]string](t, rec)["message"])
}

func TestProfileHandler_LogoutAll(t *testing.T) {
	t.Run("revokes every session", func(t *testing.T) {
		f := createTestProfileHandler(t)
		account := newTestAccount()
		f.sessionUC.EXPECT().RevokeAllSessions(mock.Anything, account.ID).Return(nil)

		c, rec := newTestContext(http.MethodPost, "/user/logout-all", "")
		withAccount(c, account)

		require.NoError(t, f.handler.LogoutAll(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("account gone", func(t *testing.T) {
		f := createTestProfileHandler(t)
		account := &entity.Account{ID: newTestAccount().ID}
		f.sessionUC.EXPECT().RevokeAllSessions(mock.Anything, account.ID).
			Return(errors.WithStack(domainerrors.ErrNotFound))

		c, rec := newTestContext(http.MethodPost, "/user/logout-all", "")
		withAccount(c, account)

		require.NoError(t, f.handler.LogoutAll(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
