package middleware

import (
	"strings"

	deliverycontext "hdnotes/internal/delivery/context"
	"hdnotes/internal/domain/entity"
	"hdnotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyAccountID = "accountID"
	contextKeyAccount   = "account"
)

// AuthMiddleware guards routes that require a signed-in, verified account.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer access token and stores the account on the context.
// Failures are returned as errors so ErrorMiddleware renders them.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		account, err := m.authUC.Authenticate(c.Request().Context(), bearerToken(c))
		if err != nil {
			return err
		}

		SetAccount(c, account)

		return next(c)
	}
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header, or "".
func bearerToken(c echo.Context) string {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// SetAccount stores the authenticated account on the echo context and tags the
// request context with its ID.
func SetAccount(c echo.Context, account *entity.Account) {
	c.Set(contextKeyAccountID, account.ID)
	c.Set(contextKeyAccount, account)

	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithAccountID(req.Context(), account.ID)))
}

// GetUserID returns the authenticated account ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get(contextKeyAccountID).(uuid.UUID)

	return accountID, ok
}

// GetAccount returns the authenticated account set by Authenticate.
func GetAccount(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(contextKeyAccount).(*entity.Account)

	return account, ok && account != nil
}
