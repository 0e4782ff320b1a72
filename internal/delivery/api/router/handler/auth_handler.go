package handler

import (
	"time"

	"eventhub/internal/delivery/api/response"
	deliverycontext "eventhub/internal/delivery/context"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves login and the current account.
type AuthHandler struct {
	users usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(users usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{users: users}
}

type loginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        *userView `json:"user"`
}

// Login exchanges email and password for an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.users.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, loginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   output.ExpiresAt,
		User:        newUserView(output.User),
	})
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	user, err := h.users.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newUserView(user))
}
