// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request body into dst and runs the echo validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(dst); err != nil {
		return err
	}

	return nil
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	return id, nil
}

// ProfileGuard decides whether the caller may act on a profile.
type ProfileGuard struct {
	users usecase.UserUsecase
}

// NewProfileGuard is the constructor for ProfileGuard.
func NewProfileGuard(users usecase.UserUsecase) *ProfileGuard {
	return &ProfileGuard{users: users}
}

// Authorize passes admins and the account linked to link.
func (g *ProfileGuard) Authorize(c echo.Context, link entity.ProfileLink) error {
	if deliverycontext.GetRoles(c).Contains(entity.RoleAdmin) {
		return nil
	}

	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	user, err := g.users.GetUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return domainerrors.ErrForbidden
		}

		return err
	}
	if user.Link() != link {
		return domainerrors.ErrForbidden
	}

	return nil
}
