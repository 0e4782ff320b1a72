package handler

import (
	"eventhub/internal/delivery/api/response"
	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LoveDecorationHandler serves love decoration vendor profiles.
type LoveDecorationHandler struct {
	uc    usecase.LoveDecorationUsecase
	guard *ProfileGuard
}

// NewLoveDecorationHandler is the constructor for LoveDecorationHandler, injected by Fx.
func NewLoveDecorationHandler(uc usecase.LoveDecorationUsecase, guard *ProfileGuard) *LoveDecorationHandler {
	return &LoveDecorationHandler{uc: uc, guard: guard}
}

type loveDecorationRegistrationRequest struct {
	LoveDecoration usecase.CreateLoveDecorationInput `json:"loveDecoration"`
	User           usecase.CreateUserInput           `json:"user"`
}

type loveDecorationRegistrationResponse struct {
	LoveDecoration *loveDecorationView `json:"loveDecoration"`
	User           *userView           `json:"user"`
}

// Create registers a vendor profile together with its account.
func (h *LoveDecorationHandler) Create(c echo.Context) error {
	var req loveDecorationRegistrationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reg, err := h.uc.Create(c.Request().Context(), &req.LoveDecoration, &req.User)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, loveDecorationRegistrationResponse{
		LoveDecoration: newLoveDecorationView(reg.LoveDecoration),
		User:           newUserView(reg.User),
	})
}

func (h *LoveDecorationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.guard.Authorize(c, entity.ProfileLink{Kind: entity.ProfileKindLoveDecoration, ID: id}); err != nil {
		return err
	}

	var input usecase.UpdateLoveDecorationInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	profile, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newLoveDecorationView(profile))
}

func (h *LoveDecorationHandler) FindAll(c echo.Context) error {
	profiles, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapViews(profiles, newLoveDecorationView))
}

func (h *LoveDecorationHandler) FindOne(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newLoveDecorationView(profile))
}
