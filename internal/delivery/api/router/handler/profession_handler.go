package handler

import (
	"net/http"

	"eventhub/internal/delivery/api/response"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfessionHandler serves the profession catalogue.
type ProfessionHandler struct {
	uc usecase.ProfessionUsecase
}

// NewProfessionHandler is the constructor for ProfessionHandler, injected by Fx.
func NewProfessionHandler(uc usecase.ProfessionUsecase) *ProfessionHandler {
	return &ProfessionHandler{uc: uc}
}

func (h *ProfessionHandler) Create(c echo.Context) error {
	var input usecase.CreateProfessionInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	profession, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newProfessionView(profession))
}

func (h *ProfessionHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfessionInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	profession, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newProfessionView(profession))
}

func (h *ProfessionHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ProfessionHandler) FindAll(c echo.Context) error {
	professions, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapViews(professions, newProfessionView))
}

func (h *ProfessionHandler) FindOne(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	profession, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newProfessionView(profession))
}
