package handler

import (
	"eventhub/internal/delivery/api/response"
	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PartnerSupplierHandler serves partner supplier profiles, moderation and billing.
type PartnerSupplierHandler struct {
	uc            usecase.PartnerSupplierUsecase
	subscriptions usecase.SubscriptionUsecase
	guard         *ProfileGuard
}

// NewPartnerSupplierHandler is the constructor for PartnerSupplierHandler, injected by Fx.
func NewPartnerSupplierHandler(
	uc usecase.PartnerSupplierUsecase,
	subscriptions usecase.SubscriptionUsecase,
	guard *ProfileGuard,
) *PartnerSupplierHandler {
	return &PartnerSupplierHandler{uc: uc, subscriptions: subscriptions, guard: guard}
}

type partnerSupplierRegistrationRequest struct {
	PartnerSupplier usecase.CreatePartnerSupplierInput `json:"partnerSupplier"`
	User            usecase.CreateUserInput            `json:"user"`
}

type partnerSupplierRegistrationResponse struct {
	PartnerSupplier *partnerSupplierView `json:"partnerSupplier"`
	User            *userView            `json:"user"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

func (h *PartnerSupplierHandler) Create(c echo.Context) error {
	var req partnerSupplierRegistrationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reg, err := h.uc.Create(c.Request().Context(), &req.PartnerSupplier, &req.User)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, partnerSupplierRegistrationResponse{
		PartnerSupplier: newPartnerSupplierView(reg.PartnerSupplier),
		User:            newUserView(reg.User),
	})
}

func (h *PartnerSupplierHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.guard.Authorize(c, partnerLink(id)); err != nil {
		return err
	}

	var input usecase.UpdatePartnerSupplierInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	partner, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newPartnerSupplierView(partner))
}

// UpdateStatus is admin-only; the route enforces the role.
func (h *PartnerSupplierHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	partner, err := h.uc.UpdateStatus(c.Request().Context(), id, entity.PartnerStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newPartnerSupplierView(partner))
}

func (h *PartnerSupplierHandler) FindAll(c echo.Context) error {
	partners, err := h.uc.FindAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, mapViews(partners, newPartnerSupplierView))
}

func (h *PartnerSupplierHandler) FindOne(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	partner, err := h.uc.FindOne(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newPartnerSupplierView(partner))
}

// Subscription returns the billing state of a partner to its owner or an admin.
func (h *PartnerSupplierHandler) Subscription(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.guard.Authorize(c, partnerLink(id)); err != nil {
		return err
	}

	subscription, err := h.subscriptions.GetByPartnerSupplier(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, newSubscriptionView(subscription))
}

func partnerLink(id uuid.UUID) entity.ProfileLink {
	return entity.ProfileLink{Kind: entity.ProfileKindPartnerSupplier, ID: id}
}
