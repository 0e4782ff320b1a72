package handler

import (
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

type addressView struct {
	ID         uuid.UUID `json:"id"`
	State      string    `json:"state"`
	City       string    `json:"city"`
	District   string    `json:"district"`
	Street     string    `json:"street"`
	Complement string    `json:"complement"`
	Number     string    `json:"number"`
	ZipCode    string    `json:"zipCode"`
}

func newAddressView(a *entity.Address) *addressView {
	if a == nil {
		return nil
	}

	return &addressView{
		ID:         a.ID,
		State:      a.State,
		City:       a.City,
		District:   a.District,
		Street:     a.Street,
		Complement: a.Complement,
		Number:     a.Number,
		ZipCode:    a.ZipCode,
	}
}

// userView never carries the password hash.
type userView struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	PartnerSupplierID *uuid.UUID `json:"partnerSupplierId,omitempty"`
	LoveDecorationID  *uuid.UUID `json:"loveDecorationId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func newUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}

	return &userView{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              u.Role.String(),
		PartnerSupplierID: u.PartnerSupplierID,
		LoveDecorationID:  u.LoveDecorationID,
		CreatedAt:         u.CreatedAt,
	}
}

type loveDecorationView struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Contact   string       `json:"contact"`
	Instagram string       `json:"instagram"`
	TikTok    string       `json:"tiktok"`
	Address   *addressView `json:"address"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func newLoveDecorationView(p *entity.LoveDecoration) *loveDecorationView {
	return &loveDecorationView{
		ID:        p.ID,
		Name:      p.Name,
		Contact:   p.Contact,
		Instagram: p.Instagram,
		TikTok:    p.TikTok,
		Address:   newAddressView(p.Address),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type partnerSupplierView struct {
	ID           uuid.UUID    `json:"id"`
	TradeName    string       `json:"tradeName"`
	CompanyName  string       `json:"companyName"`
	Document     string       `json:"document"`
	Contact      string       `json:"contact"`
	Instagram    string       `json:"instagram"`
	ProfessionID *uuid.UUID   `json:"professionId"`
	Status       string       `json:"status"`
	Address      *addressView `json:"address"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func newPartnerSupplierView(p *entity.PartnerSupplier) *partnerSupplierView {
	return &partnerSupplierView{
		ID:           p.ID,
		TradeName:    p.TradeName,
		CompanyName:  p.CompanyName,
		Document:     p.Document,
		Contact:      p.Contact,
		Instagram:    p.Instagram,
		ProfessionID: p.ProfessionID,
		Status:       p.Status.String(),
		Address:      newAddressView(p.Address),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type professionView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

func newProfessionView(p *entity.Profession) *professionView {
	return &professionView{ID: p.ID, Name: p.Name, Description: p.Description}
}

type subscriptionView struct {
	PartnerSupplierID  uuid.UUID `json:"partnerSupplierId"`
	StripeCustomerID   string    `json:"stripeCustomerId"`
	SubscriptionID     string    `json:"subscriptionId"`
	SubscriptionStatus string    `json:"subscriptionStatus"`
	PlanType           string    `json:"planType"`
	CurrentPeriodEnd   time.Time `json:"currentPeriodEnd"`
	CancelAtPeriodEnd  bool      `json:"cancelAtPeriodEnd"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func newSubscriptionView(s *entity.Subscription) *subscriptionView {
	return &subscriptionView{
		PartnerSupplierID:  s.PartnerSupplierID,
		StripeCustomerID:   s.StripeCustomerID,
		SubscriptionID:     s.SubscriptionID,
		SubscriptionStatus: s.SubscriptionStatus,
		PlanType:           s.PlanType.String(),
		CurrentPeriodEnd:   s.CurrentPeriodEnd,
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
		UpdatedAt:          s.UpdatedAt,
	}
}

func mapViews[T any, V any](items []T, view func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, view(item))
	}

	return out
}
