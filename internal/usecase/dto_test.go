package usecase

import (
	"testing"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateLoveDecorationInput_ToEntity(t *testing.T) {
	in := &CreateLoveDecorationInput{
		Name:      "Amor em Flor",
		Contact:   "11999990000",
		Instagram: "@amoremflor",
		Address: AddressInput{
			State: "SP", City: "São Paulo", District: "Centro", Street: "Rua A",
			Number: "10", ZipCode: "01000-000",
		},
	}

	got := in.ToEntity()

	assert.Equal(t, "", got.TikTok)
	assert.Equal(t, "SP", got.Address.State)
	assert.Equal(t, "", got.Address.Complement)
	assert.Equal(t, "01000-000", got.Address.ZipCode)
}

func TestUpdatePartnerSupplierInput_ApplyTo(t *testing.T) {
	name := "Buffet Novo"
	professionID := uuid.New()
	partner := &entity.PartnerSupplier{TradeName: "Buffet", CompanyName: "Buffet LTDA", Contact: "1"}

	(&UpdatePartnerSupplierInput{TradeName: &name, ProfessionID: &professionID}).ApplyTo(partner)

	assert.Equal(t, "Buffet Novo", partner.TradeName)
	assert.Equal(t, "Buffet LTDA", partner.CompanyName)
	assert.Equal(t, "1", partner.Contact)
	assert.Equal(t, professionID, *partner.ProfessionID)
}

func TestStripeSubscriptionPayload_Fallbacks(t *testing.T) {
	legacy := &StripeSubscriptionPayload{CurrentPeriodEnd: 1700000000, Plan: &StripePlan{Amount: 9990}}
	assert.Equal(t, int64(1700000000), legacy.PeriodEnd())
	assert.Equal(t, int64(9990), legacy.PlanAmount())

	itemized := &StripeSubscriptionPayload{}
	itemized.Items.Data = []StripeSubscriptionItem{{CurrentPeriodEnd: 1700000001, Plan: &StripePlan{Amount: 4990}}}
	assert.Equal(t, int64(1700000001), itemized.PeriodEnd())
	assert.Equal(t, int64(4990), itemized.PlanAmount())

	empty := &StripeSubscriptionPayload{}
	assert.Zero(t, empty.PeriodEnd())
	assert.Zero(t, empty.PlanAmount())
}
