package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPlanTierFromAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   PlanTier
	}{
		{amount: 4990, want: PlanTierBasic},
		{amount: 9990, want: PlanTierPro},
		{amount: 19990, want: PlanTierPremium},
		{amount: 0, want: PlanTierUnknown},
		{amount: 4991, want: PlanTierUnknown},
		{amount: -4990, want: PlanTierUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PlanTierFromAmount(tt.amount), "amount %d", tt.amount)
	}
}

func TestPlanTierFromAmount_IsStableAcrossCalls(t *testing.T) {
	amounts := []int64{19990, 4990, 1, 9990, 4990, 19990}
	first := make([]PlanTier, len(amounts))
	for i, amount := range amounts {
		first[i] = PlanTierFromAmount(amount)
	}

	for i := len(amounts) - 1; i >= 0; i-- {
		assert.Equal(t, first[i], PlanTierFromAmount(amounts[i]))
	}
}

func TestUser_ApplyLink(t *testing.T) {
	partnerID := uuid.New()
	decorationID := uuid.New()
	user := &User{PartnerSupplierID: &partnerID}

	user.ApplyLink(ProfileLink{Kind: ProfileKindLoveDecoration, ID: decorationID})

	assert.Nil(t, user.PartnerSupplierID)
	if assert.NotNil(t, user.LoveDecorationID) {
		assert.Equal(t, decorationID, *user.LoveDecorationID)
	}
	assert.Equal(t, RoleDecorator, user.Role)
	assert.Equal(t, ProfileLink{Kind: ProfileKindLoveDecoration, ID: decorationID}, user.Link())
}

func TestProfileLink_IsValid(t *testing.T) {
	assert.True(t, ProfileLink{Kind: ProfileKindPartnerSupplier, ID: uuid.New()}.IsValid())
	assert.False(t, ProfileLink{Kind: ProfileKindPartnerSupplier}.IsValid())
	assert.False(t, ProfileLink{Kind: "customer", ID: uuid.New()}.IsValid())
	assert.True(t, ProfileLink{}.IsZero())
}

func TestAddress_ReplaceWith(t *testing.T) {
	id := uuid.New()
	addr := &Address{ID: id, State: "SP", City: "Campinas", Complement: "apto 12"}

	addr.ReplaceWith(&Address{State: "RJ", City: "Niterói", District: "Icaraí", Street: "Rua A", Number: "10", ZipCode: "24220-000"})

	assert.Equal(t, id, addr.ID)
	assert.Equal(t, "RJ", addr.State)
	assert.Equal(t, "Niterói", addr.City)
	assert.Equal(t, "Icaraí", addr.District)
	assert.Equal(t, "Rua A", addr.Street)
	assert.Empty(t, addr.Complement)
	assert.Equal(t, "10", addr.Number)
	assert.Equal(t, "24220-000", addr.ZipCode)
}
