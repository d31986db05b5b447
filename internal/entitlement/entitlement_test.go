package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bcstudio-server/internal/models"
)

func TestIsLocked(t *testing.T) {
	tests := []struct {
		name         string
		userPlan     models.Plan
		requiredPlan models.Plan
		wantLocked   bool
	}{
		{name: "pro plan never locked for basic content", userPlan: models.PlanPro, requiredPlan: models.PlanBasic, wantLocked: false},
		{name: "pro plan never locked for pro content", userPlan: models.PlanPro, requiredPlan: models.PlanPro, wantLocked: false},
		{name: "basic plan unlocked for basic content", userPlan: models.PlanBasic, requiredPlan: models.PlanBasic, wantLocked: false},
		{name: "basic plan locked for pro content", userPlan: models.PlanBasic, requiredPlan: models.PlanPro, wantLocked: true},
		{name: "free plan locked for basic content", userPlan: models.PlanFree, requiredPlan: models.PlanBasic, wantLocked: true},
		{name: "free plan locked for pro content", userPlan: models.PlanFree, requiredPlan: models.PlanPro, wantLocked: true},
		{name: "empty plan locked for basic content", userPlan: models.Plan(""), requiredPlan: models.PlanBasic, wantLocked: true},
		{name: "unknown plan locked for pro content", userPlan: models.Plan("enterprise"), requiredPlan: models.PlanPro, wantLocked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLocked, IsLocked(tt.userPlan, tt.requiredPlan))
		})
	}
}

func TestIsPremiumLocked(t *testing.T) {
	tests := []struct {
		name       string
		userPlan   models.Plan
		isPremium  bool
		wantLocked bool
	}{
		{name: "non premium open to free", userPlan: models.PlanFree, isPremium: false, wantLocked: false},
		{name: "non premium open to basic", userPlan: models.PlanBasic, isPremium: false, wantLocked: false},
		{name: "premium locked for free", userPlan: models.PlanFree, isPremium: true, wantLocked: true},
		{name: "premium locked for basic", userPlan: models.PlanBasic, isPremium: true, wantLocked: true},
		{name: "premium open to pro", userPlan: models.PlanPro, isPremium: true, wantLocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLocked, IsPremiumLocked(tt.userPlan, tt.isPremium))
		})
	}
}
