// Package entitlement holds the single plan-gating predicate. Every gated
// surface (library posts, lessons, snippets, copy generation, contracts)
// calls IsLocked instead of re-deriving the plan comparison.
package entitlement

import "bcstudio-server/internal/models"

// IsLocked decides whether content requiring requiredPlan is locked for a
// subscriber on userPlan. Pro is never locked. Basic is locked only when
// pro is required. Free and unrecognized plans are always locked.
func IsLocked(userPlan, requiredPlan models.Plan) bool {
	switch userPlan {
	case models.PlanPro:
		return false
	case models.PlanBasic:
		return requiredPlan == models.PlanPro
	default:
		return true
	}
}

// IsPremiumLocked applies IsLocked to the boolean is_premium flag used by
// lessons, snippets and tips. Non-premium content is never locked.
func IsPremiumLocked(userPlan models.Plan, isPremium bool) bool {
	if !isPremium {
		return false
	}
	return IsLocked(userPlan, models.PlanPro)
}
