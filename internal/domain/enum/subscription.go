package enum

// SubscriptionPlan is the plan a shop subscribes to
type SubscriptionPlan string

const (
	PlanTrial   SubscriptionPlan = "trial"
	PlanBasic   SubscriptionPlan = "basic"
	PlanPremium SubscriptionPlan = "premium"
)

// ParseSubscriptionPlan parses a plan name, reporting whether it is known
func ParseSubscriptionPlan(s string) (SubscriptionPlan, bool) {
	switch SubscriptionPlan(s) {
	case PlanTrial, PlanBasic, PlanPremium:
		return SubscriptionPlan(s), true
	}
	return PlanTrial, false
}

// SubscriptionStatus is the lifecycle state of a shop subscription
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPastDue   SubscriptionStatus = "past_due"
	SubscriptionSuspended SubscriptionStatus = "suspended"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// ParseSubscriptionStatus parses a status name, reporting whether it is known
func ParseSubscriptionStatus(s string) (SubscriptionStatus, bool) {
	switch SubscriptionStatus(s) {
	case SubscriptionActive, SubscriptionPastDue, SubscriptionSuspended, SubscriptionCancelled:
		return SubscriptionStatus(s), true
	}
	return SubscriptionActive, false
}

// AllowsCalculations reports whether shop members can use paid features
// (rates, calculators) under this status. Past-due shops keep read access
// but lose updates; suspended and cancelled shops lose everything.
func (s SubscriptionStatus) AllowsCalculations() bool {
	return s == SubscriptionActive || s == SubscriptionPastDue
}
