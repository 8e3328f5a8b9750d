package models

// Plan identifies a subscription plan.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanStarter Plan = "starter"
	PlanPro     Plan = "pro"
	PlanPlus    Plan = "plus"
)

// AllowsStyleProfile reports whether the plan includes style profiles.
func (p Plan) AllowsStyleProfile() bool {
	return p == PlanPro || p == PlanPlus
}
