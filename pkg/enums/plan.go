package enums

import "fmt"

// Plan identifies which report package a lead selected.
type Plan string

const (
	PlanVedic  Plan = "vedic"
	PlanTarot  Plan = "tarot"
	PlanBundle Plan = "bundle"
	PlanUnset  Plan = "unset"
)

var validPlans = []Plan{
	PlanVedic,
	PlanTarot,
	PlanBundle,
	PlanUnset,
}

// IsValid reports whether the value matches the canonical plan enum.
func (p Plan) IsValid() bool {
	for _, candidate := range validPlans {
		if candidate == p {
			return true
		}
	}
	return false
}

// IncludesTarot reports whether the plan carries the tarot add-on.
func (p Plan) IncludesTarot() bool {
	return p == PlanTarot || p == PlanBundle
}

// ParsePlan converts the raw string to Plan, treating empty as unset.
func ParsePlan(value string) (Plan, error) {
	if value == "" {
		return PlanUnset, nil
	}
	for _, candidate := range validPlans {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid plan %q", value)
}
