package enums

import "fmt"

// LeadStatus tracks a lead through the funnel lifecycle.
type LeadStatus string

const (
	LeadStatusInitiated        LeadStatus = "INITIATED"
	LeadStatusPaid             LeadStatus = "PAID"
	LeadStatusSentWithFallback LeadStatus = "SENT_WITH_FALLBACK"
	LeadStatusFulfilled        LeadStatus = "FULFILLED"
	LeadStatusFailed           LeadStatus = "FAILED"
)

var validLeadStatuses = []LeadStatus{
	LeadStatusInitiated,
	LeadStatusPaid,
	LeadStatusSentWithFallback,
	LeadStatusFulfilled,
	LeadStatusFailed,
}

// IsValid reports whether the value matches the canonical lead status enum.
func (s LeadStatus) IsValid() bool {
	for _, candidate := range validLeadStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLeadStatus converts the raw string to LeadStatus.
func ParseLeadStatus(value string) (LeadStatus, error) {
	for _, candidate := range validLeadStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lead status %q", value)
}
