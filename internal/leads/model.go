package leads

import (
	"time"

	"github.com/vedicwisdom/funnel-backend/pkg/enums"
)

// Header is the fixed 11-column schema of the ledger spreadsheet.
var Header = []any{
	"LeadID", "Date", "Name", "Email", "Phone", "DOB",
	"Plan", "Status", "PaymentID", "Amount", "Error",
}

// Column indexes into a ledger row.
const (
	colLeadID = iota
	colDate
	colName
	colEmail
	colPhone
	colDOB
	colPlan
	colStatus
	colPaymentID
	colAmount
	colError

	columnCount
)

// Lead is one prospective customer tracked from intake through fulfillment.
// The spreadsheet is the sole durable store; LeadID is the correlation key
// across the whole funnel.
type Lead struct {
	LeadID    string
	Name      string
	Email     string
	Phone     string
	DOB       string
	Time      string
	Place     string
	Plan      enums.Plan
	Status    enums.LeadStatus
	PaymentID string
	Amount    string
	Error     string
}

// Patch carries partial updates; empty fields are left untouched.
type Patch struct {
	Status    enums.LeadStatus
	PaymentID string
	Plan      enums.Plan
	Amount    string
	Email     string
	Error     string
}

// ledgerTZ pins the Date column to the business's local time.
var ledgerTZ = loadLedgerTZ()

func loadLedgerTZ() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.UTC
	}
	return loc
}

func (l Lead) toRow(now time.Time) []any {
	plan := string(l.Plan)
	if plan == "" || l.Plan == enums.PlanUnset {
		plan = "Not Selected"
	}
	status := l.Status
	if status == "" {
		status = enums.LeadStatusInitiated
	}
	dob := l.DOB
	if l.Time != "" {
		dob = l.DOB + " " + l.Time
	}
	return []any{
		l.LeadID,
		now.In(ledgerTZ).Format("02/01/2006, 15:04:05"),
		l.Name,
		l.Email,
		l.Phone,
		dob,
		plan,
		string(status),
		l.PaymentID,
		l.Amount,
		l.Error,
	}
}
