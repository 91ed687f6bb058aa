package leads

import (
	"context"
	"fmt"
	"time"
)

// sheetStore is the slice of the Sheets client the repository needs.
type sheetStore interface {
	WriteHeader(ctx context.Context, header []any) error
	AppendRow(ctx context.Context, row []any) error
	ReadRows(ctx context.Context) ([][]any, error)
	UpdateRow(ctx context.Context, rowNumber int, row []any) error
}

// Repository persists leads in the ledger spreadsheet.
type Repository interface {
	Append(ctx context.Context, lead Lead) error
	Update(ctx context.Context, leadID string, patch Patch) (bool, error)
}

type repository struct {
	store sheetStore
	now   func() time.Time
}

// NewRepository returns a ledger repository over the spreadsheet store.
func NewRepository(store sheetStore) Repository {
	return &repository{store: store, now: time.Now}
}

func (r *repository) Append(ctx context.Context, lead Lead) error {
	if err := r.store.WriteHeader(ctx, Header); err != nil {
		return fmt.Errorf("writing ledger header: %w", err)
	}
	if err := r.store.AppendRow(ctx, lead.toRow(r.now())); err != nil {
		return fmt.Errorf("appending lead row: %w", err)
	}
	return nil
}

// Update linear-scans for the matching LeadID and applies only the fields
// present in the patch. Returns false when no row matches, which callers
// treat as the create-as-fallback signal.
func (r *repository) Update(ctx context.Context, leadID string, patch Patch) (bool, error) {
	rows, err := r.store.ReadRows(ctx)
	if err != nil {
		return false, fmt.Errorf("loading ledger rows: %w", err)
	}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if cellString(row, colLeadID) != leadID {
			continue
		}

		updated := applyPatch(row, patch)
		if err := r.store.UpdateRow(ctx, i+1, updated); err != nil {
			return false, fmt.Errorf("saving lead row: %w", err)
		}
		return true, nil
	}
	return false, nil
}

func applyPatch(row []any, patch Patch) []any {
	out := make([]any, columnCount)
	for i := range out {
		out[i] = cellString(row, i)
	}

	if patch.Status != "" {
		out[colStatus] = string(patch.Status)
	}
	if patch.PaymentID != "" {
		out[colPaymentID] = patch.PaymentID
	}
	if patch.Plan != "" {
		out[colPlan] = string(patch.Plan)
	}
	if patch.Amount != "" {
		out[colAmount] = patch.Amount
	}
	if patch.Email != "" {
		out[colEmail] = patch.Email
	}
	if patch.Error != "" {
		out[colError] = patch.Error
	}
	return out
}

func cellString(row []any, idx int) string {
	if idx >= len(row) {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return s
	}
	if row[idx] == nil {
		return ""
	}
	return fmt.Sprint(row[idx])
}
