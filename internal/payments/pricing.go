package payments

import (
	"github.com/shopspring/decimal"

	"github.com/vedicwisdom/funnel-backend/pkg/enums"
	pkgerrors "github.com/vedicwisdom/funnel-backend/pkg/errors"
)

// ProductSection is the pseudo-plan used for single-section unlocks.
const ProductSection = "section"

// Prices are authoritative on the server, keyed only by product identifier.
// Clients never supply amounts.
var priceRupees = map[string]decimal.Decimal{
	string(enums.PlanVedic):  decimal.NewFromInt(499),
	string(enums.PlanTarot):  decimal.NewFromInt(299),
	string(enums.PlanBundle): decimal.NewFromInt(699),
	ProductSection:           decimal.NewFromInt(49),
}

var paisePerRupee = decimal.NewFromInt(100)

// AmountPaise resolves the charge for a product in minor currency units.
func AmountPaise(product string) (int64, error) {
	price, ok := priceRupees[product]
	if !ok {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "unknown product "+product)
	}
	return price.Mul(paisePerRupee).IntPart(), nil
}

// AmountRupees returns the display price recorded on the lead ledger.
func AmountRupees(product string) string {
	price, ok := priceRupees[product]
	if !ok {
		return ""
	}
	return price.StringFixed(0)
}
