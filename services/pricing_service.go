// services/pricing_service.go
package services

import (
	"github.com/shopspring/decimal"

	"github.com/autonest/autonest_backend/models"
)

var hundred = decimal.NewFromInt(100)

// FuelQuote is the resolved quantity/amount pair for a fuel request.
// Quantity × unit price always equals Amount to two-decimal precision,
// whichever of the two was supplied.
type FuelQuote struct {
	Quantity decimal.Decimal
	Amount   decimal.Decimal
}

// ParseQuantityField parses an optional decimal form field. Empty input
// yields nil; malformed input yields a ValidationError naming the field.
func ParseQuantityField(name, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, models.NewValidationError("invalid %s: %q", name, value)
	}
	return &d, nil
}

// ComputeFuelQuote derives the missing side of a fuel quote from the unit
// price. Exactly one of quantity or amount drives the computation; when both
// are present the quantity wins and the amount is recomputed from it.
func ComputeFuelQuote(unitPrice decimal.Decimal, quantity, amount *decimal.Decimal) (FuelQuote, error) {
	if unitPrice.Sign() <= 0 {
		return FuelQuote{}, models.NewValidationError("service has no valid unit price")
	}
	if quantity == nil && amount == nil {
		return FuelQuote{}, models.NewValidationError("either quantity_liters or amount_rupees is required")
	}

	if quantity != nil {
		qty := quantity.Round(2)
		if qty.Sign() <= 0 {
			return FuelQuote{}, models.NewValidationError("quantity_liters must be greater than zero")
		}
		return FuelQuote{
			Quantity: qty,
			Amount:   qty.Mul(unitPrice).Round(2),
		}, nil
	}

	amt := amount.Round(2)
	if amt.Sign() <= 0 {
		return FuelQuote{}, models.NewValidationError("amount_rupees must be greater than zero")
	}
	// Round the derived quantity first, then recompute the amount from it so
	// the quantity/amount/unit-price triple stays exact.
	qty := amt.Div(unitPrice).Round(2)
	if qty.Sign() <= 0 {
		return FuelQuote{}, models.NewValidationError("amount_rupees is too small for the current unit price")
	}
	return FuelQuote{
		Quantity: qty,
		Amount:   qty.Mul(unitPrice).Round(2),
	}, nil
}

// CheckStock validates a requested fuel quantity against the available stock
func CheckStock(stock float64, quantity decimal.Decimal) error {
	available := decimal.NewFromFloat(stock)
	if quantity.GreaterThan(available) {
		qty, _ := quantity.Float64()
		return &models.InsufficientStockError{
			Requested: qty,
			Remaining: stock,
		}
	}
	return nil
}

// ResolveSubOptionTotal looks up a sub-option price (tyre inflation, EV
// connector type, mechanical issue category) from the catalog entry.
func ResolveSubOptionTotal(service *models.Service, subOption string) (float64, error) {
	price, ok := service.SubOptionPrices[subOption]
	if !ok {
		return 0, models.NewValidationError("unknown option %q for service type %s", subOption, service.Type)
	}
	rounded, _ := decimal.NewFromFloat(price).Round(2).Float64()
	return rounded, nil
}

// PaiseAmount converts a rupee amount to the gateway's minor unit
func PaiseAmount(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(hundred).Round(0).IntPart()
}
