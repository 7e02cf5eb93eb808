// Package pricing converts between weight and price for goods sold per kilogram.
package pricing

import (
	"fmt"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/shopspring/decimal"
)

var gramsPerKg = decimal.NewFromInt(constant.GramsPerKilogram)

// Converter holds the per-kilogram base price of a single product.
type Converter struct {
	basePricePerKg decimal.Decimal
}

// Quote is a weight/price pair where Mode names the user-entered anchor.
type Quote struct {
	Mode   constant.PricingMode `json:"mode"`
	Weight decimal.Decimal      `json:"weight"`
	Price  decimal.Decimal      `json:"price"`
}

func NewConverter(basePricePerKg decimal.Decimal) (Converter, error) {
	if !basePricePerKg.IsPositive() {
		return Converter{}, fmt.Errorf("base price per kg must be positive, got %s", basePricePerKg)
	}
	return Converter{basePricePerKg: basePricePerKg}, nil
}

func (c Converter) BasePricePerKg() decimal.Decimal {
	return c.basePricePerKg
}

// PriceFromWeight returns the price of the given grams, rounded to 2 places.
func (c Converter) PriceFromWeight(grams decimal.Decimal) decimal.Decimal {
	if !grams.IsPositive() || !c.basePricePerKg.IsPositive() {
		return decimal.Zero
	}
	return c.basePricePerKg.Mul(grams).Div(gramsPerKg).Round(constant.MoneyScale)
}

// WeightFromPrice returns the grams bought by amount, rounded to 2 places.
func (c Converter) WeightFromPrice(amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() || !c.basePricePerKg.IsPositive() {
		return decimal.Zero
	}
	return amount.Mul(gramsPerKg).Div(c.basePricePerKg).Round(constant.MoneyScale)
}

// Resolve builds a quote from the anchor value named by mode; the other value is ignored
// and recomputed. The anchor is rounded to 2 places first.
func (c Converter) Resolve(mode constant.PricingMode, weight, price decimal.Decimal) (Quote, error) {
	weight = weight.Round(constant.MoneyScale)
	price = price.Round(constant.MoneyScale)
	switch mode {
	case constant.PricingModeWeight:
		return Quote{Mode: mode, Weight: weight, Price: c.PriceFromWeight(weight)}, nil
	case constant.PricingModePrice:
		return Quote{Mode: mode, Weight: c.WeightFromPrice(price), Price: price}, nil
	}
	return Quote{}, fmt.Errorf("unknown pricing mode %q", mode)
}

// SwitchMode makes mode the anchor. The field named by mode is recomputed from the
// previous anchor, whose value is kept as is.
func (c Converter) SwitchMode(q Quote, mode constant.PricingMode) Quote {
	switch mode {
	case constant.PricingModeWeight:
		if q.Price.IsPositive() {
			q.Weight = c.WeightFromPrice(q.Price)
		}
	case constant.PricingModePrice:
		if q.Weight.IsPositive() {
			q.Price = c.PriceFromWeight(q.Weight)
		}
	default:
		return q
	}
	q.Mode = mode
	return q
}

// Valid reports whether the quote can be added to a cart.
func (q Quote) Valid() bool {
	return q.Mode.Valid() && q.Weight.IsPositive() && q.Price.IsPositive()
}
