package constant

import "time"

type LineKind string

const (
	LineKindUnit   LineKind = "unit"
	LineKindWeight LineKind = "weight"
)

// PricingMode names the user-entered anchor of a weight-priced line.
type PricingMode string

const (
	PricingModeWeight PricingMode = "weight"
	PricingModePrice  PricingMode = "price"
)

func (m PricingMode) Valid() bool {
	return m == PricingModeWeight || m == PricingModePrice
}

const (
	GramsPerKilogram = 1000
	MoneyScale       = 2
	DefaultCartTTL   = 24 * time.Hour
)
