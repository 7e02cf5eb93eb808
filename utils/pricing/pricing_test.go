package pricing_test

import (
	"testing"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewConverter_RejectsNonPositiveBase(t *testing.T) {
	for _, base := range []string{"0", "-10"} {
		_, err := pricing.NewConverter(d(base))
		assert.Error(t, err, "base %s", base)
	}
}

func TestConverter_PriceFromWeight(t *testing.T) {
	c, err := pricing.NewConverter(d("400"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		grams string
		want  string
	}{
		{name: "600g at 400/kg", grams: "600", want: "240"},
		{name: "one kilogram", grams: "1000", want: "400"},
		{name: "rounds to two places", grams: "333", want: "133.2"},
		{name: "zero weight", grams: "0", want: "0"},
		{name: "negative weight", grams: "-50", want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.PriceFromWeight(d(tt.grams))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestConverter_WeightFromPrice(t *testing.T) {
	c, err := pricing.NewConverter(d("300"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "half kilo", amount: "150", want: "500"},
		{name: "repeating fraction", amount: "100", want: "333.33"},
		{name: "zero amount", amount: "0", want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.WeightFromPrice(d(tt.amount))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestConverter_RoundTripWithinRounding(t *testing.T) {
	c, err := pricing.NewConverter(d("437.5"))
	require.NoError(t, err)

	for _, grams := range []string{"1", "125", "250.5", "999", "2500"} {
		price := c.PriceFromWeight(d(grams))
		back := c.WeightFromPrice(price)
		// one cent of price is worth 1000/437.5 grams at most
		diff := back.Sub(d(grams)).Abs()
		assert.True(t, diff.LessThanOrEqual(d("0.03")), "grams %s came back as %s", grams, back)
	}
}

func TestConverter_Resolve(t *testing.T) {
	c, err := pricing.NewConverter(d("400"))
	require.NoError(t, err)

	q, err := c.Resolve(constant.PricingModeWeight, d("600"), d("999"))
	require.NoError(t, err)
	assert.True(t, q.Price.Equal(d("240")))
	assert.True(t, q.Weight.Equal(d("600")))
	assert.True(t, q.Valid())

	q, err = c.Resolve(constant.PricingModePrice, decimal.Zero, d("100"))
	require.NoError(t, err)
	assert.True(t, q.Weight.Equal(d("250")))
	assert.Equal(t, constant.PricingModePrice, q.Mode)

	q, err = c.Resolve(constant.PricingModeWeight, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.False(t, q.Valid())

	_, err = c.Resolve("volume", d("1"), d("1"))
	assert.Error(t, err)
}

func TestConverter_ResolveRoundsAnchor(t *testing.T) {
	c, err := pricing.NewConverter(d("400"))
	require.NoError(t, err)

	q, err := c.Resolve(constant.PricingModePrice, decimal.Zero, d("10.005"))
	require.NoError(t, err)
	assert.True(t, q.Price.Equal(d("10.01")), "got %s", q.Price)
	assert.True(t, q.Weight.Equal(d("25.03")), "got %s", q.Weight)

	q, err = c.Resolve(constant.PricingModeWeight, d("600.555"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, q.Weight.Equal(d("600.56")), "got %s", q.Weight)
	assert.True(t, q.Price.Equal(d("240.22")), "got %s", q.Price)

	// two identical lines must sum to what each line stores
	sum := q.Price.Add(q.Price)
	assert.True(t, sum.Equal(sum.Round(constant.MoneyScale)))

	q, err = c.Resolve(constant.PricingModePrice, decimal.Zero, d("0.004"))
	require.NoError(t, err)
	assert.False(t, q.Valid())
}

func TestConverter_SwitchModeRecomputesFromPreviousAnchor(t *testing.T) {
	c, err := pricing.NewConverter(d("400"))
	require.NoError(t, err)

	q, err := c.Resolve(constant.PricingModeWeight, d("600"), decimal.Zero)
	require.NoError(t, err)

	switched := c.SwitchMode(q, constant.PricingModePrice)
	assert.Equal(t, constant.PricingModePrice, switched.Mode)
	assert.True(t, switched.Price.Equal(d("240")))
	assert.True(t, switched.Weight.Equal(d("600")))

	empty := c.SwitchMode(pricing.Quote{Mode: constant.PricingModeWeight}, constant.PricingModePrice)
	assert.True(t, empty.Price.IsZero())
	assert.Equal(t, constant.PricingModePrice, empty.Mode)
}
