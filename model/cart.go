package model

import (
	"strconv"
	"time"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/shopspring/decimal"
)

// UnitLine is the payload of a line sold by the piece.
type UnitLine struct {
	Quantity int `json:"quantity"`
}

// WeightLine is the payload of a line sold by weight. Weight is in grams.
type WeightLine struct {
	Weight decimal.Decimal      `json:"weight"`
	Price  decimal.Decimal      `json:"price"`
	Mode   constant.PricingMode `json:"mode"`
}

// LineItem is one cart or order line. Kind selects which of Unit or Weight is set.
type LineItem struct {
	LineID     string            `json:"line_id"`
	Kind       constant.LineKind `json:"kind"`
	ProductID  uint64            `json:"product_id"`
	Name       string            `json:"name"`
	BasePrice  decimal.Decimal   `json:"base_price"`
	Unit       *UnitLine         `json:"unit,omitempty"`
	Weight     *WeightLine       `json:"weight,omitempty"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

func NewUnitLine(productID uint64, name string, basePrice decimal.Decimal, quantity int) LineItem {
	return LineItem{
		Kind:       constant.LineKindUnit,
		ProductID:  productID,
		Name:       name,
		BasePrice:  basePrice,
		Unit:       &UnitLine{Quantity: quantity},
		TotalPrice: basePrice.Mul(decimal.NewFromInt(int64(quantity))).Round(constant.MoneyScale),
	}
}

func NewWeightLine(lineID string, productID uint64, name string, basePricePerKg decimal.Decimal, w WeightLine) LineItem {
	return LineItem{
		LineID:     lineID,
		Kind:       constant.LineKindWeight,
		ProductID:  productID,
		Name:       name,
		BasePrice:  basePricePerKg,
		Weight:     &w,
		TotalPrice: w.Price,
	}
}

func (l LineItem) IsWeight() bool {
	return l.Kind == constant.LineKindWeight
}

// Identity is the key used to address the line: the synthetic line id for weight
// lines, the product id for unit lines.
func (l LineItem) Identity() string {
	if l.IsWeight() {
		return l.LineID
	}
	return strconv.FormatUint(l.ProductID, 10)
}

// Count is the number of items the line contributes to the cart badge.
func (l LineItem) Count() int {
	switch {
	case l.IsWeight():
		return 1
	case l.Unit != nil:
		return l.Unit.Quantity
	}
	return 0
}

// Consistent reports whether the variant payload matches Kind and the total.
func (l LineItem) Consistent() bool {
	switch l.Kind {
	case constant.LineKindUnit:
		if l.Unit == nil || l.Weight != nil || l.Unit.Quantity < 1 {
			return false
		}
		want := l.BasePrice.Mul(decimal.NewFromInt(int64(l.Unit.Quantity))).Round(constant.MoneyScale)
		return l.TotalPrice.Equal(want)
	case constant.LineKindWeight:
		if l.Weight == nil || l.Unit != nil {
			return false
		}
		return l.Weight.Weight.IsPositive() && l.Weight.Price.IsPositive() && l.TotalPrice.Equal(l.Weight.Price)
	}
	return false
}

type Cart struct {
	ID        string     `json:"id"`
	Lines     []LineItem `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalAmount sums line totals; it is never stored.
func (c *Cart) TotalAmount() decimal.Decimal {
	return SumLines(c.Lines)
}

func (c *Cart) TotalItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Count()
	}
	return n
}

func SumLines(lines []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.TotalPrice)
	}
	return total.Round(constant.MoneyScale)
}

type CartResponse struct {
	ID             string          `json:"id"`
	Lines          []LineItem      `json:"lines"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TotalItemCount int             `json:"total_item_count"`
}

func (c *Cart) ToResponse() *CartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []LineItem{}
	}
	return &CartResponse{
		ID:             c.ID,
		Lines:          lines,
		TotalAmount:    c.TotalAmount(),
		TotalItemCount: c.TotalItemCount(),
	}
}

// AddCartItemRequest adds a product. Mode, Weight and Price apply to weight-priced
// products only.
type AddCartItemRequest struct {
	ProductID uint64               `json:"product_id" validate:"required"`
	Mode      constant.PricingMode `json:"mode,omitempty" validate:"omitempty,oneof=weight price"`
	Weight    decimal.Decimal      `json:"weight"`
	Price     decimal.Decimal      `json:"price"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
