package cart

import (
	"strconv"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	"github.com/shopspring/decimal"
)

// AddLine appends a weight line as a new entry, or merges a unit line into the
// existing line of the same product by incrementing its quantity.
func AddLine(c *model.Cart, line model.LineItem) {
	if line.IsWeight() {
		c.Lines = append(c.Lines, line)
		return
	}
	for i := range c.Lines {
		l := &c.Lines[i]
		if l.IsWeight() || l.ProductID != line.ProductID || l.Unit == nil {
			continue
		}
		setQuantity(l, l.Unit.Quantity+1)
		return
	}
	c.Lines = append(c.Lines, model.NewUnitLine(line.ProductID, line.Name, line.BasePrice, 1))
}

// RemoveLine drops the line addressed by identity: a weight line id, or a product id
// for unit lines. It reports whether a line was removed.
func RemoveLine(c *model.Cart, identity string) bool {
	for i, l := range c.Lines {
		if l.IsWeight() && l.LineID == identity {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	productID, err := strconv.ParseUint(identity, 10, 64)
	if err != nil {
		return false
	}
	for i, l := range c.Lines {
		if !l.IsWeight() && l.ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity of a unit line; quantity <= 0 removes it.
func UpdateQuantity(c *model.Cart, productID uint64, quantity int) bool {
	for i := range c.Lines {
		l := &c.Lines[i]
		if l.IsWeight() || l.ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
		setQuantity(l, quantity)
		return true
	}
	return false
}

// RemoveLastWeightLine drops the most recently added weight line of the product.
func RemoveLastWeightLine(c *model.Cart, productID uint64) bool {
	i := lastWeightLine(c, productID)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// AddSameWeightLine appends a copy of the product's last weight line under lineID.
func AddSameWeightLine(c *model.Cart, productID uint64, lineID string) bool {
	i := lastWeightLine(c, productID)
	if i < 0 {
		return false
	}
	src := c.Lines[i]
	c.Lines = append(c.Lines, model.NewWeightLine(lineID, src.ProductID, src.Name, src.BasePrice, *src.Weight))
	return true
}

func lastWeightLine(c *model.Cart, productID uint64) int {
	for i := len(c.Lines) - 1; i >= 0; i-- {
		l := c.Lines[i]
		if l.IsWeight() && l.ProductID == productID && l.Weight != nil {
			return i
		}
	}
	return -1
}

func setQuantity(l *model.LineItem, quantity int) {
	l.Unit = &model.UnitLine{Quantity: quantity}
	l.TotalPrice = l.BasePrice.Mul(decimal.NewFromInt(int64(quantity))).Round(constant.MoneyScale)
}
