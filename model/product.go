package model

import (
	"time"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/shopspring/decimal"
)

// Product.BasePrice is per unit, or per kilogram when HasWeightPricing is set.
type Product struct {
	ID               uint64                   `db:"id" json:"id"`
	Name             string                   `db:"name" json:"name"`
	Description      string                   `db:"description" json:"description"`
	BasePrice        decimal.Decimal          `db:"base_price" json:"base_price"`
	HasWeightPricing bool                     `db:"has_weight_pricing" json:"has_weight_pricing"`
	Available        bool                     `db:"available" json:"available"`
	Category         constant.ProductCategory `db:"category" json:"category"`
	ImageID          string                   `db:"image_id" json:"image_id"`
	RatingStars      float64                  `db:"rating_stars" json:"rating_stars"`
	RatingCount      int                      `db:"rating_count" json:"rating_count"`
	IsBestseller     bool                     `db:"is_bestseller" json:"is_bestseller"`
	CreatedAt        time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time                `db:"updated_at" json:"updated_at"`
}

type ProductFilter struct {
	AvailableOnly bool
}

type CreateProductRequest struct {
	Name             string                   `json:"name" validate:"required"`
	Description      string                   `json:"description"`
	BasePrice        decimal.Decimal          `json:"base_price"`
	HasWeightPricing bool                     `json:"has_weight_pricing"`
	Category         constant.ProductCategory `json:"category" validate:"omitempty,oneof=snacks sweets pakoda paneer"`
	IsBestseller     bool                     `json:"is_bestseller"`
	ImageID          string                   `json:"image_id"`
}

type UpdateProductRequest struct {
	Name             *string                   `json:"name"`
	Description      *string                   `json:"description"`
	BasePrice        *decimal.Decimal          `json:"base_price"`
	HasWeightPricing *bool                     `json:"has_weight_pricing"`
	Category         *constant.ProductCategory `json:"category"`
	IsBestseller     *bool                     `json:"is_bestseller"`
	Available        *bool                     `json:"available"`
	ImageID          *string                   `json:"image_id"`
}

type ConvertRequest struct {
	Mode   constant.PricingMode `json:"mode" validate:"required,oneof=weight price"`
	Weight decimal.Decimal      `json:"weight"`
	Price  decimal.Decimal      `json:"price"`
}
