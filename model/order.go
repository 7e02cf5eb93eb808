package model

import (
	"time"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/shopspring/decimal"
)

type CustomerInfo struct {
	Name          string `db:"customer_name" json:"name" validate:"required"`
	Email         string `db:"customer_email" json:"email" validate:"required,email"`
	VehicleNumber string `db:"vehicle_number" json:"vehicle_number"`
	Instructions  string `db:"instructions" json:"instructions"`
}

type Order struct {
	ID                  uint64               `db:"id" json:"id"`
	OrderID             string               `db:"order_id" json:"order_id"`
	Items               []LineItem           `db:"-" json:"items"`
	TotalAmount         decimal.Decimal      `db:"total_amount" json:"total_amount"`
	CustomerInfo        `json:"customer_info"`
	PaymentID           *string              `db:"payment_id" json:"payment_id"`
	PickupOTP           string               `db:"pickup_otp" json:"pickup_otp"`
	Status              constant.OrderStatus `db:"status" json:"status"`
	ReadyAt             *time.Time           `db:"ready_at" json:"ready_at"`
	CompletedAt         *time.Time           `db:"completed_at" json:"completed_at"`
	ForceCompleteReason *string              `db:"force_complete_reason" json:"force_complete_reason"`
	CreatedAt           time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time            `db:"updated_at" json:"updated_at"`
}

// CreateOrderRequest is built by checkout once payment succeeds.
type CreateOrderRequest struct {
	Items        []LineItem   `json:"items" validate:"required,min=1"`
	CustomerInfo CustomerInfo `json:"customer_info" validate:"required"`
	PaymentID    string       `json:"payment_id"`
}

type InsertOrderTxItem struct {
	OrderID      string
	TotalAmount  decimal.Decimal
	CustomerInfo CustomerInfo
	PaymentID    *string
	PickupOTP    string
	Status       constant.OrderStatus
}

type OrderStatusUpdate struct {
	ID                  uint64
	Status              constant.OrderStatus
	ReadyAt             *time.Time
	CompletedAt         *time.Time
	ForceCompleteReason *string
}

type OrderFilter struct {
	Status constant.OrderStatus
}

type CompleteOrderRequest struct {
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

// OrderStatusView is what a customer may see when tracking an order.
type OrderStatusView struct {
	OrderID     string               `json:"order_id"`
	Status      constant.OrderStatus `json:"status"`
	ReadyAt     *time.Time           `json:"ready_at"`
	CompletedAt *time.Time           `json:"completed_at"`
	CreatedAt   time.Time            `json:"created_at"`
}

type CleanupResponse struct {
	DeletedCount int64     `json:"deleted_count"`
	Cutoff       time.Time `json:"cutoff"`
}

type OrderNotification struct {
	Event         constant.OrderEvent `json:"event"`
	OrderID       string              `json:"order_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	PickupOTP     string              `json:"pickup_otp,omitempty"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	OccurredAt    time.Time           `json:"occurred_at"`
}
