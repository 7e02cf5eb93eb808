package model

import (
	"time"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/shopspring/decimal"
)

type CheckoutSession struct {
	ID             string                 `json:"id"`
	CartID         string                 `json:"cart_id"`
	Customer       CustomerInfo           `json:"customer"`
	Items          []LineItem             `json:"items"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	Currency       string                 `json:"currency"`
	State          constant.CheckoutState `json:"state"`
	OTPExpiresAt   *time.Time             `json:"otp_expires_at,omitempty"`
	GatewayOrderID string                 `json:"gateway_order_id,omitempty"`
	PaymentID      string                 `json:"payment_id,omitempty"`
	OrderID        string                 `json:"order_id,omitempty"`
	AbortReason    string                 `json:"abort_reason,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

type StartCheckoutRequest struct {
	CartID   string       `json:"cart_id" validate:"required"`
	Customer CustomerInfo `json:"customer" validate:"required"`
}

type CheckoutResponse struct {
	SessionID    string                 `json:"session_id"`
	State        constant.CheckoutState `json:"state"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	OTPExpiresAt *time.Time             `json:"otp_expires_at,omitempty"`
	OrderID      string                 `json:"order_id,omitempty"`
	AbortReason  string                 `json:"abort_reason,omitempty"`
	// DevOTP is only populated outside production.
	DevOTP string `json:"otp,omitempty"`
}

type PaymentInitResponse struct {
	SessionID      string `json:"session_id"`
	KeyID          string `json:"key_id"`
	GatewayOrderID string `json:"gateway_order_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
}

type ConfirmPaymentRequest struct {
	GatewayOrderID string `json:"gateway_order_id" validate:"required"`
	PaymentID      string `json:"payment_id" validate:"required"`
	Signature      string `json:"signature" validate:"required"`
}

type FailPaymentRequest struct {
	Reason string `json:"reason"`
}

type CheckoutOrderResponse struct {
	SessionID string `json:"session_id"`
	Order     *Order `json:"order"`
}
