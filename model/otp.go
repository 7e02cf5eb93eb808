package model

import (
	"time"

	"github.com/muhammadheryan/food-storefront/constant"
)

type OTPRecord struct {
	Email     string              `json:"email"`
	OTP       string              `json:"otp"`
	Type      constant.OTPType    `json:"type"`
	Purpose   constant.OTPPurpose `json:"purpose"`
	ExpiresAt time.Time           `json:"expires_at"`
	Verified  bool                `json:"verified"`
	CreatedAt time.Time           `json:"created_at"`
}

func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

type SendOTPRequest struct {
	Email string           `json:"email" validate:"required,email"`
	Type  constant.OTPType `json:"type,omitempty" validate:"omitempty,oneof=verification login"`
}

type SendOTPResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
	// OTP is only populated outside production.
	OTP string `json:"otp,omitempty"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type VerifyOTPOnlyRequest struct {
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}
