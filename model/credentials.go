package model

import (
	"time"

	"github.com/muhammadheryan/food-storefront/constant"
)

// PaymentCredentials is the decrypted singleton gateway credential.
type PaymentCredentials struct {
	KeyID       string
	KeySecret   string
	Environment constant.PaymentEnvironment
	IsActive    bool
}

type PaymentCredentialsEntity struct {
	ID              uint8                       `db:"id"`
	KeyID           string                      `db:"key_id"`
	KeySecretSealed string                      `db:"key_secret_sealed"`
	Environment     constant.PaymentEnvironment `db:"environment"`
	IsActive        bool                        `db:"is_active"`
	CreatedAt       time.Time                   `db:"created_at"`
	UpdatedAt       time.Time                   `db:"updated_at"`
}

// PaymentCredentialsView never carries the secret.
type PaymentCredentialsView struct {
	KeyID       string                      `json:"key_id"`
	Environment constant.PaymentEnvironment `json:"environment"`
	IsActive    bool                        `json:"is_active"`
}

type SavePaymentCredentialsRequest struct {
	KeyID       string                      `json:"key_id" validate:"required"`
	KeySecret   string                      `json:"key_secret" validate:"required"`
	Environment constant.PaymentEnvironment `json:"environment" validate:"required,oneof=test live"`
}

type PaymentConfigResponse struct {
	KeyID       string                      `json:"key_id"`
	Environment constant.PaymentEnvironment `json:"environment"`
}

type PaymentSettingsUnlockResponse struct {
	Token string `json:"token"`
}
