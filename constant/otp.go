package constant

import "time"

type OTPType string

const (
	OTPTypeVerification OTPType = "verification"
	OTPTypeLogin        OTPType = "login"
)

const (
	OTPLength          = 6
	OTPMin             = 100000
	OTPMax             = 999999
	DefaultOTPValidity = 5 * time.Minute
)

// OTPPurpose selects the email wording for an OTP and scopes its verification.
type OTPPurpose string

const (
	OTPPurposeOrder           OTPPurpose = "order"
	OTPPurposePaymentSettings OTPPurpose = "payment_settings"
)
