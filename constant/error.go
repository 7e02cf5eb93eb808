package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrEmptyCart
	ErrInvalidAmount
	ErrInvalidWeightPrice
	ErrProductUnavailable
	ErrInvalidImage
	ErrInvalidOrderStatus
	ErrOrderAlreadyCompleted
	ErrInvalidPickupOTP
	ErrInvalidOTP
	ErrOTPExpired
	ErrOTPUsed
	ErrInvalidCheckoutState
	ErrPaymentSettingsLocked
	ErrEmailDelivery
	ErrPaymentGateway
	ErrPaymentFailed
	ErrOrderInconsistent
)

// ErrorCategory groups error types by how a caller is expected to react.
type ErrorCategory string

const (
	CategoryNone          ErrorCategory = ""
	CategoryValidation    ErrorCategory = "validation"
	CategoryConflict      ErrorCategory = "conflict"
	CategoryUpstream      ErrorCategory = "upstream"
	CategoryPayment       ErrorCategory = "payment"
	CategoryInconsistency ErrorCategory = "inconsistency"
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrUnauthorize:           "unauthorize request",
	ErrCredentialExists:      "email already exists",
	ErrInvalidPassword:       "password invalid",
	ErrEmptyCart:             "cart is empty",
	ErrInvalidAmount:         "valid total amount is required",
	ErrInvalidWeightPrice:    "weight or price must be greater than zero",
	ErrProductUnavailable:    "product is not available",
	ErrInvalidImage:          "invalid image, only JPEG, PNG and WebP up to 5MB are allowed",
	ErrInvalidOrderStatus:    "order is not in a valid status for this action",
	ErrOrderAlreadyCompleted: "order is already completed",
	ErrInvalidPickupOTP:      "invalid pickup OTP",
	ErrInvalidOTP:            "invalid OTP",
	ErrOTPExpired:            "OTP has expired, request a new one",
	ErrOTPUsed:               "OTP already used",
	ErrInvalidCheckoutState:  "checkout is not in a valid state for this action",
	ErrPaymentSettingsLocked: "payment settings are locked",
	ErrEmailDelivery:         "email service unavailable, please try again",
	ErrPaymentGateway:        "payment service unavailable, please try again",
	ErrPaymentFailed:         "payment failed or was cancelled",
	ErrOrderInconsistent:     "payment was received but the order could not be recorded, please contact support with your payment reference",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrUnauthorize:           http.StatusUnauthorized,
	ErrCredentialExists:      http.StatusBadRequest,
	ErrInvalidPassword:       http.StatusBadRequest,
	ErrEmptyCart:             http.StatusBadRequest,
	ErrInvalidAmount:         http.StatusBadRequest,
	ErrInvalidWeightPrice:    http.StatusBadRequest,
	ErrProductUnavailable:    http.StatusBadRequest,
	ErrInvalidImage:          http.StatusBadRequest,
	ErrInvalidOrderStatus:    http.StatusConflict,
	ErrOrderAlreadyCompleted: http.StatusConflict,
	ErrInvalidPickupOTP:      http.StatusBadRequest,
	ErrInvalidOTP:            http.StatusBadRequest,
	ErrOTPExpired:            http.StatusGone,
	ErrOTPUsed:               http.StatusConflict,
	ErrInvalidCheckoutState:  http.StatusConflict,
	ErrPaymentSettingsLocked: http.StatusForbidden,
	ErrEmailDelivery:         http.StatusServiceUnavailable,
	ErrPaymentGateway:        http.StatusBadGateway,
	ErrPaymentFailed:         http.StatusPaymentRequired,
	ErrOrderInconsistent:     http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrUnauthorize:           "0004",
	ErrCredentialExists:      "0005",
	ErrInvalidPassword:       "0006",
	ErrEmptyCart:             "0007",
	ErrInvalidAmount:         "0008",
	ErrInvalidWeightPrice:    "0009",
	ErrProductUnavailable:    "0010",
	ErrInvalidImage:          "0011",
	ErrInvalidOrderStatus:    "0012",
	ErrOrderAlreadyCompleted: "0013",
	ErrInvalidPickupOTP:      "0014",
	ErrInvalidOTP:            "0015",
	ErrOTPExpired:            "0016",
	ErrOTPUsed:               "0017",
	ErrInvalidCheckoutState:  "0018",
	ErrPaymentSettingsLocked: "0019",
	ErrEmailDelivery:         "0020",
	ErrPaymentGateway:        "0021",
	ErrPaymentFailed:         "0022",
	ErrOrderInconsistent:     "0023",
}

var ErrorTypeCategory = map[ErrorType]ErrorCategory{
	ErrInternal:              CategoryUpstream,
	ErrNotFound:              CategoryConflict,
	ErrInvalidRequest:        CategoryValidation,
	ErrUnauthorize:           CategoryConflict,
	ErrCredentialExists:      CategoryConflict,
	ErrInvalidPassword:       CategoryConflict,
	ErrEmptyCart:             CategoryValidation,
	ErrInvalidAmount:         CategoryValidation,
	ErrInvalidWeightPrice:    CategoryValidation,
	ErrProductUnavailable:    CategoryValidation,
	ErrInvalidImage:          CategoryValidation,
	ErrInvalidOrderStatus:    CategoryConflict,
	ErrOrderAlreadyCompleted: CategoryConflict,
	ErrInvalidPickupOTP:      CategoryConflict,
	ErrInvalidOTP:            CategoryConflict,
	ErrOTPExpired:            CategoryConflict,
	ErrOTPUsed:               CategoryConflict,
	ErrInvalidCheckoutState:  CategoryConflict,
	ErrPaymentSettingsLocked: CategoryConflict,
	ErrEmailDelivery:         CategoryUpstream,
	ErrPaymentGateway:        CategoryUpstream,
	ErrPaymentFailed:         CategoryPayment,
	ErrOrderInconsistent:     CategoryInconsistency,
}

// ErrorTypeRetryable lists the failures a caller may retry as-is.
// An expired OTP is not here: it needs a fresh issuance, not another verification.
var ErrorTypeRetryable = map[ErrorType]bool{
	ErrInternal:       true,
	ErrEmailDelivery:  true,
	ErrPaymentGateway: true,
	ErrPaymentFailed:  true,
}
