package constant

type CheckoutState string

const (
	CheckoutStateFormEntry         CheckoutState = "form_entry"
	CheckoutStateOTPSent           CheckoutState = "otp_sent"
	CheckoutStateOTPVerified       CheckoutState = "otp_verified"
	CheckoutStatePaymentInProgress CheckoutState = "payment_in_progress"
	CheckoutStateOrderCreated      CheckoutState = "order_created"
	CheckoutStateAborted           CheckoutState = "aborted"
)

func (s CheckoutState) Terminal() bool {
	return s == CheckoutStateOrderCreated || s == CheckoutStateAborted
}

// Abort reasons recorded on a checkout session.
const (
	AbortReasonOTPDelivery      = "otp_delivery_failed"
	AbortReasonPaymentFailed    = "payment_failed"
	AbortReasonCancelled        = "cancelled"
	AbortReasonOrderPersistence = "order_persistence_failed"
)

type PaymentEnvironment string

const (
	PaymentEnvironmentTest PaymentEnvironment = "test"
	PaymentEnvironmentLive PaymentEnvironment = "live"
)
