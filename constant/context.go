package constant

type contextKey string

const (
	UserIDKey               contextKey = "user_id"
	PaymentSettingsTokenKey contextKey = "payment_settings_token"
)

const PaymentSettingsTokenHeader = "X-Payment-Settings-Token"
