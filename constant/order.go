package constant

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ForceCompleteReason is recorded when an order is completed without the pickup OTP.
const ForceCompleteReason = "Force completed without reason"

const (
	DefaultOrderIDPrefix   = "SDH"
	DefaultOrderIDPadding  = 4
	DefaultRetentionWindow = 48 * time.Hour
	DefaultCleanupInterval = time.Hour
	DefaultCurrency        = "INR"
	MinorUnitsPerMajor     = 100
	OrderCleanupJobName    = "order_cleanup"
	OrderCleanupLockKey    = "lock:order_cleanup"
)

type OrderEvent string

const (
	OrderEventPlaced    OrderEvent = "order_placed"
	OrderEventReady     OrderEvent = "order_ready"
	OrderEventCompleted OrderEvent = "order_completed"
)
