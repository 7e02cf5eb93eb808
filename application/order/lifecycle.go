package order

import (
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/otpcode"
)

// MarkReady moves a pending order to ready.
func MarkReady(o *model.Order, now time.Time) error {
	if o.Status != constant.OrderStatusPending {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}
	o.Status = constant.OrderStatusReady
	o.ReadyAt = &now
	return nil
}

// Complete releases a pending or ready order when candidate matches the pickup OTP.
// A mismatch leaves the order untouched.
func Complete(o *model.Order, candidate string, now time.Time) error {
	if err := checkCompletable(o); err != nil {
		return err
	}
	if !otpcode.Equal(o.PickupOTP, candidate) {
		return errors.SetCustomError(constant.ErrInvalidPickupOTP)
	}
	o.Status = constant.OrderStatusCompleted
	o.CompletedAt = &now
	return nil
}

// ForceComplete releases a pending or ready order without checking the pickup OTP.
func ForceComplete(o *model.Order, now time.Time) error {
	if err := checkCompletable(o); err != nil {
		return err
	}
	reason := constant.ForceCompleteReason
	o.Status = constant.OrderStatusCompleted
	o.CompletedAt = &now
	o.ForceCompleteReason = &reason
	return nil
}

func checkCompletable(o *model.Order) error {
	switch o.Status {
	case constant.OrderStatusCompleted:
		return errors.SetCustomError(constant.ErrOrderAlreadyCompleted)
	case constant.OrderStatusPending, constant.OrderStatusReady:
		return nil
	}
	return errors.SetCustomError(constant.ErrInvalidOrderStatus)
}

// RetentionCutoff is the completion time before which completed orders are purged.
func RetentionCutoff(now time.Time, window time.Duration) time.Time {
	if window <= 0 {
		window = constant.DefaultRetentionWindow
	}
	return now.Add(-window)
}

// FormatOrderID renders a sequence number as a human-readable order id.
func FormatOrderID(prefix string, padding int, seq uint64) string {
	if prefix == "" {
		prefix = constant.DefaultOrderIDPrefix
	}
	if padding <= 0 {
		padding = constant.DefaultOrderIDPadding
	}
	return prefix + padNumber(seq, padding)
}

func padNumber(n uint64, width int) string {
	s := strconv.FormatUint(n, 10)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
