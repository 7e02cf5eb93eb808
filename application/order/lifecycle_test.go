package order_test

import (
	"testing"
	"time"

	apporder "github.com/muhammadheryan/food-storefront/application/order"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	"github.com/muhammadheryan/food-storefront/utils/errors"
)

func newOrder(status constant.OrderStatus) *model.Order {
	return &model.Order{OrderID: "SDH0001", Status: status, PickupOTP: "482913"}
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	if want == constant.Successful {
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		return
	}
	if !errors.IsType(err, want) {
		t.Fatalf("error = %v, want %s", err, constant.ErrorTypeCode[want])
	}
}

func TestTransitionMatrix(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	statuses := []constant.OrderStatus{
		constant.OrderStatusPending,
		constant.OrderStatusReady,
		constant.OrderStatusCompleted,
		constant.OrderStatusCancelled,
	}

	tests := []struct {
		name   string
		apply  func(o *model.Order) error
		expect map[constant.OrderStatus]constant.ErrorType
	}{
		{
			name:  "mark ready",
			apply: func(o *model.Order) error { return apporder.MarkReady(o, now) },
			expect: map[constant.OrderStatus]constant.ErrorType{
				constant.OrderStatusPending:   constant.Successful,
				constant.OrderStatusReady:     constant.ErrInvalidOrderStatus,
				constant.OrderStatusCompleted: constant.ErrInvalidOrderStatus,
				constant.OrderStatusCancelled: constant.ErrInvalidOrderStatus,
			},
		},
		{
			name:  "complete with matching otp",
			apply: func(o *model.Order) error { return apporder.Complete(o, "482913", now) },
			expect: map[constant.OrderStatus]constant.ErrorType{
				constant.OrderStatusPending:   constant.Successful,
				constant.OrderStatusReady:     constant.Successful,
				constant.OrderStatusCompleted: constant.ErrOrderAlreadyCompleted,
				constant.OrderStatusCancelled: constant.ErrInvalidOrderStatus,
			},
		},
		{
			name:  "complete with wrong otp",
			apply: func(o *model.Order) error { return apporder.Complete(o, "000000", now) },
			expect: map[constant.OrderStatus]constant.ErrorType{
				constant.OrderStatusPending:   constant.ErrInvalidPickupOTP,
				constant.OrderStatusReady:     constant.ErrInvalidPickupOTP,
				constant.OrderStatusCompleted: constant.ErrOrderAlreadyCompleted,
				constant.OrderStatusCancelled: constant.ErrInvalidOrderStatus,
			},
		},
		{
			name:  "force complete",
			apply: func(o *model.Order) error { return apporder.ForceComplete(o, now) },
			expect: map[constant.OrderStatus]constant.ErrorType{
				constant.OrderStatusPending:   constant.Successful,
				constant.OrderStatusReady:     constant.Successful,
				constant.OrderStatusCompleted: constant.ErrOrderAlreadyCompleted,
				constant.OrderStatusCancelled: constant.ErrInvalidOrderStatus,
			},
		},
	}

	for _, tt := range tests {
		for _, from := range statuses {
			t.Run(tt.name+" from "+string(from), func(t *testing.T) {
				o := newOrder(from)
				err := tt.apply(o)
				want := tt.expect[from]
				assertErrType(t, err, want)
				if want != constant.Successful && o.Status != from {
					t.Fatalf("rejected transition changed status %s -> %s", from, o.Status)
				}
			})
		}
	}
}

func TestComplete_WrongOTPLeavesOrderUntouched(t *testing.T) {
	readyAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	o := newOrder(constant.OrderStatusReady)
	o.ReadyAt = &readyAt

	err := apporder.Complete(o, "111111", readyAt.Add(time.Hour))
	assertErrType(t, err, constant.ErrInvalidPickupOTP)
	if o.Status != constant.OrderStatusReady || o.CompletedAt != nil {
		t.Fatalf("order changed: %+v", o)
	}
}

func TestForceComplete_RecordsReason(t *testing.T) {
	now := time.Now()
	o := newOrder(constant.OrderStatusPending)
	if err := apporder.ForceComplete(o, now); err != nil {
		t.Fatalf("ForceComplete() error = %v", err)
	}
	if o.ForceCompleteReason == nil || *o.ForceCompleteReason != constant.ForceCompleteReason {
		t.Fatalf("reason = %v", o.ForceCompleteReason)
	}
	if o.CompletedAt == nil || !o.CompletedAt.Equal(now) {
		t.Fatalf("completedAt = %v", o.CompletedAt)
	}
}

func TestRetentionCutoff(t *testing.T) {
	now := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	cutoff := apporder.RetentionCutoff(now, 48*time.Hour)

	completed47h := now.Add(-47 * time.Hour)
	completed49h := now.Add(-49 * time.Hour)
	if completed47h.Before(cutoff) {
		t.Fatalf("order completed 47h ago would be purged")
	}
	if !completed49h.Before(cutoff) {
		t.Fatalf("order completed 49h ago would be kept")
	}
	if got := apporder.RetentionCutoff(now, 0); !got.Equal(cutoff) {
		t.Fatalf("default window cutoff = %v, want %v", got, cutoff)
	}
}

func TestFormatOrderID(t *testing.T) {
	tests := []struct {
		prefix  string
		padding int
		seq     uint64
		want    string
	}{
		{"SDH", 4, 1, "SDH0001"},
		{"SDH", 4, 42, "SDH0042"},
		{"SDH", 4, 12345, "SDH12345"},
		{"", 0, 7, "SDH0007"},
		{"ORD", 6, 9, "ORD000009"},
	}
	for _, tt := range tests {
		if got := apporder.FormatOrderID(tt.prefix, tt.padding, tt.seq); got != tt.want {
			t.Errorf("FormatOrderID(%q, %d, %d) = %q, want %q", tt.prefix, tt.padding, tt.seq, got, tt.want)
		}
	}
}
