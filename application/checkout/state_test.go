package checkout

import (
	"testing"
	"time"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	"github.com/muhammadheryan/food-storefront/utils/errors"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to constant.CheckoutState
		want     bool
	}{
		{constant.CheckoutStateFormEntry, constant.CheckoutStateOTPSent, true},
		{constant.CheckoutStateFormEntry, constant.CheckoutStatePaymentInProgress, false},
		{constant.CheckoutStateOTPSent, constant.CheckoutStateOTPSent, true},
		{constant.CheckoutStateOTPSent, constant.CheckoutStateOTPVerified, true},
		{constant.CheckoutStateOTPSent, constant.CheckoutStatePaymentInProgress, false},
		{constant.CheckoutStateOTPVerified, constant.CheckoutStatePaymentInProgress, true},
		{constant.CheckoutStateOTPVerified, constant.CheckoutStateOrderCreated, false},
		{constant.CheckoutStatePaymentInProgress, constant.CheckoutStatePaymentInProgress, true},
		{constant.CheckoutStatePaymentInProgress, constant.CheckoutStateOrderCreated, true},
		{constant.CheckoutStatePaymentInProgress, constant.CheckoutStateAborted, true},
		{constant.CheckoutStateOrderCreated, constant.CheckoutStateAborted, false},
		{constant.CheckoutStateAborted, constant.CheckoutStateOTPSent, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAbortTerminalSession(t *testing.T) {
	now := time.Now()
	s := &model.CheckoutSession{State: constant.CheckoutStateOrderCreated}
	if err := abort(s, constant.AbortReasonCancelled, now); !errors.IsType(err, constant.ErrInvalidCheckoutState) {
		t.Fatalf("abort() error = %v", err)
	}
	if s.State != constant.CheckoutStateOrderCreated || s.AbortReason != "" {
		t.Fatalf("terminal session was modified: %+v", s)
	}

	s = &model.CheckoutSession{State: constant.CheckoutStateOTPSent}
	if err := abort(s, constant.AbortReasonCancelled, now); err != nil {
		t.Fatalf("abort() error = %v", err)
	}
	if s.State != constant.CheckoutStateAborted || s.AbortReason != constant.AbortReasonCancelled || !s.UpdatedAt.Equal(now) {
		t.Fatalf("abort() = %+v", s)
	}
}
