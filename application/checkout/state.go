package checkout

import (
	"time"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	"github.com/muhammadheryan/food-storefront/utils/errors"
)

var transitions = map[constant.CheckoutState][]constant.CheckoutState{
	constant.CheckoutStateFormEntry: {
		constant.CheckoutStateOTPSent,
		constant.CheckoutStateAborted,
	},
	constant.CheckoutStateOTPSent: {
		constant.CheckoutStateOTPSent,
		constant.CheckoutStateOTPVerified,
		constant.CheckoutStateAborted,
	},
	constant.CheckoutStateOTPVerified: {
		constant.CheckoutStatePaymentInProgress,
		constant.CheckoutStateAborted,
	},
	constant.CheckoutStatePaymentInProgress: {
		constant.CheckoutStatePaymentInProgress,
		constant.CheckoutStateOrderCreated,
		constant.CheckoutStateAborted,
	},
}

// CanTransition reports whether a session may move from one state to another.
// Terminal states have no outgoing transitions.
func CanTransition(from, to constant.CheckoutState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func advance(s *model.CheckoutSession, to constant.CheckoutState, now time.Time) error {
	if !CanTransition(s.State, to) {
		return errors.SetCustomError(constant.ErrInvalidCheckoutState)
	}
	s.State = to
	s.UpdatedAt = now
	return nil
}

func abort(s *model.CheckoutSession, reason string, now time.Time) error {
	if err := advance(s, constant.CheckoutStateAborted, now); err != nil {
		return err
	}
	s.AbortReason = reason
	return nil
}

func toResponse(s *model.CheckoutSession) *model.CheckoutResponse {
	return &model.CheckoutResponse{
		SessionID:    s.ID,
		State:        s.State,
		TotalAmount:  s.TotalAmount,
		OTPExpiresAt: s.OTPExpiresAt,
		OrderID:      s.OrderID,
		AbortReason:  s.AbortReason,
	}
}
