package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	cartapp "github.com/muhammadheryan/food-storefront/application/cart"
	orderapp "github.com/muhammadheryan/food-storefront/application/order"
	otpapp "github.com/muhammadheryan/food-storefront/application/otp"
	paymentsettingsapp "github.com/muhammadheryan/food-storefront/application/paymentsettings"
	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	checkoutrepo "github.com/muhammadheryan/food-storefront/repository/checkout"
	"github.com/muhammadheryan/food-storefront/thirdparty/razorpay"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CheckoutApp interface {
	Start(ctx context.Context, req *model.StartCheckoutRequest) (*model.CheckoutResponse, error)
	Get(ctx context.Context, sessionID string) (*model.CheckoutResponse, error)
	ResendOTP(ctx context.Context, sessionID string) (*model.CheckoutResponse, error)
	VerifyOTP(ctx context.Context, sessionID, code string) (*model.CheckoutResponse, error)
	CreatePayment(ctx context.Context, sessionID string) (*model.PaymentInitResponse, error)
	ConfirmPayment(ctx context.Context, sessionID string, req *model.ConfirmPaymentRequest) (*model.CheckoutOrderResponse, error)
	FailPayment(ctx context.Context, sessionID string, req *model.FailPaymentRequest) (*model.CheckoutResponse, error)
	Cancel(ctx context.Context, sessionID string) (*model.CheckoutResponse, error)
}

type checkoutAppImpl struct {
	config             *config.Config
	checkoutRepo       checkoutrepo.CheckoutRepository
	cartApp            cartapp.CartApp
	otpApp             otpapp.OTPApp
	orderApp           orderapp.OrderApp
	paymentSettingsApp paymentsettingsapp.PaymentSettingsApp
	gateway            razorpay.Gateway
	now                func() time.Time
}

func NewCheckoutApp(
	config *config.Config,
	checkoutRepo checkoutrepo.CheckoutRepository,
	cartApp cartapp.CartApp,
	otpApp otpapp.OTPApp,
	orderApp orderapp.OrderApp,
	paymentSettingsApp paymentsettingsapp.PaymentSettingsApp,
	gateway razorpay.Gateway,
) CheckoutApp {
	return &checkoutAppImpl{
		config:             config,
		checkoutRepo:       checkoutRepo,
		cartApp:            cartApp,
		otpApp:             otpApp,
		orderApp:           orderApp,
		paymentSettingsApp: paymentSettingsApp,
		gateway:            gateway,
		now:                time.Now,
	}
}

func (s *checkoutAppImpl) ttl() time.Duration {
	if s.config.Checkout.SessionTTL > 0 {
		return s.config.Checkout.SessionTTL
	}
	return time.Hour
}

func (s *checkoutAppImpl) Start(ctx context.Context, req *model.StartCheckoutRequest) (*model.CheckoutResponse, error) {
	if req.Customer.Name == "" || req.Customer.Email == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	cart, err := s.cartApp.Snapshot(ctx, req.CartID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}
	total := cart.TotalAmount()
	if !total.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidAmount)
	}

	now := s.now()
	session := &model.CheckoutSession{
		ID:          uuid.NewString(),
		CartID:      cart.ID,
		Customer:    req.Customer,
		Items:       cart.Lines,
		TotalAmount: total,
		Currency:    s.config.Order.Currency,
		State:       constant.CheckoutStateFormEntry,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.checkoutRepo.Create(ctx, session, s.ttl()); err != nil {
		logger.Error("[Start] err checkoutRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.issueOTP(ctx, session)
}

func (s *checkoutAppImpl) Get(ctx context.Context, sessionID string) (*model.CheckoutResponse, error) {
	session, err := s.load(ctx, "Get", sessionID)
	if err != nil {
		return nil, err
	}
	return toResponse(session), nil
}

func (s *checkoutAppImpl) ResendOTP(ctx context.Context, sessionID string) (*model.CheckoutResponse, error) {
	session, err := s.load(ctx, "ResendOTP", sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != constant.CheckoutStateOTPSent {
		return nil, errors.SetCustomError(constant.ErrInvalidCheckoutState)
	}
	return s.issueOTP(ctx, session)
}

// issueOTP sends a fresh code for the session; a delivery failure aborts it.
func (s *checkoutAppImpl) issueOTP(ctx context.Context, session *model.CheckoutSession) (*model.CheckoutResponse, error) {
	res, err := s.otpApp.SendOTP(ctx, session.Customer.Email, constant.OTPTypeVerification, constant.OTPPurposeOrder)
	if err != nil {
		if _, uerr := s.update(ctx, "issueOTP", session.ID, func(cs *model.CheckoutSession, now time.Time) error {
			return abort(cs, constant.AbortReasonOTPDelivery, now)
		}); uerr != nil {
			logger.Error("[issueOTP] abort session", zap.String("session_id", session.ID), zap.String("error", uerr.Error()))
		}
		return nil, err
	}

	updated, err := s.update(ctx, "issueOTP", session.ID, func(cs *model.CheckoutSession, now time.Time) error {
		if err := advance(cs, constant.CheckoutStateOTPSent, now); err != nil {
			return err
		}
		expiresAt := res.ExpiresAt
		cs.OTPExpiresAt = &expiresAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := toResponse(updated)
	out.DevOTP = res.OTP
	return out, nil
}

func (s *checkoutAppImpl) VerifyOTP(ctx context.Context, sessionID, code string) (*model.CheckoutResponse, error) {
	session, err := s.load(ctx, "VerifyOTP", sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != constant.CheckoutStateOTPSent {
		return nil, errors.SetCustomError(constant.ErrInvalidCheckoutState)
	}

	if err := s.otpApp.VerifyOTP(ctx, session.Customer.Email, code, constant.OTPPurposeOrder); err != nil {
		return nil, err
	}

	updated, err := s.update(ctx, "VerifyOTP", sessionID, func(cs *model.CheckoutSession, now time.Time) error {
		return advance(cs, constant.CheckoutStateOTPVerified, now)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(updated), nil
}

func (s *checkoutAppImpl) CreatePayment(ctx context.Context, sessionID string) (*model.PaymentInitResponse, error) {
	session, err := s.load(ctx, "CreatePayment", sessionID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(session.State, constant.CheckoutStatePaymentInProgress) {
		return nil, errors.SetCustomError(constant.ErrInvalidCheckoutState)
	}

	creds, err := s.paymentSettingsApp.ActiveCredentials(ctx)
	if err != nil {
		return nil, err
	}

	gatewayOrderID := session.GatewayOrderID
	if gatewayOrderID == "" {
		amount := MinorUnits(session.TotalAmount)
		receipt := fmt.Sprintf("receipt_%d", s.now().UnixMilli())
		gatewayOrderID, err = s.gateway.CreateOrder(ctx, creds, amount, session.Currency, receipt)
		if err != nil {
			logger.Error("[CreatePayment] err gateway.CreateOrder", zap.String("session_id", sessionID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrPaymentGateway)
		}
	}

	updated, err := s.update(ctx, "CreatePayment", sessionID, func(cs *model.CheckoutSession, now time.Time) error {
		if err := advance(cs, constant.CheckoutStatePaymentInProgress, now); err != nil {
			return err
		}
		// a concurrent call already opened a gateway order; the first stored id wins
		if cs.GatewayOrderID == "" {
			cs.GatewayOrderID = gatewayOrderID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.PaymentInitResponse{
		SessionID:      updated.ID,
		KeyID:          creds.KeyID,
		GatewayOrderID: updated.GatewayOrderID,
		Amount:         MinorUnits(updated.TotalAmount),
		Currency:       updated.Currency,
		CustomerName:   updated.Customer.Name,
		CustomerEmail:  updated.Customer.Email,
	}, nil
}

func (s *checkoutAppImpl) ConfirmPayment(ctx context.Context, sessionID string, req *model.ConfirmPaymentRequest) (*model.CheckoutOrderResponse, error) {
	session, err := s.load(ctx, "ConfirmPayment", sessionID)
	if err != nil {
		return nil, err
	}

	if session.State == constant.CheckoutStateOrderCreated && session.PaymentID == req.PaymentID {
		order, err := s.orderApp.GetOrder(ctx, session.OrderID)
		if err != nil {
			return nil, err
		}
		return &model.CheckoutOrderResponse{SessionID: session.ID, Order: order}, nil
	}
	if session.State != constant.CheckoutStatePaymentInProgress {
		return nil, errors.SetCustomError(constant.ErrInvalidCheckoutState)
	}

	creds, err := s.paymentSettingsApp.ActiveCredentials(ctx)
	if err != nil {
		return nil, err
	}
	if req.GatewayOrderID != session.GatewayOrderID || !s.gateway.VerifySignature(creds, req.GatewayOrderID, req.PaymentID, req.Signature) {
		logger.Warn("[ConfirmPayment] payment signature rejected", zap.String("session_id", sessionID), zap.String("payment_id", req.PaymentID))
		s.abortQuietly(ctx, sessionID, constant.AbortReasonPaymentFailed)
		return nil, errors.SetCustomError(constant.ErrPaymentFailed)
	}

	// claim the session so only one confirmation creates the order
	if _, err := s.update(ctx, "ConfirmPayment", sessionID, func(cs *model.CheckoutSession, now time.Time) error {
		if cs.State != constant.CheckoutStatePaymentInProgress || cs.PaymentID != "" {
			return errors.SetCustomError(constant.ErrInvalidCheckoutState)
		}
		cs.PaymentID = req.PaymentID
		cs.UpdatedAt = now
		return nil
	}); err != nil {
		return nil, err
	}

	order, err := s.orderApp.CreateOrder(ctx, &model.CreateOrderRequest{
		Items:        session.Items,
		CustomerInfo: session.Customer,
		PaymentID:    req.PaymentID,
	})
	if err != nil {
		logger.Error("[ConfirmPayment] payment captured but order not recorded",
			zap.String("session_id", sessionID),
			zap.String("payment_id", req.PaymentID),
			zap.String("gateway_order_id", req.GatewayOrderID),
			zap.String("error", err.Error()),
		)
		s.abortQuietly(ctx, sessionID, constant.AbortReasonOrderPersistence)
		return nil, errors.SetCustomError(constant.ErrOrderInconsistent).WithFields(map[string]string{
			"payment_id": req.PaymentID,
			"session_id": sessionID,
		})
	}

	if _, err := s.update(ctx, "ConfirmPayment", sessionID, func(cs *model.CheckoutSession, now time.Time) error {
		if err := advance(cs, constant.CheckoutStateOrderCreated, now); err != nil {
			return err
		}
		cs.OrderID = order.OrderID
		return nil
	}); err != nil {
		logger.Error("[ConfirmPayment] mark session order created", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
	}

	if err := s.cartApp.Clear(ctx, session.CartID); err != nil {
		logger.Error("[ConfirmPayment] clear cart", zap.String("cart_id", session.CartID), zap.String("error", err.Error()))
	}

	return &model.CheckoutOrderResponse{SessionID: sessionID, Order: order}, nil
}

// FailPayment aborts the session and keeps the cart for a retry.
func (s *checkoutAppImpl) FailPayment(ctx context.Context, sessionID string, req *model.FailPaymentRequest) (*model.CheckoutResponse, error) {
	if req != nil && req.Reason != "" {
		logger.Info("[FailPayment] payment failed", zap.String("session_id", sessionID), zap.String("reason", req.Reason))
	}
	updated, err := s.update(ctx, "FailPayment", sessionID, func(cs *model.CheckoutSession, now time.Time) error {
		return abort(cs, constant.AbortReasonPaymentFailed, now)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(updated), nil
}

func (s *checkoutAppImpl) Cancel(ctx context.Context, sessionID string) (*model.CheckoutResponse, error) {
	updated, err := s.update(ctx, "Cancel", sessionID, func(cs *model.CheckoutSession, now time.Time) error {
		return abort(cs, constant.AbortReasonCancelled, now)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(updated), nil
}

func (s *checkoutAppImpl) abortQuietly(ctx context.Context, sessionID, reason string) {
	if _, err := s.update(ctx, "abort", sessionID, func(cs *model.CheckoutSession, now time.Time) error {
		return abort(cs, reason, now)
	}); err != nil {
		logger.Error("[abort] abort session", zap.String("session_id", sessionID), zap.String("error", err.Error()))
	}
}

func (s *checkoutAppImpl) load(ctx context.Context, op, sessionID string) (*model.CheckoutSession, error) {
	session, err := s.checkoutRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("["+op+"] err checkoutRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if session == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return session, nil
}

func (s *checkoutAppImpl) update(ctx context.Context, op, sessionID string, fn func(cs *model.CheckoutSession, now time.Time) error) (*model.CheckoutSession, error) {
	updated, err := s.checkoutRepo.Update(ctx, sessionID, s.ttl(), func(cs *model.CheckoutSession, exists bool) error {
		if !exists {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		return fn(cs, s.now())
	})
	if err != nil {
		var ce errors.CustomError
		if errors.As(err, &ce) {
			return nil, ce
		}
		logger.Error("["+op+"] err checkoutRepo.Update", zap.String("session_id", sessionID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated, nil
}

// MinorUnits converts a major-unit amount to the gateway's smallest currency unit.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(constant.MinorUnitsPerMajor)).Round(0).IntPart()
}
