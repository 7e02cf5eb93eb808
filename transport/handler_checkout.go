package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
)

// SendOTP handler
// @Summary Send an order verification code by email
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.SendOTPRequest true "Send OTP Request"
// @Success 200 {object} model.SendOTPResponse
// @Failure 503 {object} errorResponse
// @Router /otp/send [post]
func (s *RestHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req model.SendOTPRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	otpType := req.Type
	if otpType == "" {
		otpType = constant.OTPTypeVerification
	}

	res, err := s.OTPApp.SendOTP(r.Context(), req.Email, otpType, constant.OTPPurposeOrder)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// VerifyOTP handler
// @Summary Verify an order verification code
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.VerifyOTPRequest true "Verify OTP Request"
// @Success 200
// @Router /otp/verify [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOTPRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.OTPApp.VerifyOTP(r.Context(), req.Email, req.OTP, constant.OTPPurposeOrder); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// StartCheckout handler
// @Summary Start checkout for a cart and email a verification code
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.StartCheckoutRequest true "Start Checkout Request"
// @Success 201 {object} model.CheckoutResponse
// @Router /checkout [post]
func (s *RestHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	var req model.StartCheckoutRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CheckoutApp.Start(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// GetCheckout handler
// @Summary Get checkout session state
// @Tags Checkout
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} model.CheckoutResponse
// @Router /checkout/{sessionID} [get]
func (s *RestHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.Get(r.Context(), mux.Vars(r)["sessionID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ResendCheckoutOTP handler
// @Summary Resend the verification code; the previous code stops working
// @Tags Checkout
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} model.CheckoutResponse
// @Router /checkout/{sessionID}/otp/resend [post]
func (s *RestHandler) ResendCheckoutOTP(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.ResendOTP(r.Context(), mux.Vars(r)["sessionID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// VerifyCheckoutOTP handler
// @Summary Verify the checkout code
// @Tags Checkout
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body model.VerifyOTPOnlyRequest true "OTP"
// @Success 200 {object} model.CheckoutResponse
// @Router /checkout/{sessionID}/otp/verify [post]
func (s *RestHandler) VerifyCheckoutOTP(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOTPOnlyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CheckoutApp.VerifyOTP(r.Context(), mux.Vars(r)["sessionID"], req.OTP)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreatePayment handler
// @Summary Create the gateway order for a verified checkout
// @Tags Checkout
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} model.PaymentInitResponse
// @Router /checkout/{sessionID}/payment [post]
func (s *RestHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.CreatePayment(r.Context(), mux.Vars(r)["sessionID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ConfirmPayment handler
// @Summary Confirm a gateway payment and create the order
// @Tags Checkout
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body model.ConfirmPaymentRequest true "Gateway callback fields"
// @Success 201 {object} model.CheckoutOrderResponse
// @Failure 402 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /checkout/{sessionID}/payment/confirm [post]
func (s *RestHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req model.ConfirmPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CheckoutApp.ConfirmPayment(r.Context(), mux.Vars(r)["sessionID"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// FailPayment handler
// @Summary Report a failed or dismissed payment; the cart is kept
// @Tags Checkout
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body model.FailPaymentRequest false "Failure reason"
// @Success 200 {object} model.CheckoutResponse
// @Router /checkout/{sessionID}/payment/fail [post]
func (s *RestHandler) FailPayment(w http.ResponseWriter, r *http.Request) {
	var req model.FailPaymentRequest
	if r.ContentLength > 0 {
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, err)
			return
		}
	}

	res, err := s.CheckoutApp.FailPayment(r.Context(), mux.Vars(r)["sessionID"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CancelCheckout handler
// @Summary Cancel checkout; the cart is kept
// @Tags Checkout
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} model.CheckoutResponse
// @Router /checkout/{sessionID}/cancel [post]
func (s *RestHandler) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.Cancel(r.Context(), mux.Vars(r)["sessionID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PaymentConfig handler
// @Summary Public gateway key id and environment
// @Tags Checkout
// @Produce json
// @Success 200 {object} model.PaymentConfigResponse
// @Router /payment/config [get]
func (s *RestHandler) PaymentConfig(w http.ResponseWriter, r *http.Request) {
	res, err := s.PaymentSettingsApp.PublicConfig(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrderStatus handler
// @Summary Track an order; the pickup code is never returned
// @Tags Order
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {object} model.OrderStatusView
// @Router /orders/{orderID}/status [get]
func (s *RestHandler) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetOrderStatus(r.Context(), mux.Vars(r)["orderID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
