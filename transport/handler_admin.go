package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	"github.com/muhammadheryan/food-storefront/utils/errors"
)

// Login handler
// @Summary Admin login
// @Description Login with email and password and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errorResponse
// @Router /admin/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AdminApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Logout handler
// @Summary Admin logout
// @Tags Auth
// @Security BearerAuth
// @Success 200
// @Router /admin/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := bearerToken(r)
	if err := s.AdminApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListOrders handler
// @Summary List orders, newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, ready or completed"
// @Success 200 {array} model.Order
// @Router /admin/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter := &model.OrderFilter{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = constant.OrderStatus(status)
		if !filter.Status.Valid() {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest).WithFields(map[string]string{"status": "unknown status"}))
			return
		}
	}

	res, err := s.OrderApp.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order with items and pickup code
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param orderID path string true "Order ID"
// @Success 200 {object} model.Order
// @Router /admin/orders/{orderID} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetOrder(r.Context(), mux.Vars(r)["orderID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteOrder handler
// @Summary Delete order
// @Tags Admin
// @Security BearerAuth
// @Param orderID path string true "Order ID"
// @Success 200
// @Router /admin/orders/{orderID} [delete]
func (s *RestHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.OrderApp.DeleteOrder(r.Context(), mux.Vars(r)["orderID"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// MarkOrderReady handler
// @Summary Mark a pending order ready for pickup
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param orderID path string true "Order ID"
// @Success 200 {object} model.Order
// @Router /admin/orders/{orderID}/ready [post]
func (s *RestHandler) MarkOrderReady(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.MarkReady(r.Context(), mux.Vars(r)["orderID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CompleteOrder handler
// @Summary Complete a ready order with the customer's pickup code
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderID path string true "Order ID"
// @Param request body model.CompleteOrderRequest true "Pickup code"
// @Success 200 {object} model.Order
// @Router /admin/orders/{orderID}/complete [post]
func (s *RestHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	var req model.CompleteOrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.CompleteOrder(r.Context(), mux.Vars(r)["orderID"], req.OTP)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ForceCompleteOrder handler
// @Summary Complete a pending or ready order without the pickup code
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param orderID path string true "Order ID"
// @Success 200 {object} model.Order
// @Router /admin/orders/{orderID}/force-complete [post]
func (s *RestHandler) ForceCompleteOrder(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.ForceComplete(r.Context(), mux.Vars(r)["orderID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CleanupOrders handler
// @Summary Purge completed orders past the retention window
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CleanupResponse
// @Router /admin/orders/cleanup [post]
func (s *RestHandler) CleanupOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.CleanupCompleted(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CronCleanup handler
// @Summary Purge completed orders, for external schedulers
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CleanupResponse
// @Router /internal/v1/cron/cleanup [get]
func (s *RestHandler) CronCleanup(w http.ResponseWriter, r *http.Request) {
	s.CleanupOrders(w, r)
}

// MailHealth handler
// @Summary Check SMTP connectivity without sending
// @Tags Admin
// @Security BearerAuth
// @Success 200
// @Failure 503 {object} errorResponse
// @Router /admin/mail/health [get]
func (s *RestHandler) MailHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.NotificationApp.MailHealth(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// SendPaymentSettingsOTP handler
// @Summary Email a code that unlocks payment settings
// @Tags PaymentSettings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SendOTPResponse
// @Router /admin/payment-settings/otp/send [post]
func (s *RestHandler) SendPaymentSettingsOTP(w http.ResponseWriter, r *http.Request) {
	res, err := s.PaymentSettingsApp.SendOTP(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// VerifyPaymentSettingsOTP handler
// @Summary Exchange the code for an unlock token
// @Tags PaymentSettings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.VerifyOTPOnlyRequest true "OTP"
// @Success 200 {object} model.PaymentSettingsUnlockResponse
// @Router /admin/payment-settings/otp/verify [post]
func (s *RestHandler) VerifyPaymentSettingsOTP(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyOTPOnlyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PaymentSettingsApp.VerifyOTP(r.Context(), req.OTP)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// LockPaymentSettings handler
// @Summary Revoke the unlock token
// @Tags PaymentSettings
// @Security BearerAuth
// @Param X-Payment-Settings-Token header string true "Unlock token"
// @Success 200
// @Router /admin/payment-settings/lock [post]
func (s *RestHandler) LockPaymentSettings(w http.ResponseWriter, r *http.Request) {
	if err := s.PaymentSettingsApp.Lock(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// GetPaymentCredentials handler
// @Summary Show stored gateway credentials without the secret
// @Tags PaymentSettings
// @Produce json
// @Security BearerAuth
// @Param X-Payment-Settings-Token header string true "Unlock token"
// @Success 200 {object} model.PaymentCredentialsView
// @Router /admin/payment-settings/credentials [get]
func (s *RestHandler) GetPaymentCredentials(w http.ResponseWriter, r *http.Request) {
	res, err := s.PaymentSettingsApp.GetCredentials(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SavePaymentCredentials handler
// @Summary Replace gateway credentials
// @Tags PaymentSettings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Payment-Settings-Token header string true "Unlock token"
// @Param request body model.SavePaymentCredentialsRequest true "Credentials"
// @Success 200 {object} model.PaymentCredentialsView
// @Router /admin/payment-settings/credentials [put]
func (s *RestHandler) SavePaymentCredentials(w http.ResponseWriter, r *http.Request) {
	var req model.SavePaymentCredentialsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PaymentSettingsApp.SaveCredentials(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
