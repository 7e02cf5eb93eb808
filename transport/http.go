package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	adminapp "github.com/muhammadheryan/food-storefront/application/admin"
	cartapp "github.com/muhammadheryan/food-storefront/application/cart"
	checkoutapp "github.com/muhammadheryan/food-storefront/application/checkout"
	imageapp "github.com/muhammadheryan/food-storefront/application/image"
	notificationapp "github.com/muhammadheryan/food-storefront/application/notification"
	orderapp "github.com/muhammadheryan/food-storefront/application/order"
	otpapp "github.com/muhammadheryan/food-storefront/application/otp"
	paymentsettingsapp "github.com/muhammadheryan/food-storefront/application/paymentsettings"
	productapp "github.com/muhammadheryan/food-storefront/application/product"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/utils/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AdminApp           adminapp.AdminApp
	CartApp            cartapp.CartApp
	CheckoutApp        checkoutapp.CheckoutApp
	ImageApp           imageapp.ImageApp
	NotificationApp    notificationapp.NotificationApp
	OrderApp           orderapp.OrderApp
	OTPApp             otpapp.OTPApp
	PaymentSettingsApp paymentsettingsapp.PaymentSettingsApp
	ProductApp         productapp.ProductApp

	// ImageMaxBytes caps how much of an upload is read before validation.
	ImageMaxBytes int64
}

type Options struct {
	InternalAPIKey string
	Metrics        *metrics.Metrics
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	if rh.ImageMaxBytes <= 0 {
		rh.ImageMaxBytes = constant.MaxImageBytes
	}

	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	if opts.MetricsHandler != nil {
		mux.Handle("/metrics", opts.MetricsHandler).Methods(http.MethodGet)
	}

	// Public routes
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id:[0-9]+}/convert", rh.ConvertProduct).Methods(http.MethodPost)
	mux.HandleFunc("/images/{id}", rh.GetImage).Methods(http.MethodGet)

	mux.HandleFunc("/carts", rh.CreateCart).Methods(http.MethodPost)
	mux.HandleFunc("/carts/{cartID}", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/carts/{cartID}/items", rh.AddCartItem).Methods(http.MethodPost)
	mux.HandleFunc("/carts/{cartID}/lines/{lineID}", rh.RemoveCartLine).Methods(http.MethodDelete)
	mux.HandleFunc("/carts/{cartID}/products/{productID:[0-9]+}/quantity", rh.UpdateCartQuantity).Methods(http.MethodPut)
	mux.HandleFunc("/carts/{cartID}/products/{productID:[0-9]+}/weight-lines/last", rh.RemoveLastWeightLine).Methods(http.MethodDelete)
	mux.HandleFunc("/carts/{cartID}/products/{productID:[0-9]+}/weight-lines/repeat", rh.RepeatWeightLine).Methods(http.MethodPost)

	mux.HandleFunc("/otp/send", rh.SendOTP).Methods(http.MethodPost)
	mux.HandleFunc("/otp/verify", rh.VerifyOTP).Methods(http.MethodPost)

	mux.HandleFunc("/checkout", rh.StartCheckout).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{sessionID}", rh.GetCheckout).Methods(http.MethodGet)
	mux.HandleFunc("/checkout/{sessionID}/otp/resend", rh.ResendCheckoutOTP).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{sessionID}/otp/verify", rh.VerifyCheckoutOTP).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{sessionID}/payment", rh.CreatePayment).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{sessionID}/payment/confirm", rh.ConfirmPayment).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{sessionID}/payment/fail", rh.FailPayment).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{sessionID}/cancel", rh.CancelCheckout).Methods(http.MethodPost)

	mux.HandleFunc("/payment/config", rh.PaymentConfig).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{orderID}/status", rh.GetOrderStatus).Methods(http.MethodGet)
	mux.HandleFunc("/admin/login", rh.Login).Methods(http.MethodPost)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/cron/cleanup", rh.CronCleanup).Methods(http.MethodGet)

	// protected routes
	admin := mux.PathPrefix("/admin").Subrouter()
	admin.Use(AuthMiddleware(rh.AdminApp))
	admin.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	admin.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/cleanup", rh.CleanupOrders).Methods(http.MethodPost)
	admin.HandleFunc("/orders/{orderID}", rh.GetOrder).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{orderID}", rh.DeleteOrder).Methods(http.MethodDelete)
	admin.HandleFunc("/orders/{orderID}/ready", rh.MarkOrderReady).Methods(http.MethodPost)
	admin.HandleFunc("/orders/{orderID}/complete", rh.CompleteOrder).Methods(http.MethodPost)
	admin.HandleFunc("/orders/{orderID}/force-complete", rh.ForceCompleteOrder).Methods(http.MethodPost)
	admin.HandleFunc("/products", rh.AdminListProducts).Methods(http.MethodGet)
	admin.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id:[0-9]+}", rh.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id:[0-9]+}", rh.DeleteProduct).Methods(http.MethodDelete)
	admin.HandleFunc("/images", rh.UploadImage).Methods(http.MethodPost)
	admin.HandleFunc("/mail/health", rh.MailHealth).Methods(http.MethodGet)
	admin.HandleFunc("/payment-settings/otp/send", rh.SendPaymentSettingsOTP).Methods(http.MethodPost)
	admin.HandleFunc("/payment-settings/otp/verify", rh.VerifyPaymentSettingsOTP).Methods(http.MethodPost)

	unlocked := admin.PathPrefix("/payment-settings").Subrouter()
	unlocked.Use(PaymentSettingsMiddleware())
	unlocked.HandleFunc("/lock", rh.LockPaymentSettings).Methods(http.MethodPost)
	unlocked.HandleFunc("/credentials", rh.GetPaymentCredentials).Methods(http.MethodGet)
	unlocked.HandleFunc("/credentials", rh.SavePaymentCredentials).Methods(http.MethodPut)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(MetricsMiddleware(opts.Metrics))

	return mux
}
