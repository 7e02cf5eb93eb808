package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/food-storefront/application/admin"
	cartapp "github.com/muhammadheryan/food-storefront/application/cart"
	checkoutapp "github.com/muhammadheryan/food-storefront/application/checkout"
	imageapp "github.com/muhammadheryan/food-storefront/application/image"
	notificationapp "github.com/muhammadheryan/food-storefront/application/notification"
	orderapp "github.com/muhammadheryan/food-storefront/application/order"
	otpapp "github.com/muhammadheryan/food-storefront/application/otp"
	paymentsettingsapp "github.com/muhammadheryan/food-storefront/application/paymentsettings"
	productapp "github.com/muhammadheryan/food-storefront/application/product"
	"github.com/muhammadheryan/food-storefront/cmd/config"
	mongoclient "github.com/muhammadheryan/food-storefront/cmd/mongo"
	redisclient "github.com/muhammadheryan/food-storefront/cmd/redis"
	"github.com/muhammadheryan/food-storefront/constant"
	_ "github.com/muhammadheryan/food-storefront/docs"
	adminRepo "github.com/muhammadheryan/food-storefront/repository/admin"
	cartRepo "github.com/muhammadheryan/food-storefront/repository/cart"
	checkoutRepo "github.com/muhammadheryan/food-storefront/repository/checkout"
	credentialsRepo "github.com/muhammadheryan/food-storefront/repository/credentials"
	imageRepo "github.com/muhammadheryan/food-storefront/repository/image"
	orderRepo "github.com/muhammadheryan/food-storefront/repository/order"
	otpRepo "github.com/muhammadheryan/food-storefront/repository/otp"
	productRepo "github.com/muhammadheryan/food-storefront/repository/product"
	redisRepo "github.com/muhammadheryan/food-storefront/repository/redis"
	txRepo "github.com/muhammadheryan/food-storefront/repository/tx"
	"github.com/muhammadheryan/food-storefront/scheduler"
	"github.com/muhammadheryan/food-storefront/thirdparty/mailer"
	"github.com/muhammadheryan/food-storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/food-storefront/thirdparty/razorpay"
	"github.com/muhammadheryan/food-storefront/transport"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"github.com/muhammadheryan/food-storefront/utils/metrics"
	"github.com/muhammadheryan/food-storefront/utils/secretbox"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// @title FOOD STOREFRONT API
// @version 1.0
// @description Food storefront and admin back office API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	// money is rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	rdb, err := redisclient.New(ctx, cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer rdb.Close()

	mongoClient, err := mongoclient.New(ctx, cfg)
	if err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	box, err := secretbox.New(cfg.PaymentSettings.SecretKey)
	if err != nil {
		logger.Fatal("err init secretbox", zap.Error(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	mt := metrics.New(registry)

	smtpMailer := mailer.New(cfg.SMTP)

	// Initialize repositories
	AdminRepo := adminRepo.NewAdminRepository(db)
	CartRepo := cartRepo.NewCartRepository(rdb)
	CheckoutRepo := checkoutRepo.NewCheckoutRepository(rdb)
	CredentialsRepo := credentialsRepo.NewCredentialsRepository(db)
	ImageRepo := imageRepo.NewImageRepository(mongoClient.Database(cfg.Mongo.Database), cfg.Mongo.Bucket)
	OrderRepo := orderRepo.NewOrderRepository(db)
	OTPRepo := otpRepo.NewOTPRepository(rdb)
	ProductRepo := productRepo.NewProductRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb)
	TxRepo := txRepo.NewTxRepository(db)

	NotificationApp := notificationapp.NewNotificationApp(smtpMailer)

	var publisher orderapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL())
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer p.Close()
		publisher = p

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.URL(), NotificationApp.HandleOrderEvent)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
	}

	// Initialize application layers
	AdminApp := adminapp.NewAdminApp(cfg, AdminRepo, RedisRepo)
	CartApp := cartapp.NewCartApp(cfg, CartRepo, ProductRepo)
	ImageApp := imageapp.NewImageApp(cfg, ImageRepo)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, publisher, mt)
	OTPApp := otpapp.NewOTPApp(cfg, OTPRepo, smtpMailer, mt)
	PaymentSettingsApp := paymentsettingsapp.NewPaymentSettingsApp(cfg, OTPApp, CredentialsRepo, RedisRepo, box)
	ProductApp := productapp.NewProductApp(ProductRepo)
	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, CheckoutRepo, CartApp, OTPApp, OrderApp, PaymentSettingsApp, razorpay.New())

	if err := AdminApp.EnsureAdmin(ctx); err != nil {
		logger.Fatal("err ensure admin", zap.Error(err))
	}

	lock, err := scheduler.NewRedisLock(RedisRepo, constant.OrderCleanupLockKey, cfg.Order.CleanupInterval)
	if err != nil {
		logger.Fatal("err init scheduler lock", zap.Error(err))
	}
	cron, err := scheduler.NewService(scheduler.ServiceParams{
		Logger:   logger.Get(),
		Registry: scheduler.NewRegistry(scheduler.NewOrderCleanupJob(OrderApp)),
		Lock:     lock,
		Metrics:  mt,
		Interval: cfg.Order.CleanupInterval,
	})
	if err != nil {
		logger.Fatal("err init scheduler", zap.Error(err))
	}
	go func() {
		if err := cron.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler stopped", zap.Error(err))
		}
	}()

	httpTransport := transport.NewTransport(&transport.RestHandler{
		AdminApp:           AdminApp,
		CartApp:            CartApp,
		CheckoutApp:        CheckoutApp,
		ImageApp:           ImageApp,
		NotificationApp:    NotificationApp,
		OrderApp:           OrderApp,
		OTPApp:             OTPApp,
		PaymentSettingsApp: PaymentSettingsApp,
		ProductApp:         ProductApp,
		ImageMaxBytes:      cfg.Image.MaxBytes,
	}, transport.Options{
		InternalAPIKey: cfg.Auth.InternalAPIKey,
		Metrics:        mt,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
