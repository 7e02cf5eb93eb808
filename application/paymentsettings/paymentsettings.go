package paymentsettings

import (
	"context"

	"github.com/google/uuid"
	otpapp "github.com/muhammadheryan/food-storefront/application/otp"
	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	credentialsrepo "github.com/muhammadheryan/food-storefront/repository/credentials"
	redisrepo "github.com/muhammadheryan/food-storefront/repository/redis"
	utilsContext "github.com/muhammadheryan/food-storefront/utils/context"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"github.com/muhammadheryan/food-storefront/utils/secretbox"
	"go.uber.org/zap"
)

type PaymentSettingsApp interface {
	SendOTP(ctx context.Context) (*model.SendOTPResponse, error)
	// VerifyOTP returns an unlock token that stays valid until Lock is called.
	VerifyOTP(ctx context.Context, code string) (*model.PaymentSettingsUnlockResponse, error)
	Lock(ctx context.Context) error
	// GetCredentials and SaveCredentials need the unlock token in ctx.
	GetCredentials(ctx context.Context) (*model.PaymentCredentialsView, error)
	SaveCredentials(ctx context.Context, req *model.SavePaymentCredentialsRequest) (*model.PaymentCredentialsView, error)
	// ActiveCredentials resolves the gateway credentials used for payments.
	ActiveCredentials(ctx context.Context) (*model.PaymentCredentials, error)
	PublicConfig(ctx context.Context) (*model.PaymentConfigResponse, error)
}

type paymentSettingsAppImpl struct {
	config    *config.Config
	otpApp    otpapp.OTPApp
	credRepo  credentialsrepo.CredentialsRepository
	redisRepo redisrepo.Repository
	box       *secretbox.Box
}

func NewPaymentSettingsApp(config *config.Config, otpApp otpapp.OTPApp, credRepo credentialsrepo.CredentialsRepository, redisRepo redisrepo.Repository, box *secretbox.Box) PaymentSettingsApp {
	return &paymentSettingsAppImpl{
		config:    config,
		otpApp:    otpApp,
		credRepo:  credRepo,
		redisRepo: redisRepo,
		box:       box,
	}
}

func unlockKey(token string) string {
	return "payment_settings_unlock:" + token
}

func (s *paymentSettingsAppImpl) SendOTP(ctx context.Context) (*model.SendOTPResponse, error) {
	return s.otpApp.SendOTP(ctx, s.config.PaymentSettings.OTPEmail, constant.OTPTypeVerification, constant.OTPPurposePaymentSettings)
}

func (s *paymentSettingsAppImpl) VerifyOTP(ctx context.Context, code string) (*model.PaymentSettingsUnlockResponse, error) {
	if err := s.otpApp.VerifyOTP(ctx, s.config.PaymentSettings.OTPEmail, code, constant.OTPPurposePaymentSettings); err != nil {
		return nil, err
	}

	token := uuid.NewString()
	if err := s.redisRepo.SetWithTTL(ctx, unlockKey(token), s.config.PaymentSettings.OTPEmail, 0); err != nil {
		logger.Error("[VerifyOTP] err redisRepo.SetWithTTL", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.PaymentSettingsUnlockResponse{Token: token}, nil
}

func (s *paymentSettingsAppImpl) Lock(ctx context.Context) error {
	token, ok := utilsContext.GetPaymentSettingsToken(ctx)
	if !ok {
		return nil
	}
	if err := s.redisRepo.Delete(ctx, unlockKey(token)); err != nil {
		logger.Error("[Lock] err redisRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *paymentSettingsAppImpl) ensureUnlocked(ctx context.Context) error {
	token, ok := utilsContext.GetPaymentSettingsToken(ctx)
	if !ok {
		return errors.SetCustomError(constant.ErrPaymentSettingsLocked)
	}
	if _, err := s.redisRepo.Get(ctx, unlockKey(token)); err != nil {
		if redisrepo.IsNil(err) {
			return errors.SetCustomError(constant.ErrPaymentSettingsLocked)
		}
		logger.Error("[ensureUnlocked] err redisRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *paymentSettingsAppImpl) GetCredentials(ctx context.Context) (*model.PaymentCredentialsView, error) {
	if err := s.ensureUnlocked(ctx); err != nil {
		return nil, err
	}
	e, err := s.credRepo.Get(ctx)
	if err != nil {
		logger.Error("[GetCredentials] err credRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if e == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return &model.PaymentCredentialsView{KeyID: e.KeyID, Environment: e.Environment, IsActive: e.IsActive}, nil
}

func (s *paymentSettingsAppImpl) SaveCredentials(ctx context.Context, req *model.SavePaymentCredentialsRequest) (*model.PaymentCredentialsView, error) {
	if err := s.ensureUnlocked(ctx); err != nil {
		return nil, err
	}
	sealed, err := s.box.Seal(req.KeySecret)
	if err != nil {
		logger.Error("[SaveCredentials] err box.Seal", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	e := &model.PaymentCredentialsEntity{
		KeyID:           req.KeyID,
		KeySecretSealed: sealed,
		Environment:     req.Environment,
		IsActive:        true,
	}
	if err := s.credRepo.Upsert(ctx, e); err != nil {
		logger.Error("[SaveCredentials] err credRepo.Upsert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.PaymentCredentialsView{KeyID: e.KeyID, Environment: e.Environment, IsActive: e.IsActive}, nil
}

func (s *paymentSettingsAppImpl) ActiveCredentials(ctx context.Context) (*model.PaymentCredentials, error) {
	e, err := s.credRepo.Get(ctx)
	if err != nil {
		logger.Error("[ActiveCredentials] err credRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if e != nil && e.IsActive {
		secret, err := s.box.Open(e.KeySecretSealed)
		if err != nil {
			logger.Error("[ActiveCredentials] err box.Open", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		return &model.PaymentCredentials{KeyID: e.KeyID, KeySecret: secret, Environment: e.Environment, IsActive: true}, nil
	}

	fallback := s.config.PaymentSettings
	if fallback.FallbackKeyID == "" || fallback.FallbackKeySecret == "" {
		logger.Warn("[ActiveCredentials] no payment credentials configured")
		return nil, errors.SetCustomError(constant.ErrPaymentGateway)
	}
	return &model.PaymentCredentials{
		KeyID:       fallback.FallbackKeyID,
		KeySecret:   fallback.FallbackKeySecret,
		Environment: constant.PaymentEnvironmentTest,
		IsActive:    true,
	}, nil
}

func (s *paymentSettingsAppImpl) PublicConfig(ctx context.Context) (*model.PaymentConfigResponse, error) {
	creds, err := s.ActiveCredentials(ctx)
	if err != nil {
		return nil, err
	}
	return &model.PaymentConfigResponse{KeyID: creds.KeyID, Environment: creds.Environment}, nil
}
