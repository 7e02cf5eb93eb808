package otp

import (
	"context"
	"time"

	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	otprepo "github.com/muhammadheryan/food-storefront/repository/otp"
	"github.com/muhammadheryan/food-storefront/thirdparty/mailer"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"github.com/muhammadheryan/food-storefront/utils/metrics"
	"github.com/muhammadheryan/food-storefront/utils/otpcode"
	"go.uber.org/zap"
)

type OTPApp interface {
	// SendOTP issues a fresh code to email, invalidating any earlier one.
	SendOTP(ctx context.Context, email string, otpType constant.OTPType, purpose constant.OTPPurpose) (*model.SendOTPResponse, error)
	// VerifyOTP consumes the code on success.
	VerifyOTP(ctx context.Context, email, code string, purpose constant.OTPPurpose) error
}

type otpAppImpl struct {
	config  *config.Config
	otpRepo otprepo.OTPRepository
	mailer  mailer.Mailer
	metrics *metrics.Metrics
	now     func() time.Time
	gen     func() (string, error)
}

func NewOTPApp(config *config.Config, otpRepo otprepo.OTPRepository, m mailer.Mailer, mt *metrics.Metrics) OTPApp {
	return &otpAppImpl{
		config:  config,
		otpRepo: otpRepo,
		mailer:  m,
		metrics: mt,
		now:     time.Now,
		gen:     otpcode.Generate,
	}
}

func (s *otpAppImpl) validity() time.Duration {
	if s.config.OTP.Validity > 0 {
		return s.config.OTP.Validity
	}
	return constant.DefaultOTPValidity
}

func (s *otpAppImpl) SendOTP(ctx context.Context, email string, otpType constant.OTPType, purpose constant.OTPPurpose) (*model.SendOTPResponse, error) {
	res, err := s.sendOTP(ctx, email, otpType, purpose)
	s.metrics.IncOTPIssued(string(purpose), err == nil)
	return res, err
}

func (s *otpAppImpl) sendOTP(ctx context.Context, email string, otpType constant.OTPType, purpose constant.OTPPurpose) (*model.SendOTPResponse, error) {
	if otpType == "" {
		otpType = constant.OTPTypeVerification
	}

	if err := s.mailer.Check(ctx); err != nil {
		logger.Error("[SendOTP] err mailer.Check", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrEmailDelivery)
	}

	code, err := s.gen()
	if err != nil {
		logger.Error("[SendOTP] err generate otp", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := s.now()
	rec := &model.OTPRecord{
		Email:     email,
		OTP:       code,
		Type:      otpType,
		Purpose:   purpose,
		ExpiresAt: now.Add(s.validity()),
		CreatedAt: now,
	}
	// expiry is enforced on read; the store TTL only bounds garbage
	if err := s.otpRepo.Replace(ctx, rec, s.validity()+s.config.OTP.StoreGrace); err != nil {
		logger.Error("[SendOTP] err otpRepo.Replace", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	subject, body, err := mailer.OTPEmail(purpose, code, s.validity())
	if err != nil {
		logger.Error("[SendOTP] err render email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.mailer.Send(ctx, email, subject, body); err != nil {
		logger.Error("[SendOTP] err mailer.Send", zap.String("purpose", string(purpose)), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrEmailDelivery)
	}

	res := &model.SendOTPResponse{
		Message:   "OTP sent successfully",
		ExpiresAt: rec.ExpiresAt,
	}
	if s.config.OTP.ExposeInResponse && !s.config.IsProduction() {
		res.OTP = code
	}
	return res, nil
}

func (s *otpAppImpl) VerifyOTP(ctx context.Context, email, code string, purpose constant.OTPPurpose) error {
	rec, err := s.otpRepo.Get(ctx, email)
	if err != nil {
		logger.Error("[VerifyOTP] err otpRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if rec == nil || rec.Purpose != purpose || !otpcode.Equal(rec.OTP, code) {
		return errors.SetCustomError(constant.ErrInvalidOTP)
	}

	if rec.Expired(s.now()) {
		if _, err := s.otpRepo.Delete(ctx, email); err != nil {
			logger.Error("[VerifyOTP] err otpRepo.Delete expired", zap.String("error", err.Error()))
		}
		return errors.SetCustomError(constant.ErrOTPExpired)
	}
	if rec.Verified {
		return errors.SetCustomError(constant.ErrOTPUsed)
	}

	deleted, err := s.otpRepo.Delete(ctx, email)
	if err != nil {
		logger.Error("[VerifyOTP] err otpRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		// a concurrent verification consumed it first
		return errors.SetCustomError(constant.ErrOTPUsed)
	}
	return nil
}
