package paymentsettings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/food-storefront/application/paymentsettings"
	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	otpmocks "github.com/muhammadheryan/food-storefront/mocks/application/otp"
	credentialsmocks "github.com/muhammadheryan/food-storefront/mocks/repository/credentials"
	redismocks "github.com/muhammadheryan/food-storefront/mocks/repository/redis"
	"github.com/muhammadheryan/food-storefront/model"
	utilsContext "github.com/muhammadheryan/food-storefront/utils/context"
	cerr "github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/secretbox"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ownerEmail = "owner@example.com"

type fields struct {
	otpApp    *otpmocks.OTPApp
	credRepo  *credentialsmocks.CredentialsRepository
	redisRepo *redismocks.RedisRepository
	box       *secretbox.Box
}

func newFields(t *testing.T) fields {
	box, err := secretbox.New("test-passphrase")
	require.NoError(t, err)
	return fields{
		otpApp:    otpmocks.NewOTPApp(t),
		credRepo:  credentialsmocks.NewCredentialsRepository(t),
		redisRepo: redismocks.NewRedisRepository(t),
		box:       box,
	}
}

func newApp(f fields, fallbackID, fallbackSecret string) paymentsettings.PaymentSettingsApp {
	cfg := &config.Config{PaymentSettings: config.PaymentSettingsConfig{
		OTPEmail:          ownerEmail,
		FallbackKeyID:     fallbackID,
		FallbackKeySecret: fallbackSecret,
	}}
	return paymentsettings.NewPaymentSettingsApp(cfg, f.otpApp, f.credRepo, f.redisRepo, f.box)
}

func TestPaymentSettingsApp_Unlock(t *testing.T) {
	ctx := context.Background()

	t.Run("otp goes to the fixed owner address", func(t *testing.T) {
		f := newFields(t)
		f.otpApp.On("SendOTP", mock.Anything, ownerEmail, constant.OTPTypeVerification, constant.OTPPurposePaymentSettings).
			Return(&model.SendOTPResponse{Message: "OTP sent successfully"}, nil).
			Once()

		_, err := newApp(f, "", "").SendOTP(ctx)
		require.NoError(t, err)
	})

	t.Run("verified otp stores an unlock token without expiry", func(t *testing.T) {
		f := newFields(t)
		f.otpApp.On("VerifyOTP", mock.Anything, ownerEmail, "123456", constant.OTPPurposePaymentSettings).Return(nil).Once()
		f.redisRepo.On("SetWithTTL", mock.Anything, mock.AnythingOfType("string"), ownerEmail, mock.Anything).Return(nil).Once()

		res, err := newApp(f, "", "").VerifyOTP(ctx, "123456")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		f.redisRepo.AssertCalled(t, "SetWithTTL", mock.Anything, "payment_settings_unlock:"+res.Token, ownerEmail, mock.Anything)
	})

	t.Run("wrong otp stores nothing", func(t *testing.T) {
		f := newFields(t)
		f.otpApp.On("VerifyOTP", mock.Anything, ownerEmail, "000000", constant.OTPPurposePaymentSettings).
			Return(cerr.SetCustomError(constant.ErrInvalidOTP)).
			Once()

		_, err := newApp(f, "", "").VerifyOTP(ctx, "000000")
		assert.True(t, cerr.IsType(err, constant.ErrInvalidOTP))
	})

	t.Run("lock deletes the token", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("Delete", mock.Anything, "payment_settings_unlock:tok").Return(nil).Once()

		err := newApp(f, "", "").Lock(utilsContext.WithPaymentSettingsToken(ctx, "tok"))
		require.NoError(t, err)
	})
}

func TestPaymentSettingsApp_Credentials(t *testing.T) {
	unlocked := utilsContext.WithPaymentSettingsToken(context.Background(), "tok")

	tests := []struct {
		name     string
		ctx      context.Context
		mockCall func(f fields)
		errCode  constant.ErrorType
	}{
		{
			name:    "error: no token",
			ctx:     context.Background(),
			errCode: constant.ErrPaymentSettingsLocked,
		},
		{
			name: "error: token was locked",
			ctx:  unlocked,
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, "payment_settings_unlock:tok").Return("", goredis.Nil).Once()
			},
			errCode: constant.ErrPaymentSettingsLocked,
		},
		{
			name: "error: redis down",
			ctx:  unlocked,
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, "payment_settings_unlock:tok").Return("", errors.New("i/o timeout")).Once()
			},
			errCode: constant.ErrInternal,
		},
		{
			name: "success: secret is sealed before storage",
			ctx:  unlocked,
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, "payment_settings_unlock:tok").Return(ownerEmail, nil).Once()
				f.credRepo.
					On("Upsert", mock.Anything, mock.MatchedBy(func(e *model.PaymentCredentialsEntity) bool {
						plain, err := f.box.Open(e.KeySecretSealed)
						return err == nil && plain == "rzp_secret" && e.KeySecretSealed != "rzp_secret" && e.IsActive
					})).
					Return(nil).
					Once()
			},
			errCode: constant.Successful,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			view, err := newApp(f, "", "").SaveCredentials(tt.ctx, &model.SavePaymentCredentialsRequest{
				KeyID:       "rzp_live_key",
				KeySecret:   "rzp_secret",
				Environment: constant.PaymentEnvironmentLive,
			})
			if tt.errCode != constant.Successful {
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "rzp_live_key", view.KeyID)
			assert.Equal(t, constant.PaymentEnvironmentLive, view.Environment)
		})
	}
}

func TestPaymentSettingsApp_ActiveCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("stored credentials win over the fallback", func(t *testing.T) {
		f := newFields(t)
		sealed, err := f.box.Seal("stored_secret")
		require.NoError(t, err)
		f.credRepo.On("Get", mock.Anything).Return(&model.PaymentCredentialsEntity{
			KeyID:           "rzp_live_key",
			KeySecretSealed: sealed,
			Environment:     constant.PaymentEnvironmentLive,
			IsActive:        true,
		}, nil).Once()

		creds, err := newApp(f, "env_key", "env_secret").ActiveCredentials(ctx)
		require.NoError(t, err)
		assert.Equal(t, "rzp_live_key", creds.KeyID)
		assert.Equal(t, "stored_secret", creds.KeySecret)
	})

	t.Run("fallback to environment credentials", func(t *testing.T) {
		f := newFields(t)
		f.credRepo.On("Get", mock.Anything).Return(nil, nil).Once()

		cfg, err := newApp(f, "env_key", "env_secret").PublicConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, "env_key", cfg.KeyID)
		assert.Equal(t, constant.PaymentEnvironmentTest, cfg.Environment)
	})

	t.Run("nothing configured", func(t *testing.T) {
		f := newFields(t)
		f.credRepo.On("Get", mock.Anything).Return(nil, nil).Once()

		_, err := newApp(f, "", "").ActiveCredentials(ctx)
		assert.True(t, cerr.IsType(err, constant.ErrPaymentGateway))
	})
}
