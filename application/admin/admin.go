package admin

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	adminrepo "github.com/muhammadheryan/food-storefront/repository/admin"
	redisrepo "github.com/muhammadheryan/food-storefront/repository/redis"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AdminApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	EnsureAdmin(ctx context.Context) error
}

type adminAppImpl struct {
	config    *config.Config
	adminRepo adminrepo.AdminRepository
	redisRepo redisrepo.Repository
	now       func() time.Time
}

func NewAdminApp(config *config.Config, adminRepo adminrepo.AdminRepository, redisRepo redisrepo.Repository) AdminApp {
	return &adminAppImpl{
		config:    config,
		adminRepo: adminRepo,
		redisRepo: redisRepo,
		now:       time.Now,
	}
}

func (s *adminAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	admin, err := s.adminRepo.Get(ctx, &model.AdminFilter{Email: strings.ToLower(req.Email)})
	if err != nil {
		logger.Error("[Login] err adminRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// unknown email and wrong password look the same to the caller
	if admin == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, claims, err := s.generateJWT(admin.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, claims.ID, admin.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:      admin.Name,
		Email:     admin.Email,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout drops the session behind the token. An already expired session is not an error.
func (s *adminAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return 0, err
	}

	adminID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid admin id in token")
	}

	sessionAdminID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}
	if sessionAdminID != adminID {
		return 0, fmt.Errorf("token does not match admin session")
	}

	return adminID, nil
}

// EnsureAdmin creates the configured seed admin when it does not exist yet.
func (s *adminAppImpl) EnsureAdmin(ctx context.Context) error {
	email := strings.ToLower(s.config.Auth.AdminEmail)
	if email == "" || s.config.Auth.AdminPassword == "" {
		logger.Warn("[EnsureAdmin] seed admin not configured")
		return nil
	}

	existing, err := s.adminRepo.Get(ctx, &model.AdminFilter{Email: email})
	if err != nil {
		return fmt.Errorf("lookup seed admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.config.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}

	if _, err := s.adminRepo.Create(ctx, &model.AdminEntity{
		Name:         s.config.Auth.AdminName,
		Email:        email,
		PasswordHash: string(hash),
	}); err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}

	logger.Info("[EnsureAdmin] seed admin created", zap.String("email", email))
	return nil
}

func (s *adminAppImpl) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

func (s *adminAppImpl) generateJWT(adminID uint64) (string, *jwt.RegisteredClaims, error) {
	now := s.now()
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(adminID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims, nil
}
