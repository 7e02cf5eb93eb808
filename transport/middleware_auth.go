package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/food-storefront/application/admin"
	"github.com/muhammadheryan/food-storefront/constant"
	utilsContext "github.com/muhammadheryan/food-storefront/utils/context"
	"github.com/muhammadheryan/food-storefront/utils/errors"
)

// AuthMiddleware validates the admin JWT and its Redis session.
func AuthMiddleware(adminApp admin.AdminApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			adminID, err := adminApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PaymentSettingsMiddleware moves the unlock token header into the request context.
func PaymentSettingsMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(constant.PaymentSettingsTokenHeader))
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrPaymentSettingsLocked))
				return
			}
			next.ServeHTTP(w, r.WithContext(utilsContext.WithPaymentSettingsToken(r.Context(), token)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}
