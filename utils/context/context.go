package context

import (
	"context"

	"github.com/muhammadheryan/food-storefront/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetPaymentSettingsToken(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.PaymentSettingsTokenKey)
	if v == nil {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}

func WithPaymentSettingsToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constant.PaymentSettingsTokenKey, token)
}
