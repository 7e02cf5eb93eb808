package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	orderapp "github.com/muhammadheryan/food-storefront/application/order"
	productapp "github.com/muhammadheryan/food-storefront/application/product"
	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	ordermocks "github.com/muhammadheryan/food-storefront/mocks/repository/order"
	productmocks "github.com/muhammadheryan/food-storefront/mocks/repository/product"
	txmocks "github.com/muhammadheryan/food-storefront/mocks/repository/tx"
	cerr "github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const internalKey = "cron-secret"

// fakeAdmin accepts the single token "good".
type fakeAdmin struct{}

func (fakeAdmin) Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error) {
	return nil, cerr.SetCustomError(constant.ErrInvalidPassword)
}

func (fakeAdmin) Logout(context.Context, string) error { return nil }

func (fakeAdmin) ValidateToken(_ context.Context, token string) (uint64, error) {
	if token != "good" {
		return 0, errors.New("invalid token")
	}
	return 1, nil
}

func (fakeAdmin) EnsureAdmin(context.Context) error { return nil }

type testServer struct {
	handler  http.Handler
	products *productmocks.ProductRepository
	orders   *ordermocks.OrderRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	products := productmocks.NewProductRepository(t)
	orders := ordermocks.NewOrderRepository(t)
	cfg := &config.Config{Order: config.OrderConfig{RetentionWindow: 48 * time.Hour}}

	rh := &RestHandler{
		AdminApp:   fakeAdmin{},
		ProductApp: productapp.NewProductApp(products),
		OrderApp:   orderapp.NewOrderApp(cfg, txmocks.NewTxRepository(t), orders, nil, nil),
	}
	return &testServer{
		handler:  NewTransport(rh, Options{InternalAPIKey: internalKey}),
		products: products,
		orders:   orders,
	}
}

func (s *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var res errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestPublicProductRoutes(t *testing.T) {
	s := newTestServer(t)
	s.products.On("List", mock.Anything, &model.ProductFilter{AvailableOnly: true}).
		Return([]model.Product{{ID: 1, Name: "Samosa", BasePrice: decimal.NewFromInt(15), Available: true}}, nil).
		Once()
	s.products.On("GetByID", mock.Anything, uint64(99)).Return(nil, nil).Once()

	rec := s.do(http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var list struct {
		Code string          `json:"code"`
		Data []model.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, constant.ErrorTypeCode[constant.Successful], list.Code)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Samosa", list.Data[0].Name)

	rec = s.do(http.MethodGet, "/products/99", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrNotFound], decodeError(t, rec).Code)

	rec = s.do(http.MethodGet, "/products/0", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Fields, "id")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{name: "no header", want: http.StatusUnauthorized},
		{name: "not bearer", headers: map[string]string{"Authorization": "Basic abc"}, want: http.StatusUnauthorized},
		{name: "rejected token", headers: map[string]string{"Authorization": "Bearer bad"}, want: http.StatusUnauthorized},
		{name: "invalid status filter", headers: map[string]string{"Authorization": "Bearer good"}, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodGet, "/admin/orders?status=shipped", "", tt.headers)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	// login stays reachable without a token
	rec := s.do(http.MethodPost, "/admin/login", `{"email":"a@b.co","password":"x"}`, nil)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidPassword], decodeError(t, rec).Code)
}

func TestPaymentSettingsRoutesNeedUnlockToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/admin/payment-settings/credentials", "", map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrPaymentSettingsLocked], decodeError(t, rec).Code)
}

func TestInternalCronCleanup(t *testing.T) {
	s := newTestServer(t)
	s.orders.On("DeleteCompletedBefore", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(4), nil).Once()

	rec := s.do(http.MethodGet, "/internal/v1/cron/cleanup", "", map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/internal/v1/cron/cleanup", "", map[string]string{"Authorization": "Bearer " + internalKey})
	require.Equal(t, http.StatusOK, rec.Code)
	var res struct {
		Data model.CleanupResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, int64(4), res.Data.DeletedCount)
}

func TestInternalMiddlewareWithoutKeyRejectsEverything(t *testing.T) {
	called := false
	h := InternalMiddleware("")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodGet, "/internal/v1/cron/cleanup", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("driver: bad connection"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	res := decodeError(t, rec)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInternal], res.Code)
	assert.NotContains(t, rec.Body.String(), "bad connection")

	rec = httptest.NewRecorder()
	writeError(rec, cerr.SetCustomError(constant.ErrOrderInconsistent).WithFields(map[string]string{"payment_id": "pay_1"}))
	res = decodeError(t, rec)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrOrderInconsistent], res.Code)
	assert.Equal(t, "pay_1", res.Fields["payment_id"])
}

func TestDecodeAndValidate(t *testing.T) {
	var dst model.StartCheckoutRequest

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader("{not json"))
	err := decodeAndValidate(req, &dst)
	assert.True(t, cerr.IsType(err, constant.ErrInvalidRequest))

	req = httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"customer":{"name":"Asha","email":"nope"}}`))
	err = decodeAndValidate(req, &dst)
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce))
	assert.NotEmpty(t, ce.Fields())
}
