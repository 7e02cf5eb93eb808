package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	ordermocks "github.com/muhammadheryan/food-storefront/mocks/repository/order"
	txmocks "github.com/muhammadheryan/food-storefront/mocks/repository/tx"
	"github.com/muhammadheryan/food-storefront/model"
	cerr "github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type fakePublisher struct {
	events []*model.OrderNotification
	err    error
}

func (f *fakePublisher) PublishOrderEvent(_ context.Context, msg *model.OrderNotification) error {
	f.events = append(f.events, msg)
	return f.err
}

var testNow = time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Order: config.OrderConfig{
			IDPrefix:        "SDH",
			IDPadding:       4,
			RetentionWindow: 48 * time.Hour,
		},
	}
}

func newTestApp(txRepo *txmocks.TxRepository, orderRepo *ordermocks.OrderRepository, pub EventPublisher) *orderAppImpl {
	app := NewOrderApp(testConfig(), txRepo, orderRepo, pub, nil).(*orderAppImpl)
	app.now = func() time.Time { return testNow }
	app.gen = func() (string, error) { return "482913", nil }
	return app
}

func sampleItems() []model.LineItem {
	return []model.LineItem{
		model.NewUnitLine(1, "Samosa", decimal.NewFromInt(15), 2),
		model.NewWeightLine("w1", 2, "Paneer", decimal.NewFromInt(400), model.WeightLine{
			Weight: decimal.NewFromInt(600),
			Price:  decimal.NewFromInt(240),
			Mode:   constant.PricingModeWeight,
		}),
	}
}

func checkErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	tx := &sqlx.Tx{}
	customer := model.CustomerInfo{Name: "Asha", Email: "asha@example.com"}

	type fields struct {
		txRepo    *txmocks.TxRepository
		orderRepo *ordermocks.OrderRepository
		publisher *fakePublisher
	}
	type args struct {
		req *model.CreateOrderRequest
	}
	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		wantID     string
		wantEvents int
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: order created pending with pickup otp",
			args: args{req: &model.CreateOrderRequest{Items: sampleItems(), CustomerInfo: customer, PaymentID: "pay_1"}},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("NextSequenceTx", mock.Anything, tx).Return(uint64(7), nil).Once()
				f.orderRepo.
					On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertOrderTxItem) bool {
						return req.OrderID == "SDH0007" &&
							req.TotalAmount.Equal(decimal.NewFromInt(270)) &&
							req.Status == constant.OrderStatusPending &&
							req.PickupOTP == "482913" &&
							req.PaymentID != nil && *req.PaymentID == "pay_1"
					})).
					Return(uint64(11), nil).
					Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(11), mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantID:     "SDH0007",
			wantEvents: 1,
		},
		{
			name:    "error: empty cart",
			args:    args{req: &model.CreateOrderRequest{CustomerInfo: customer}},
			wantErr: true,
			errCode: constant.ErrEmptyCart,
		},
		{
			name:    "error: missing email",
			args:    args{req: &model.CreateOrderRequest{Items: sampleItems(), CustomerInfo: model.CustomerInfo{Name: "Asha"}}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: insert fails and tx is rolled back",
			args: args{req: &model.CreateOrderRequest{Items: sampleItems(), CustomerInfo: customer}},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("NextSequenceTx", mock.Anything, tx).Return(uint64(8), nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("duplicate key")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:    txmocks.NewTxRepository(t),
				orderRepo: ordermocks.NewOrderRepository(t),
				publisher: &fakePublisher{},
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			app := newTestApp(f.txRepo, f.orderRepo, f.publisher)
			got, err := app.CreateOrder(context.Background(), tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
				if len(f.publisher.events) != 0 {
					t.Fatalf("failed create published %d events", len(f.publisher.events))
				}
				return
			}
			if got.OrderID != tt.wantID || got.Status != constant.OrderStatusPending {
				t.Fatalf("CreateOrder() = %+v", got)
			}
			if !got.TotalAmount.Equal(decimal.RequireFromString("270.00")) {
				t.Fatalf("total = %s, want 270.00", got.TotalAmount)
			}
			if len(got.PickupOTP) != constant.OTPLength {
				t.Fatalf("pickup otp = %q", got.PickupOTP)
			}
			if len(f.publisher.events) != tt.wantEvents || f.publisher.events[0].Event != constant.OrderEventPlaced {
				t.Fatalf("events = %+v", f.publisher.events)
			}
		})
	}
}

func TestOrderApp_CompleteOrder(t *testing.T) {
	tx := &sqlx.Tx{}
	readyAt := testNow.Add(-time.Hour)

	tests := []struct {
		name     string
		otp      string
		stored   *model.Order
		mockCall func(txRepo *txmocks.TxRepository, orderRepo *ordermocks.OrderRepository, stored *model.Order)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: matching otp completes a ready order",
			otp:    "482913",
			stored: &model.Order{ID: 1, OrderID: "SDH0001", Status: constant.OrderStatusReady, PickupOTP: "482913", ReadyAt: &readyAt},
			mockCall: func(txRepo *txmocks.TxRepository, orderRepo *ordermocks.OrderRepository, stored *model.Order) {
				txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, "SDH0001").Return(stored, nil).Once()
				orderRepo.
					On("UpdateOrderStatusTx", mock.Anything, tx, mock.MatchedBy(func(u *model.OrderStatusUpdate) bool {
						return u.ID == 1 && u.Status == constant.OrderStatusCompleted && u.CompletedAt != nil && u.ForceCompleteReason == nil
					})).
					Return(nil).
					Once()
				txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name:   "error: wrong otp keeps the order ready",
			otp:    "000000",
			stored: &model.Order{ID: 1, OrderID: "SDH0001", Status: constant.OrderStatusReady, PickupOTP: "482913", ReadyAt: &readyAt},
			mockCall: func(txRepo *txmocks.TxRepository, orderRepo *ordermocks.OrderRepository, stored *model.Order) {
				txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, "SDH0001").Return(stored, nil).Once()
				txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPickupOTP,
		},
		{
			name: "error: order not found",
			otp:  "482913",
			mockCall: func(txRepo *txmocks.TxRepository, orderRepo *ordermocks.OrderRepository, _ *model.Order) {
				txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, "SDH0001").Return(nil, nil).Once()
				txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			txRepo := txmocks.NewTxRepository(t)
			orderRepo := ordermocks.NewOrderRepository(t)
			tt.mockCall(txRepo, orderRepo, tt.stored)

			app := newTestApp(txRepo, orderRepo, nil)
			got, err := app.CompleteOrder(context.Background(), "SDH0001", tt.otp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CompleteOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
				if tt.stored != nil && (tt.stored.Status != constant.OrderStatusReady || tt.stored.CompletedAt != nil) {
					t.Fatalf("rejected completion mutated the order: %+v", tt.stored)
				}
				return
			}
			if got.Status != constant.OrderStatusCompleted || got.CompletedAt == nil || !got.ReadyAt.Before(*got.CompletedAt) {
				t.Fatalf("CompleteOrder() = %+v", got)
			}
		})
	}
}

func TestOrderApp_MarkReadyTwiceConflicts(t *testing.T) {
	tx := &sqlx.Tx{}
	txRepo := txmocks.NewTxRepository(t)
	orderRepo := ordermocks.NewOrderRepository(t)
	stored := &model.Order{ID: 3, OrderID: "SDH0003", Status: constant.OrderStatusPending}

	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
	orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, "SDH0003").Return(stored, nil).Twice()
	orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()
	txRepo.On("RollbackTx", tx).Return(nil).Once()

	pub := &fakePublisher{err: errors.New("broker down")}
	app := newTestApp(txRepo, orderRepo, pub)

	first, err := app.MarkReady(context.Background(), "SDH0003")
	if err != nil {
		t.Fatalf("first MarkReady() error = %v", err)
	}
	if first.ReadyAt == nil || !first.ReadyAt.Equal(testNow) {
		t.Fatalf("readyAt = %v", first.ReadyAt)
	}

	_, err = app.MarkReady(context.Background(), "SDH0003")
	checkErrCode(t, err, constant.ErrInvalidOrderStatus)

	// a failing broker never fails the transition
	if len(pub.events) != 1 || pub.events[0].PickupOTP != stored.PickupOTP {
		t.Fatalf("events = %+v", pub.events)
	}
}

func TestOrderApp_CleanupCompleted(t *testing.T) {
	orderRepo := ordermocks.NewOrderRepository(t)
	wantCutoff := testNow.Add(-48 * time.Hour)

	orderRepo.On("DeleteCompletedBefore", mock.Anything, wantCutoff).Return(int64(2), nil).Once()
	orderRepo.On("DeleteCompletedBefore", mock.Anything, wantCutoff).Return(int64(0), nil).Once()

	app := newTestApp(txmocks.NewTxRepository(t), orderRepo, nil)

	res, err := app.CleanupCompleted(context.Background())
	if err != nil {
		t.Fatalf("CleanupCompleted() error = %v", err)
	}
	if res.DeletedCount != 2 || !res.Cutoff.Equal(wantCutoff) {
		t.Fatalf("CleanupCompleted() = %+v", res)
	}

	res, err = app.CleanupCompleted(context.Background())
	if err != nil || res.DeletedCount != 0 {
		t.Fatalf("second run = %+v, %v", res, err)
	}
}

func TestOrderApp_GetOrderStatusHidesPickupOTP(t *testing.T) {
	orderRepo := ordermocks.NewOrderRepository(t)
	orderRepo.On("GetByOrderID", mock.Anything, "SDH0009").
		Return(&model.Order{OrderID: "SDH0009", Status: constant.OrderStatusReady, PickupOTP: "123456"}, nil).
		Once()

	app := newTestApp(txmocks.NewTxRepository(t), orderRepo, nil)
	view, err := app.GetOrderStatus(context.Background(), "SDH0009")
	if err != nil {
		t.Fatalf("GetOrderStatus() error = %v", err)
	}
	if view.Status != constant.OrderStatusReady || view.OrderID != "SDH0009" {
		t.Fatalf("GetOrderStatus() = %+v", view)
	}
}
