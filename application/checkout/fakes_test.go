package checkout_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
)

// clone deep-copies through JSON, the same way the redis repositories persist values.
func clone[T any](v *T) *T {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		panic(err)
	}
	return &out
}

type memCartRepo struct {
	mu    sync.Mutex
	carts map[string]*model.Cart
}

func (r *memCartRepo) Get(_ context.Context, cartID string) (*model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[cartID]
	if !ok {
		return nil, nil
	}
	return clone(c), nil
}

func (r *memCartRepo) Save(_ context.Context, cart *model.Cart, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.ID] = clone(cart)
	return nil
}

func (r *memCartRepo) Update(_ context.Context, cartID string, _ time.Duration, fn func(cart *model.Cart, exists bool) error) (*model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := &model.Cart{ID: cartID}
	stored, ok := r.carts[cartID]
	if ok {
		c = clone(stored)
	}
	if err := fn(c, ok); err != nil {
		return nil, err
	}
	r.carts[cartID] = clone(c)
	return c, nil
}

func (r *memCartRepo) Delete(_ context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}

type memCheckoutRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.CheckoutSession
}

func (r *memCheckoutRepo) Create(_ context.Context, session *model.CheckoutSession, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = clone(session)
	return nil
}

func (r *memCheckoutRepo) Get(_ context.Context, sessionID string) (*model.CheckoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return clone(s), nil
}

func (r *memCheckoutRepo) Update(_ context.Context, sessionID string, _ time.Duration, fn func(session *model.CheckoutSession, exists bool) error) (*model.CheckoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &model.CheckoutSession{ID: sessionID}
	stored, ok := r.sessions[sessionID]
	if ok {
		s = clone(stored)
	}
	if err := fn(s, ok); err != nil {
		return nil, err
	}
	r.sessions[sessionID] = clone(s)
	return s, nil
}

// only returns the single stored session.
func (r *memCheckoutRepo) only() *model.CheckoutSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		return clone(s)
	}
	return nil
}

type memOTPRepo struct {
	mu      sync.Mutex
	records map[string]model.OTPRecord
}

func (r *memOTPRepo) Replace(_ context.Context, rec *model.OTPRecord, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.Email] = *rec
	return nil
}

func (r *memOTPRepo) Get(_ context.Context, email string) (*model.OTPRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[email]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *memOTPRepo) Delete(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[email]
	delete(r.records, email)
	return ok, nil
}

type memOrderRepo struct {
	mu         sync.Mutex
	seq        uint64
	orders     map[string]*model.Order
	failInsert bool
}

func (r *memOrderRepo) NextSequenceTx(context.Context, *sqlx.Tx) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

func (r *memOrderRepo) InsertOrderTx(_ context.Context, _ *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failInsert {
		return 0, errors.New("connection reset by peer")
	}
	id := uint64(len(r.orders) + 1)
	now := time.Now()
	r.orders[req.OrderID] = &model.Order{
		ID:           id,
		OrderID:      req.OrderID,
		TotalAmount:  req.TotalAmount,
		CustomerInfo: req.CustomerInfo,
		PaymentID:    req.PaymentID,
		PickupOTP:    req.PickupOTP,
		Status:       req.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id, nil
}

func (r *memOrderRepo) InsertOrderItemsTx(_ context.Context, _ *sqlx.Tx, id uint64, items []model.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			o.Items = append([]model.LineItem(nil), items...)
		}
	}
	return nil
}

func (r *memOrderRepo) GetOrderForUpdateTx(ctx context.Context, _ *sqlx.Tx, orderID string) (*model.Order, error) {
	return r.GetByOrderID(ctx, orderID)
}

func (r *memOrderRepo) UpdateOrderStatusTx(_ context.Context, _ *sqlx.Tx, req *model.OrderStatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == req.ID {
			o.Status = req.Status
			o.ReadyAt = req.ReadyAt
			o.CompletedAt = req.CompletedAt
			o.ForceCompleteReason = req.ForceCompleteReason
		}
	}
	return nil
}

func (r *memOrderRepo) GetByOrderID(_ context.Context, orderID string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) List(_ context.Context, filter *model.OrderFilter) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Order{}
	for _, o := range r.orders {
		if filter != nil && filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memOrderRepo) Delete(_ context.Context, orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.orders[orderID]
	delete(r.orders, orderID)
	return ok, nil
}

func (r *memOrderRepo) DeleteCompletedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, o := range r.orders {
		if o.Status == constant.OrderStatusCompleted && o.CompletedAt != nil && o.CompletedAt.Before(cutoff) {
			delete(r.orders, id)
			n++
		}
	}
	return n, nil
}

type nopTx struct{}

func (nopTx) BeginTx(context.Context) (*sqlx.Tx, error) { return &sqlx.Tx{}, nil }
func (nopTx) CommitTx(*sqlx.Tx) error                   { return nil }
func (nopTx) RollbackTx(*sqlx.Tx) error                 { return nil }

type fakeMailer struct {
	mu      sync.Mutex
	sent    []string
	sendErr error
}

func (m *fakeMailer) Check(context.Context) error { return nil }

func (m *fakeMailer) Send(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, to)
	return nil
}

type fakeSettings struct {
	creds *model.PaymentCredentials
}

func (f *fakeSettings) SendOTP(context.Context) (*model.SendOTPResponse, error) { return nil, nil }

func (f *fakeSettings) VerifyOTP(context.Context, string) (*model.PaymentSettingsUnlockResponse, error) {
	return nil, nil
}

func (f *fakeSettings) Lock(context.Context) error { return nil }

func (f *fakeSettings) GetCredentials(context.Context) (*model.PaymentCredentialsView, error) {
	return nil, nil
}

func (f *fakeSettings) SaveCredentials(context.Context, *model.SavePaymentCredentialsRequest) (*model.PaymentCredentialsView, error) {
	return nil, nil
}

func (f *fakeSettings) ActiveCredentials(context.Context) (*model.PaymentCredentials, error) {
	return f.creds, nil
}

func (f *fakeSettings) PublicConfig(context.Context) (*model.PaymentConfigResponse, error) {
	return nil, nil
}

// fakeGateway accepts signatures of the form sig_<payment id> and numbers the gateway
// orders it creates. onCreate runs once, after the next order is created.
type fakeGateway struct {
	mu       sync.Mutex
	created  []int64
	onCreate func()
}

func (g *fakeGateway) CreateOrder(_ context.Context, _ *model.PaymentCredentials, amountMinor int64, _, _ string) (string, error) {
	g.mu.Lock()
	g.created = append(g.created, amountMinor)
	id := fmt.Sprintf("order_rzp_%d", len(g.created))
	hook := g.onCreate
	g.onCreate = nil
	g.mu.Unlock()

	if hook != nil {
		hook()
	}
	return id, nil
}

func (g *fakeGateway) VerifySignature(_ *model.PaymentCredentials, _, paymentID, signature string) bool {
	return signature == "sig_"+paymentID
}
