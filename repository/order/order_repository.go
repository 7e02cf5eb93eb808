package order

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	"github.com/shopspring/decimal"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	NextSequenceTx(ctx context.Context, tx *sqlx.Tx) (uint64, error)
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, id uint64, items []model.LineItem) error
	GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.Order, error)
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, req *model.OrderStatusUpdate) error
	GetByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, error)
	Delete(ctx context.Context, orderID string) (bool, error)
	DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = "id, order_id, total_amount, customer_name, customer_email, vehicle_number, instructions, " +
		"payment_id, pickup_otp, status, ready_at, completed_at, force_complete_reason, created_at, updated_at"

	nextSequenceQuery = "INSERT INTO order_sequence () VALUES ()"
	insertOrderQuery  = "INSERT INTO `order` (order_id, total_amount, customer_name, customer_email, vehicle_number, instructions, " +
		"payment_id, pickup_otp, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())"
	insertOrderItemQuery = "INSERT INTO order_item (order_id, position, line_id, kind, product_id, name, base_price, " +
		"quantity, weight, price, mode, total_price) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	selectOrderForUpdate = "SELECT " + orderColumns + " FROM `order` WHERE order_id = ? FOR UPDATE"
	updateOrderStatus    = "UPDATE `order` SET status = ?, ready_at = ?, completed_at = ?, force_complete_reason = ?, " +
		"updated_at = NOW() WHERE id = ?"
	selectOrderBase  = "SELECT " + orderColumns + " FROM `order` WHERE true"
	selectOrderItems = "SELECT order_id, line_id, kind, product_id, name, base_price, quantity, weight, price, mode, " +
		"total_price FROM order_item WHERE order_id IN (?) ORDER BY order_id, position"
	deleteOrderQuery          = "DELETE FROM `order` WHERE order_id = ?"
	deleteCompletedBeforeExec = "DELETE FROM `order` WHERE status = ? AND completed_at < ?"
)

type orderItemRow struct {
	OrderID    uint64              `db:"order_id"`
	LineID     string              `db:"line_id"`
	Kind       constant.LineKind   `db:"kind"`
	ProductID  uint64              `db:"product_id"`
	Name       string              `db:"name"`
	BasePrice  decimal.Decimal     `db:"base_price"`
	Quantity   sql.NullInt64       `db:"quantity"`
	Weight     decimal.NullDecimal `db:"weight"`
	Price      decimal.NullDecimal `db:"price"`
	Mode       sql.NullString      `db:"mode"`
	TotalPrice decimal.Decimal     `db:"total_price"`
}

func (r orderItemRow) toLineItem() model.LineItem {
	item := model.LineItem{
		LineID:     r.LineID,
		Kind:       r.Kind,
		ProductID:  r.ProductID,
		Name:       r.Name,
		BasePrice:  r.BasePrice,
		TotalPrice: r.TotalPrice,
	}
	if r.Kind == constant.LineKindWeight {
		item.Weight = &model.WeightLine{
			Weight: r.Weight.Decimal,
			Price:  r.Price.Decimal,
			Mode:   constant.PricingMode(r.Mode.String),
		}
	} else {
		item.Unit = &model.UnitLine{Quantity: int(r.Quantity.Int64)}
	}
	return item
}

// NextSequenceTx allocates the next order number from an auto-increment table so
// concurrent checkouts never share a number.
func (r *SQL) NextSequenceTx(ctx context.Context, tx *sqlx.Tx) (uint64, error) {
	res, err := tx.ExecContext(ctx, nextSequenceQuery)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderQuery,
		req.OrderID,
		req.TotalAmount,
		req.CustomerInfo.Name,
		req.CustomerInfo.Email,
		req.CustomerInfo.VehicleNumber,
		req.CustomerInfo.Instructions,
		req.PaymentID,
		req.PickupOTP,
		req.Status,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, id uint64, items []model.LineItem) error {
	for i, it := range items {
		var (
			quantity sql.NullInt64
			weight   decimal.NullDecimal
			price    decimal.NullDecimal
			mode     sql.NullString
		)
		if it.Unit != nil {
			quantity = sql.NullInt64{Int64: int64(it.Unit.Quantity), Valid: true}
		}
		if it.Weight != nil {
			weight = decimal.NewNullDecimal(it.Weight.Weight)
			price = decimal.NewNullDecimal(it.Weight.Price)
			mode = sql.NullString{String: string(it.Weight.Mode), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery,
			id, i, it.LineID, it.Kind, it.ProductID, it.Name, it.BasePrice,
			quantity, weight, price, mode, it.TotalPrice,
		); err != nil {
			return err
		}
	}
	return nil
}

// GetOrderForUpdateTx locks the order row for the rest of tx and loads its items.
func (r *SQL) GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.Order, error) {
	var o model.Order
	if err := tx.QueryRowxContext(ctx, selectOrderForUpdate, orderID).StructScan(&o); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	orders := []model.Order{o}
	if err := attachItems(ctx, tx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, req *model.OrderStatusUpdate) error {
	_, err := tx.ExecContext(ctx, updateOrderStatus, req.Status, req.ReadyAt, req.CompletedAt, req.ForceCompleteReason, req.ID)
	return err
}

func (r *SQL) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	var o model.Order
	if err := r.conn.QueryRowxContext(ctx, selectOrderBase+" AND order_id = ?", orderID).StructScan(&o); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	orders := []model.Order{o}
	if err := attachItems(ctx, r.conn, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *SQL) List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, error) {
	query := selectOrderBase
	args := make([]any, 0, 1)
	if filter != nil && filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	query += " ORDER BY created_at DESC, id DESC"

	orders := make([]model.Order, 0)
	if err := r.conn.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, err
	}
	if err := attachItems(ctx, r.conn, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func attachItems(ctx context.Context, q sqlx.ExtContext, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(orders))
	index := make(map[uint64]int, len(orders))
	for i := range orders {
		ids = append(ids, orders[i].ID)
		index[orders[i].ID] = i
		orders[i].Items = make([]model.LineItem, 0)
	}

	query, args, err := sqlx.In(selectOrderItems, ids)
	if err != nil {
		return err
	}
	var rows []orderItemRow
	if err := sqlx.SelectContext(ctx, q, &rows, q.Rebind(query), args...); err != nil {
		return err
	}
	for _, row := range rows {
		i, ok := index[row.OrderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, row.toLineItem())
	}
	return nil
}

// Delete reports false when no order matched.
func (r *SQL) Delete(ctx context.Context, orderID string) (bool, error) {
	res, err := r.conn.ExecContext(ctx, deleteOrderQuery, orderID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.conn.ExecContext(ctx, deleteCompletedBeforeExec, constant.OrderStatusCompleted, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
