package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, error)
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns = `id, name, description, base_price, has_weight_pricing, available, category, image_id,
rating_stars, rating_count, is_bestseller, created_at, updated_at`

	listProductsBase   = `SELECT ` + productColumns + ` FROM product WHERE true`
	getProductByID     = `SELECT ` + productColumns + ` FROM product WHERE id = ?`
	insertProductQuery = `INSERT INTO product (name, description, base_price, has_weight_pricing, available, category, image_id,
rating_stars, rating_count, is_bestseller, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`
	updateProductQuery = `UPDATE product SET name = ?, description = ?, base_price = ?, has_weight_pricing = ?, available = ?,
category = ?, image_id = ?, is_bestseller = ?, updated_at = NOW() WHERE id = ?`
	deleteProductQuery = `DELETE FROM product WHERE id = ?`
)

func (s *SQL) List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, error) {
	query := listProductsBase
	if filter != nil && filter.AvailableOnly {
		query += " AND available = true"
	}
	query += " ORDER BY is_bestseller DESC, name"

	items := make([]model.Product, 0)
	if err := s.conn.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns nil when the product does not exist.
func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	if err := s.conn.QueryRowxContext(ctx, getProductByID, id).StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	result, err := s.conn.ExecContext(ctx, insertProductQuery,
		p.Name, p.Description, p.BasePrice, p.HasWeightPricing, p.Available, p.Category, p.ImageID,
		p.RatingStars, p.RatingCount, p.IsBestseller,
	)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	p.ID = uint64(lastID)
	return p, nil
}

func (s *SQL) Update(ctx context.Context, p *model.Product) error {
	_, err := s.conn.ExecContext(ctx, updateProductQuery,
		p.Name, p.Description, p.BasePrice, p.HasWeightPricing, p.Available, p.Category, p.ImageID, p.IsBestseller, p.ID,
	)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
