package admin

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AdminRepository interface {
	Create(ctx context.Context, req *model.AdminEntity) (*model.AdminEntity, error)
	Get(ctx context.Context, filter *model.AdminFilter) (*model.AdminEntity, error)
}

func NewAdminRepository(conn *sqlx.DB) AdminRepository {
	return &SQL{conn: conn}
}

const (
	insertAdminQuery = `INSERT INTO admin (name, email, password_hash, created_at) VALUES (?, ?, ?, NOW())`
	getAdminBase     = `SELECT id, name, email, password_hash, created_at, updated_at FROM admin WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.AdminEntity) (*model.AdminEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertAdminQuery, data.Name, data.Email, data.PasswordHash)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.AdminFilter) (*model.AdminEntity, error) {
	query := getAdminBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.AdminEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
