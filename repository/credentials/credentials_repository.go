package credentials

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-storefront/model"
)

// singletonID pins the table to a single row.
const singletonID = 1

type SQL struct {
	conn *sqlx.DB
}

type CredentialsRepository interface {
	// Get returns nil when nothing has been stored yet.
	Get(ctx context.Context) (*model.PaymentCredentialsEntity, error)
	Upsert(ctx context.Context, e *model.PaymentCredentialsEntity) error
}

func NewCredentialsRepository(conn *sqlx.DB) CredentialsRepository {
	return &SQL{conn: conn}
}

const (
	getCredentialsQuery = `SELECT id, key_id, key_secret_sealed, environment, is_active, created_at, updated_at
FROM payment_credentials WHERE id = ?`
	upsertCredentialsQuery = `INSERT INTO payment_credentials (id, key_id, key_secret_sealed, environment, is_active, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, NOW(), NOW())
ON DUPLICATE KEY UPDATE key_id = VALUES(key_id), key_secret_sealed = VALUES(key_secret_sealed),
environment = VALUES(environment), is_active = VALUES(is_active), updated_at = NOW()`
)

func (s *SQL) Get(ctx context.Context) (*model.PaymentCredentialsEntity, error) {
	var e model.PaymentCredentialsEntity
	if err := s.conn.QueryRowxContext(ctx, getCredentialsQuery, singletonID).StructScan(&e); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (s *SQL) Upsert(ctx context.Context, e *model.PaymentCredentialsEntity) error {
	_, err := s.conn.ExecContext(ctx, upsertCredentialsQuery, singletonID, e.KeyID, e.KeySecretSealed, e.Environment, e.IsActive)
	return err
}
