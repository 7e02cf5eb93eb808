package credentials

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_GetAndUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCredentialsRepository(sqlx.NewDb(db, "sqlmock"))
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(getCredentialsQuery)).
		WithArgs(singletonID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key_id", "key_secret_sealed", "environment", "is_active", "created_at", "updated_at"}))
	mock.ExpectExec(regexp.QuoteMeta(upsertCredentialsQuery)).
		WithArgs(singletonID, "rzp_live_key", "c2VhbGVk", "live", true).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(getCredentialsQuery)).
		WithArgs(singletonID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key_id", "key_secret_sealed", "environment", "is_active", "created_at", "updated_at"}).
			AddRow(1, "rzp_live_key", "c2VhbGVk", "live", true, now, now))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Upsert(ctx, &model.PaymentCredentialsEntity{
		KeyID:           "rzp_live_key",
		KeySecretSealed: "c2VhbGVk",
		Environment:     constant.PaymentEnvironmentLive,
		IsActive:        true,
	}))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "rzp_live_key", got.KeyID)
	assert.Equal(t, constant.PaymentEnvironmentLive, got.Environment)

	assert.NoError(t, mock.ExpectationsWereMet())
}
