package repositories

import (
	"context"
	"testing"

	"storeadmin/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_Counts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE featured = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE is_new = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "product_variants" WHERE stock_quantity <= \$1`).
		WithArgs(models.LowStockThreshold).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	products, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	featured, err := repo.CountFeaturedProducts(ctx)
	require.NoError(t, err)
	fresh, err := repo.CountNewProducts(ctx)
	require.NoError(t, err)
	lowStock, err := repo.CountLowStockVariants(ctx, models.LowStockThreshold)
	require.NoError(t, err)

	assert.Equal(t, int64(12), products)
	assert.Equal(t, int64(3), featured)
	assert.Equal(t, int64(4), fresh)
	assert.Equal(t, int64(2), lowStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := NewUserRepository(db).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
