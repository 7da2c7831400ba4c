package repositories

import (
	"context"

	"storeadmin/internal/models"

	"gorm.io/gorm"
)

type CatalogRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountFeaturedProducts(ctx context.Context) (int64, error)
	CountNewProducts(ctx context.Context) (int64, error)
	CountLowStockVariants(ctx context.Context, threshold int) (int64, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (r *catalogRepository) CountFeaturedProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("featured = ?", true).Count(&count).Error
	return count, err
}

func (r *catalogRepository) CountNewProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("is_new = ?", true).Count(&count).Error
	return count, err
}

// CountLowStockVariants counts variants whose stock is at or below threshold, zero included.
func (r *catalogRepository) CountLowStockVariants(ctx context.Context, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProductVariant{}).
		Where("stock_quantity <= ?", threshold).
		Count(&count).Error
	return count, err
}
