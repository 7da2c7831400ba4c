package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "storeadmin/internal/errors"
	"storeadmin/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLSTATE codes the store raises for a status it will not accept.
const (
	pgCheckViolation            = "23514"
	pgInvalidTextRepresentation = "22P02"
)

type OrderRepository interface {
	Count(ctx context.Context) (int64, error)
	SumTotalByStatus(ctx context.Context, status string) (decimal.Decimal, error)
	ListPointsBetween(ctx context.Context, from, to time.Time) ([]models.OrderPoint, error)
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}

// SumTotalByStatus sums order totals for one status; no matching rows yields zero.
func (r *orderRepository) SumTotalByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(total), 0)").
		Row().Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// ListPointsBetween returns total and created_at of orders created in [from, to],
// oldest first.
func (r *orderRepository) ListPointsBetween(ctx context.Context, from, to time.Time) ([]models.OrderPoint, error) {
	var points []models.OrderPoint
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("total, created_at").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at ASC").
		Scan(&points).Error
	return points, err
}

func (r *orderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []models.Order
	err := query.
		Preload("User").
		Preload("Items").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus changes the status of exactly one order and returns the updated record.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	var updated models.Order
	res := r.db.WithContext(ctx).Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, classifyUpdateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrOrderNotFound
	}
	return r.GetByID(ctx, id)
}

func classifyUpdateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolation, pgInvalidTextRepresentation:
			return fmt.Errorf("%w: %s", apperrors.ErrStatusRejected, pgErr.Message)
		}
	}
	return fmt.Errorf("failed to update order status: %w", err)
}
