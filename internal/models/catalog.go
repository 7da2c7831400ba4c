package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level at or below which a variant counts as low stock.
const LowStockThreshold = 5

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"not null;uniqueIndex" json:"name"`
}

type Product struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string          `gorm:"not null" json:"name"`
	CategoryID *uuid.UUID      `gorm:"type:uuid" json:"category_id,omitempty"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	Featured   bool            `gorm:"not null;default:false" json:"featured"`
	IsNew      bool            `gorm:"not null;default:false" json:"is_new"`
	CreatedAt  time.Time       `json:"created_at"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

type ProductVariant struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	SKU           string    `gorm:"not null;uniqueIndex" json:"sku"`
	StockQuantity int       `gorm:"not null;default:0" json:"stock_quantity"`
}
