package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"storeadmin/internal/config"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
	"storeadmin/internal/repositories/cache"
	"storeadmin/internal/utils"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var categoryNames = []string{"Apparel", "Accessories", "Home", "Beauty"}

var productNames = []string{
	"Linen Shirt", "Canvas Tote", "Wool Scarf", "Ceramic Mug", "Soy Candle",
	"Leather Belt", "Denim Jacket", "Face Serum", "Throw Blanket", "Silk Scrunchie",
}

var statuses = []string{
	models.OrderStatusPending,
	models.OrderStatusProcessing,
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
	models.OrderStatusDelivered,
	models.OrderStatusCancelled,
}

func main() {
	users := flag.Int("users", 25, "number of customers to create")
	orders := flag.Int("orders", 120, "number of orders to create")
	days := flag.Int("days", 60, "spread orders over this many past days")
	flag.Parse()

	cfg := config.Load()
	utils.InitLogger(cfg.IsProduction())

	db, err := repositories.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("[seed] database unavailable")
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	var existing int64
	if err := db.Model(&models.User{}).Count(&existing).Error; err != nil {
		log.Fatal().Err(err).Msg("[seed] failed to count users")
	}
	if existing > 0 {
		log.Info().Int64("users", existing).Msg("[seed] store already has data, nothing to do")
		return
	}

	rng := rand.New(rand.NewPCG(42, 1024))
	err = db.Transaction(func(tx *gorm.DB) error {
		return seed(tx, rng, *users, *orders, *days)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("[seed] failed")
	}

	// Drop query results computed against the empty store.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if client, err := cache.NewRedisClient(ctx, cfg.RedisURL); err == nil {
		store := cache.NewCacheService(client, cfg.CacheTTL)
		if err := store.FlushQueries(ctx); err != nil {
			log.Warn().Err(err).Msg("[seed] failed to flush query cache")
		}
		store.Close()
	} else {
		log.Warn().Err(err).Msg("[seed] redis unavailable, query cache not flushed")
	}

	log.Info().Int("users", *users).Int("orders", *orders).Msg("[seed] demo data created")
}

func seed(tx *gorm.DB, rng *rand.Rand, userCount, orderCount, days int) error {
	categories := make([]models.Category, len(categoryNames))
	for i, name := range categoryNames {
		categories[i] = models.Category{Name: name}
	}
	if err := tx.Create(&categories).Error; err != nil {
		return fmt.Errorf("categories: %w", err)
	}

	products := make([]models.Product, len(productNames))
	for i, name := range productNames {
		categoryID := categories[i%len(categories)].ID
		products[i] = models.Product{
			Name:       name,
			CategoryID: &categoryID,
			Price:      decimal.New(int64(900+rng.IntN(9000)), -2),
			Featured:   i%4 == 0,
			IsNew:      i%3 == 0,
		}
	}
	if err := tx.Create(&products).Error; err != nil {
		return fmt.Errorf("products: %w", err)
	}

	var variants []models.ProductVariant
	for i, p := range products {
		for _, size := range []string{"S", "M", "L"} {
			variants = append(variants, models.ProductVariant{
				ProductID:     p.ID,
				SKU:           fmt.Sprintf("SKU-%02d-%s", i+1, size),
				StockQuantity: rng.IntN(40),
			})
		}
	}
	if err := tx.Create(&variants).Error; err != nil {
		return fmt.Errorf("variants: %w", err)
	}

	now := time.Now()
	users := make([]models.User, userCount)
	for i := range users {
		users[i] = models.User{
			Email:     fmt.Sprintf("customer%02d@example.com", i+1),
			FullName:  fmt.Sprintf("Customer %02d", i+1),
			CreatedAt: now.Add(-time.Duration(rng.IntN(days*24)) * time.Hour),
		}
	}
	if err := tx.Create(&users).Error; err != nil {
		return fmt.Errorf("users: %w", err)
	}

	for i := 0; i < orderCount; i++ {
		createdAt := now.Add(-time.Duration(rng.IntN(days*24*60)) * time.Minute)
		order := models.Order{
			UserID:    users[rng.IntN(len(users))].ID,
			Status:    statuses[rng.IntN(len(statuses))],
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}

		total := decimal.Zero
		for n := 1 + rng.IntN(3); n > 0; n-- {
			p := products[rng.IntN(len(products))]
			qty := 1 + rng.IntN(3)
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    qty,
				UnitPrice:   p.Price,
			})
			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
		}
		order.Total = total

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("order %d: %w", i+1, err)
		}
	}
	return nil
}
