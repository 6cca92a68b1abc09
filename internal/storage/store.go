// Package storage provides read access to the figures shown on dashboard pages.
package storage

import (
	"context"

	"github.com/amastore/admin/internal/models"
)

// Store defines the read operations the dashboard pages need.
// This abstraction keeps handlers independent of where the figures come from.
type Store interface {
	// Summary returns the overview tiles in display order.
	Summary(ctx context.Context) ([]models.StatCard, error)

	// RecentSales returns the most recent sales, newest first.
	RecentSales(ctx context.Context) ([]models.Sale, error)

	// Products returns the product catalog rows.
	Products(ctx context.Context) ([]models.Product, error)

	// Transactions returns recent orders.
	Transactions(ctx context.Context) ([]models.Transaction, error)
}
