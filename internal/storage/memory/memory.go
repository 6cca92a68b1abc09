// Package memory provides a static, in-process implementation of storage.Store.
package memory

import (
	"context"

	"github.com/amastore/admin/internal/models"
	"github.com/amastore/admin/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store serves fixed demo figures. It is safe for concurrent use because
// nothing is ever written after construction.
type Store struct {
	summary      []models.StatCard
	sales        []models.Sale
	products     []models.Product
	transactions []models.Transaction
}

// New creates a Store holding the storefront's demo figures.
func New() *Store {
	sale := models.Sale{Customer: "Alex Anie", Email: "test@test.com", Amount: "+$1,999.00"}

	return &Store{
		summary: []models.StatCard{
			{Title: "Total Revenue", Value: "$100.00", Caption: "Based on 100 Charges", Accent: "text-green-500"},
			{Title: "Total Sales", Value: "+50", Caption: "Total Sales on Alexstore", Accent: "text-blue-500"},
			{Title: "Total Products", Value: "37", Caption: "Total Product Created", Accent: "text-indigo-500"},
			{Title: "Total Users", Value: "120", Caption: "Total Users Signed Up", Accent: "text-orange-500"},
		},
		sales: []models.Sale{sale, sale, sale, sale},
		products: []models.Product{
			{Name: "Nike Air", Status: "Active", Price: "$299.00", Date: "15/16/2024"},
		},
		transactions: []models.Transaction{
			{Customer: "Alex Anie", Email: "test@test.com", Type: "Sale", Status: "Successfull", Date: "2024-06-15", Amount: "$250.00"},
		},
	}
}

// Summary implements storage.Store.
func (s *Store) Summary(ctx context.Context) ([]models.StatCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.StatCard(nil), s.summary...), nil
}

// RecentSales implements storage.Store.
func (s *Store) RecentSales(ctx context.Context) ([]models.Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Sale(nil), s.sales...), nil
}

// Products implements storage.Store.
func (s *Store) Products(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Product(nil), s.products...), nil
}

// Transactions implements storage.Store.
func (s *Store) Transactions(ctx context.Context) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Transaction(nil), s.transactions...), nil
}
