// Package catalog defines the product catalog collaborator contract. The
// core stores product and variant IDs opaquely; the catalog is consulted only
// for existence and purchasability when validating line items.
package catalog

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

//go:generate moq -rm -out catalog_mocks.go . Catalog

// Product ...
type Product struct {
	ID          int64
	Name        string
	SKU         string
	Price       decimal.Decimal
	Purchasable bool

	// VariantAttributes maps an attribute name (e.g. "color") to its
	// available values.
	VariantAttributes map[string][]string
}

// NullProduct ...
type NullProduct struct {
	Valid   bool
	Product Product
}

// Catalog ...
type Catalog interface {
	Get(ctx context.Context, productID int64) (NullProduct, error)
	IsPurchasable(ctx context.Context, productID int64) (bool, error)
}

// Memory is an in-process Catalog used by tests and the seed command.
type Memory struct {
	mu       sync.RWMutex
	products map[int64]Product
}

var _ Catalog = &Memory{}

// NewMemory ...
func NewMemory() *Memory {
	return &Memory{
		products: map[int64]Product{},
	}
}

// Put ...
func (m *Memory) Put(product Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
}

// Get ...
func (m *Memory) Get(_ context.Context, productID int64) (NullProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	product, ok := m.products[productID]
	if !ok {
		return NullProduct{}, nil
	}
	return NullProduct{Valid: true, Product: product}, nil
}

// IsPurchasable ...
func (m *Memory) IsPurchasable(ctx context.Context, productID int64) (bool, error) {
	nullProduct, err := m.Get(ctx, productID)
	if err != nil {
		return false, err
	}
	return nullProduct.Valid && nullProduct.Product.Purchasable, nil
}
