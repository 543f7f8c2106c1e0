package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	nullProduct, err := mem.Get(ctx, 71)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, nullProduct.Valid)

	mem.Put(Product{
		ID:          71,
		Name:        "Team Jacket",
		SKU:         "TJ-71",
		Price:       decimal.NewFromInt(49),
		Purchasable: true,
	})
	mem.Put(Product{ID: 72, Name: "Retired Cap", Purchasable: false})

	nullProduct, err = mem.Get(ctx, 71)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, nullProduct.Valid)
	assert.Equal(t, "Team Jacket", nullProduct.Product.Name)

	ok, err := mem.IsPurchasable(ctx, 71)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)

	ok, err = mem.IsPurchasable(ctx, 72)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)

	ok, err = mem.IsPurchasable(ctx, 9999)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)
}
