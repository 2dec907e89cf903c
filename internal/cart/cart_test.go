package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmony-store/internal/models"
)

func product(id string, price int64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Category: "Guitars",
		Price:    decimal.NewFromInt(price),
		Stock:    10,
	}
}

func TestCart_Add_NewLine(t *testing.T) {
	c := New()
	c.Add(product("a", 100))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Product.ID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCart_Add_IncrementsExistingLine(t *testing.T) {
	c := New()
	c.Add(product("a", 100))
	c.Add(product("a", 100), 2)

	items := c.Items()
	require.Len(t, items, 1, "adding an existing product must not duplicate the line")
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCart_Add_DefaultQuantityIsOne(t *testing.T) {
	c := New()
	c.Add(product("a", 100), 0)
	c.Add(product("b", 50), -3)

	for _, line := range c.Items() {
		assert.Equal(t, 1, line.Quantity)
	}
}

func TestCart_SetQuantity(t *testing.T) {
	c := New()
	c.Add(product("a", 100), 2)

	c.SetQuantity("a", 5)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCart_SetQuantity_ZeroRemovesLine(t *testing.T) {
	c := New()
	c.Add(product("a", 100), 2)
	c.Add(product("b", 50))

	c.SetQuantity("a", 0)
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Product.ID)

	c.SetQuantity("b", -1)
	assert.True(t, c.IsEmpty())
}

func TestCart_SetQuantity_UnknownProductIsIgnored(t *testing.T) {
	c := New()
	c.Add(product("a", 100))

	c.SetQuantity("missing", 3)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	c := New()
	c.Add(product("a", 100))
	c.Add(product("b", 50))

	c.Remove("a")
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Product.ID)
}

func TestCart_Totals(t *testing.T) {
	c := New()
	c.Add(product("a", 100), 2)
	c.Add(product("b", 50))

	count, sum := c.Totals()
	assert.Equal(t, 3, count)
	assert.True(t, sum.Equal(decimal.NewFromInt(250)), "expected 250, got %s", sum)
}

func TestCart_Totals_Empty(t *testing.T) {
	c := New()

	count, sum := c.Totals()
	assert.Equal(t, 0, count)
	assert.True(t, sum.IsZero())
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(product("a", 100), 2)

	c.Clear()
	assert.True(t, c.IsEmpty())

	count, sum := c.Totals()
	assert.Equal(t, 0, count)
	assert.True(t, sum.IsZero())
}
