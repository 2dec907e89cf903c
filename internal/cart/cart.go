// Package cart implements the session-scoped shopping cart. A cart
// belongs to a single user session and is mutated only by that session,
// so it carries no locking of its own.
package cart

import (
	"github.com/shopspring/decimal"

	"harmony-store/internal/models"
)

// Line is one cart entry. Quantity is always positive; a line whose
// quantity would drop to zero is removed instead.
type Line struct {
	Product  models.Product
	Quantity int
}

// Subtotal is unit price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered set of lines, unique by product id.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts qty units of the product in the cart, incrementing the
// existing line if the product is already present. Omitted or
// non-positive qty means one unit. Stock is not checked here; the
// catalog is the authority on availability.
func (c *Cart) Add(product models.Product, qty ...int) {
	n := 1
	if len(qty) > 0 && qty[0] > 0 {
		n = qty[0]
	}

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += n
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: n})
}

// SetQuantity replaces the quantity of an existing line. A quantity of
// zero or less removes the line. Unknown product ids are ignored.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Remove drops the line for the given product id, if present.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Totals returns the number of units across all lines and the price sum.
func (c *Cart) Totals() (itemCount int, priceSum decimal.Decimal) {
	priceSum = decimal.Zero
	for _, line := range c.lines {
		itemCount += line.Quantity
		priceSum = priceSum.Add(line.Subtotal())
	}
	return itemCount, priceSum
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []Line {
	return append([]Line(nil), c.lines...)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear empties the cart. Called on successful order submission.
func (c *Cart) Clear() {
	c.lines = nil
}
