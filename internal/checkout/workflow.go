// Package checkout drives the order workflow: collect shipping details,
// review the cart, submit. Submission persists the order through an
// injected OrderStore and clears the cart only after the store accepts
// it.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"harmony-store/internal/cart"
	"harmony-store/internal/models"
	"harmony-store/internal/repository"
)

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to check out")
	ErrIllegalTransition = errors.New("illegal checkout state transition")
)

// FieldError names a shipping field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError collects one FieldError per invalid shipping field.
// It is recoverable: the caller corrects the draft and retries.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return "invalid shipping details: " + strings.Join(parts, ", ")
}

// Snapshot is the read-only view shown on the review step.
type Snapshot struct {
	Items    []models.OrderItem
	Total    decimal.Decimal
	Shipping models.ShippingDetails
}

// Workflow is the order state machine. It is bound to one cart and one
// user for its whole lifetime and, like the cart, is confined to a
// single session.
type Workflow struct {
	status   Status
	cart     *cart.Cart
	userID   string
	shipping models.ShippingDetails
	orders   repository.OrderStore
	order    *models.Order
	validate *validator.Validate
}

// Begin starts a workflow in CollectingShipping. An empty cart is
// refused: there is nothing to check out.
func Begin(c *cart.Cart, userID string, orders repository.OrderStore) (*Workflow, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	return &Workflow{
		status:   StatusCollectingShipping,
		cart:     c,
		userID:   userID,
		orders:   orders,
		validate: validator.New(),
	}, nil
}

func (w *Workflow) Status() Status {
	return w.status
}

// SetShipping updates the shipping draft. Only legal while collecting.
func (w *Workflow) SetShipping(details models.ShippingDetails) error {
	if w.status != StatusCollectingShipping {
		return ErrIllegalTransition
	}
	w.shipping = details
	return nil
}

// Validate checks the shipping draft and returns one error per empty
// field, or nil when the draft is complete.
func (w *Workflow) Validate() *ValidationError {
	trimmed := models.ShippingDetails{
		Address: strings.TrimSpace(w.shipping.Address),
		City:    strings.TrimSpace(w.shipping.City),
		Zip:     strings.TrimSpace(w.shipping.Zip),
		Phone:   strings.TrimSpace(w.shipping.Phone),
	}

	err := w.validate.Struct(trimmed)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []FieldError{{Field: "shipping", Message: err.Error()}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: "required",
		})
	}
	return &ValidationError{Fields: fields}
}

// ContinueToReview moves to Reviewing if the shipping draft validates.
// On validation failure the workflow stays in CollectingShipping and the
// returned error lists every missing field.
func (w *Workflow) ContinueToReview() error {
	if !w.status.canTransitionTo(StatusReviewing) {
		return ErrIllegalTransition
	}
	if verr := w.Validate(); verr != nil {
		return verr
	}
	w.status = StatusReviewing
	return nil
}

// Back returns from Reviewing to CollectingShipping.
func (w *Workflow) Back() error {
	if w.status != StatusReviewing || !w.status.canTransitionTo(StatusCollectingShipping) {
		return ErrIllegalTransition
	}
	w.status = StatusCollectingShipping
	return nil
}

// Snapshot returns the review view: cart lines as order items, the
// computed total and the shipping draft. Only available while reviewing.
func (w *Workflow) Snapshot() (Snapshot, error) {
	if w.status != StatusReviewing {
		return Snapshot{}, ErrIllegalTransition
	}
	_, total := w.cart.Totals()
	return Snapshot{
		Items:    w.orderItems(),
		Total:    total,
		Shipping: w.shipping,
	}, nil
}

// Submit creates the order from the current cart and shipping draft,
// persists it and clears the cart. If persistence fails the workflow
// stays in Reviewing and the cart is untouched, so the submission can be
// retried.
func (w *Workflow) Submit(ctx context.Context) (*models.Order, error) {
	if !w.status.canTransitionTo(StatusConfirmed) {
		return nil, ErrIllegalTransition
	}
	if w.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	_, total := w.cart.Totals()
	order := models.NewOrder(w.userID, w.orderItems(), total, w.shipping)

	if err := w.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	w.cart.Clear()
	w.order = order
	w.status = StatusConfirmed
	return order, nil
}

// OrderID returns the identifier of the created order for display.
// Only available once confirmed.
func (w *Workflow) OrderID() (string, error) {
	if w.status != StatusConfirmed || w.order == nil {
		return "", ErrIllegalTransition
	}
	return w.order.OrderID, nil
}

func (w *Workflow) orderItems() []models.OrderItem {
	lines := w.cart.Items()
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}
	return items
}
