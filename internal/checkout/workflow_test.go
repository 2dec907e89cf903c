package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmony-store/internal/cart"
	"harmony-store/internal/models"
	"harmony-store/internal/repository"
)

// failingOrderStore rejects every write, standing in for a broken
// backend during Submit.
type failingOrderStore struct{}

func (failingOrderStore) Create(ctx context.Context, order *models.Order) error {
	return errors.New("connection refused")
}

func (failingOrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return nil, nil
}

func validShipping() models.ShippingDetails {
	return models.ShippingDetails{
		Address: "12 Harmony Lane",
		City:    "Portland",
		Zip:     "97201",
		Phone:   "555-0134",
	}
}

func setupCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	c.Add(models.Product{ID: "a", Name: "Product A", Price: decimal.NewFromInt(100)}, 2)
	c.Add(models.Product{ID: "b", Name: "Product B", Price: decimal.NewFromInt(50)})
	return c
}

func TestBegin_EmptyCartRefused(t *testing.T) {
	_, err := Begin(cart.New(), "user-1", repository.NewMemoryOrders())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBegin_StartsCollectingShipping(t *testing.T) {
	w, err := Begin(setupCart(t), "user-1", repository.NewMemoryOrders())
	require.NoError(t, err)
	assert.Equal(t, StatusCollectingShipping, w.Status())
}

func TestContinueToReview_ReportsOneErrorPerEmptyField(t *testing.T) {
	w, err := Begin(setupCart(t), "user-1", repository.NewMemoryOrders())
	require.NoError(t, err)

	require.NoError(t, w.SetShipping(models.ShippingDetails{}))

	err = w.ContinueToReview()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
	assert.Equal(t, StatusCollectingShipping, w.Status(), "validation failure must not transition")
}

func TestContinueToReview_PartialShipping(t *testing.T) {
	w, err := Begin(setupCart(t), "user-1", repository.NewMemoryOrders())
	require.NoError(t, err)

	details := validShipping()
	details.Phone = "   " // whitespace only counts as empty
	require.NoError(t, w.SetShipping(details))

	err = w.ContinueToReview()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "phone", verr.Fields[0].Field)
	assert.Equal(t, StatusCollectingShipping, w.Status())
}

func TestContinueToReview_ValidShipping(t *testing.T) {
	w, err := Begin(setupCart(t), "user-1", repository.NewMemoryOrders())
	require.NoError(t, err)

	require.NoError(t, w.SetShipping(validShipping()))
	require.NoError(t, w.ContinueToReview())
	assert.Equal(t, StatusReviewing, w.Status())
}

func TestSnapshot_OnlyWhileReviewing(t *testing.T) {
	w, err := Begin(setupCart(t), "user-1", repository.NewMemoryOrders())
	require.NoError(t, err)

	_, err = w.Snapshot()
	assert.ErrorIs(t, err, ErrIllegalTransition)

	require.NoError(t, w.SetShipping(validShipping()))
	require.NoError(t, w.ContinueToReview())

	snap, err := w.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Items, 2)
	assert.True(t, snap.Total.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, validShipping(), snap.Shipping)
}

func TestBack_ReturnsToCollectingShipping(t *testing.T) {
	w, err := Begin(setupCart(t), "user-1", repository.NewMemoryOrders())
	require.NoError(t, err)

	assert.ErrorIs(t, w.Back(), ErrIllegalTransition)

	require.NoError(t, w.SetShipping(validShipping()))
	require.NoError(t, w.ContinueToReview())
	require.NoError(t, w.Back())
	assert.Equal(t, StatusCollectingShipping, w.Status())
}

func TestSubmit_Success(t *testing.T) {
	c := setupCart(t)
	orders := repository.NewMemoryOrders()

	w, err := Begin(c, "user-1", orders)
	require.NoError(t, err)
	require.NoError(t, w.SetShipping(validShipping()))
	require.NoError(t, w.ContinueToReview())

	_, preTotal := c.Totals()

	order, err := w.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, w.Status())
	assert.True(t, order.Total.Equal(preTotal), "order total must equal the pre-submission cart total")
	assert.Equal(t, "user-1", order.UserID)
	assert.Len(t, order.Items, 2)
	assert.True(t, c.IsEmpty(), "cart must be cleared on success")

	id, err := w.OrderID()
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, id)

	persisted, err := orders.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, order.OrderID, persisted[0].OrderID)
}

func TestSubmit_PersistenceFailureKeepsReviewing(t *testing.T) {
	c := setupCart(t)

	w, err := Begin(c, "user-1", failingOrderStore{})
	require.NoError(t, err)
	require.NoError(t, w.SetShipping(validShipping()))
	require.NoError(t, w.ContinueToReview())

	_, err = w.Submit(context.Background())
	require.Error(t, err)

	assert.Equal(t, StatusReviewing, w.Status(), "failed persistence must not advance to Confirmed")
	assert.False(t, c.IsEmpty(), "cart must not be cleared unless persistence succeeds")

	count, total := c.Totals()
	assert.Equal(t, 3, count)
	assert.True(t, total.Equal(decimal.NewFromInt(250)))
}

func TestSubmit_BeforeReviewingIsIllegal(t *testing.T) {
	w, err := Begin(setupCart(t), "user-1", repository.NewMemoryOrders())
	require.NoError(t, err)

	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestConfirmed_IsTerminal(t *testing.T) {
	w, err := Begin(setupCart(t), "user-1", repository.NewMemoryOrders())
	require.NoError(t, err)
	require.NoError(t, w.SetShipping(validShipping()))
	require.NoError(t, w.ContinueToReview())

	_, err = w.Submit(context.Background())
	require.NoError(t, err)

	assert.True(t, w.Status().IsTerminal())
	assert.ErrorIs(t, w.SetShipping(validShipping()), ErrIllegalTransition)
	assert.ErrorIs(t, w.ContinueToReview(), ErrIllegalTransition)
	assert.ErrorIs(t, w.Back(), ErrIllegalTransition)

	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIllegalTransition)
}
