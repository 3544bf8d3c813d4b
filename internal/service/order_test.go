package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/furnihome/internal/models"
)

func TestOrders_Quote(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	p := env.product(t, "S-1")

	q, err := env.Orders.Quote(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, q.Shipping.Equal(decimal.NewFromInt(500)))
	assert.True(t, q.Tax.Equal(decimal.NewFromInt(260)))
	assert.True(t, q.Total.Equal(decimal.NewFromInt(2760)))
	assert.Equal(t, "NPR", q.Currency)

	_, err = env.Orders.Quote(ctx, p.ID, 0)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = env.Orders.Quote(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrders_PlaceSnapshotsCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	u := env.user(t, "demo@furnihome.com")
	p := env.product(t, "S-1")

	placedAt := time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)
	env.Orders.Now = func() time.Time { return placedAt }

	o, err := env.Orders.PlaceOrder(ctx, u.ID, CartLine{ProductID: p.ID, Quantity: 2}, shipping)
	require.NoError(t, err)
	assert.Equal(t, "400-1000", o.ID)
	assert.Equal(t, models.OrderStatusProcessing, o.Status)
	assert.True(t, o.Total.Equal(decimal.NewFromInt(2760)), o.Total.String())
	require.NotNil(t, o.EstimatedDelivery)
	assert.Equal(t, placedAt.Add(EstimatedDeliveryAfter), *o.EstimatedDelivery)

	require.Len(t, o.Items, 1)
	item := o.Items[0]
	assert.Equal(t, "Modern Velvet Sofa", item.Name)
	assert.Equal(t, "Emerald Green", item.Color)
	assert.Equal(t, "sofa-1.jpg", item.Image)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(1000)))

	repl := validProduct("S-1")
	repl.Name = "Renamed Sofa"
	repl.Price = decimal.NewFromInt(5000)
	_, err = env.Catalog.ReplaceProduct(ctx, p.ID, repl)
	require.NoError(t, err)

	got, err := env.Orders.GetOrder(ctx, u.ID, o.ID)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(2760)))
	assert.True(t, got.Items[0].Price.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "Modern Velvet Sofa", got.Items[0].Name)

	assert.Contains(t, env.Events.types(), EventOrderPlaced)
}

func TestOrders_PlaceValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	u := env.user(t, "demo@furnihome.com")
	p := env.product(t, "S-1")

	soldOut := validProduct("S-2")
	soldOut.InStock = false
	soldOut, err := env.Catalog.CreateProduct(ctx, soldOut)
	require.NoError(t, err)

	noCity := shipping
	noCity.City = " "

	tests := []struct {
		name     string
		line     CartLine
		shipping models.ShippingInfo
		want     error
	}{
		{"zero quantity", CartLine{ProductID: p.ID, Quantity: 0}, shipping, ErrValidation},
		{"out of stock", CartLine{ProductID: soldOut.ID, Quantity: 1}, shipping, ErrValidation},
		{"unknown color", CartLine{ProductID: p.ID, Quantity: 1, Color: "Purple"}, shipping, ErrValidation},
		{"missing city", CartLine{ProductID: p.ID, Quantity: 1}, noCity, ErrValidation},
		{"missing product", CartLine{ProductID: uuid.New(), Quantity: 1}, shipping, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Orders.PlaceOrder(ctx, u.ID, tt.line, tt.shipping)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	o, err := env.Orders.PlaceOrder(ctx, u.ID, CartLine{ProductID: p.ID, Quantity: 1, Color: "Navy Blue"}, shipping)
	require.NoError(t, err)
	assert.Equal(t, "Navy Blue", o.Items[0].Color)
}

func TestOrders_PublishFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	u := env.user(t, "demo@furnihome.com")
	p := env.product(t, "S-1")
	env.Events.err = errBoom

	o, err := env.Orders.PlaceOrder(context.Background(), u.ID, CartLine{ProductID: p.ID, Quantity: 1}, shipping)
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
}

func TestOrders_ListAndOwnership(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	jane := env.user(t, "jane@furnihome.com")
	bob := env.user(t, "bob@furnihome.com")
	p := env.product(t, "S-1")

	var janes []string
	for i := 0; i < 2; i++ {
		o, err := env.Orders.PlaceOrder(ctx, jane.ID, CartLine{ProductID: p.ID, Quantity: 1}, shipping)
		require.NoError(t, err)
		janes = append(janes, o.ID)
	}
	bobs, err := env.Orders.PlaceOrder(ctx, bob.ID, CartLine{ProductID: p.ID, Quantity: 1}, shipping)
	require.NoError(t, err)

	list, err := env.Orders.ListOrders(ctx, jane.ID, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, janes[1], list[0].ID, "most recent first")

	list, err = env.Orders.ListOrders(ctx, jane.ID, "velvet")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = env.Orders.ListOrders(ctx, jane.ID, janes[0])
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, janes[0], list[0].ID)

	all, err := env.Orders.ListAllOrders(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = env.Orders.GetOrder(ctx, jane.ID, bobs.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = env.Orders.MarkItemReviewed(ctx, jane.ID, bobs.ID, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrders_MarkItemReviewedIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	u := env.user(t, "demo@furnihome.com")
	p := env.product(t, "S-1")

	pending, err := env.Orders.PlaceOrder(ctx, u.ID, CartLine{ProductID: p.ID, Quantity: 1}, shipping)
	require.NoError(t, err)
	got, err := env.Orders.MarkItemReviewed(ctx, u.ID, pending.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, got.Items[0].Reviewed, "undelivered orders are unchanged")

	o := env.deliveredOrder(t, u.ID, p)
	for i := 0; i < 2; i++ {
		got, err := env.Orders.MarkItemReviewed(ctx, u.ID, o.ID, p.ID)
		require.NoError(t, err)
		assert.True(t, got.Items[0].Reviewed)
	}

	got, err = env.Orders.MarkItemReviewed(ctx, u.ID, o.ID, uuid.New())
	require.NoError(t, err)
	assert.True(t, got.Items[0].Reviewed)

	n := 0
	for _, typ := range env.Events.types() {
		if typ == EventOrderItemReviewed {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestOrders_UpdateStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newTestEnv(t)
	u := env.user(t, "demo@furnihome.com")
	p := env.product(t, "S-1")

	place := func() string {
		o, err := env.Orders.PlaceOrder(ctx, u.ID, CartLine{ProductID: p.ID, Quantity: 1}, shipping)
		require.NoError(t, err)
		return o.ID
	}

	id := place()
	_, err := env.Orders.UpdateStatus(ctx, id, "delivered")
	assert.ErrorIs(t, err, ErrValidation, "cannot skip shipping")

	o, err := env.Orders.UpdateStatus(ctx, id, "Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, o.Status)
	assert.Nil(t, o.DeliveredAt)

	o, err = env.Orders.UpdateStatus(ctx, id, "delivered")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, o.Status)
	assert.NotNil(t, o.DeliveredAt)

	_, err = env.Orders.UpdateStatus(ctx, id, "cancelled")
	assert.ErrorIs(t, err, ErrValidation, "delivered is terminal")

	id = place()
	o, err = env.Orders.UpdateStatus(ctx, id, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, o.Status)

	_, err = env.Orders.UpdateStatus(ctx, id, "returned")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = env.Orders.UpdateStatus(ctx, "499-9999", "shipped")
	assert.ErrorIs(t, err, ErrNotFound)
}
