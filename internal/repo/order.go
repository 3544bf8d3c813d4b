package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/furnihome/internal/models"
)

type OrderFilter struct {
	// UserID restricts the listing to one customer; nil lists everyone's.
	UserID *uuid.UUID
	// Query matches order ids and item names, case-insensitively.
	Query string
}

// CreateOrder allocates the next order id from the sequence table and
// inserts the order with its items in one transaction.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq := models.OrderSequence{}
		if err := tx.Create(&seq).Error; err != nil {
			return err
		}

		id, ok := models.FormatOrderID(seq.ID)
		if !ok {
			return ErrSequenceExhausted
		}
		order.ID = id
		order.Seq = seq.ID
		for i := range order.Items {
			order.Items[i].OrderID = id
		}

		return tx.Create(order).Error
	})
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.id ASC")
}

// GetOrder loads one order. A non-nil userID also requires ownership.
func (r *GormRepo) GetOrder(ctx context.Context, id string, userID *uuid.UUID) (*models.Order, error) {
	q := r.DB.WithContext(ctx).Preload("Items", preloadItems).Where("id = ?", id)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var order models.Order
	if err := q.First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders most recent first.
func (r *GormRepo) ListOrders(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Query != "" {
		pattern := containsPattern(f.Query)
		q = q.Where(`(LOWER(orders.id) LIKE ? ESCAPE '\' OR EXISTS (
			SELECT 1 FROM order_items oi
			WHERE oi.order_id = orders.id AND LOWER(oi.name) LIKE ? ESCAPE '\'))`,
			pattern, pattern)
	}

	orders := make([]models.Order, 0)
	if err := q.Preload("Items", preloadItems).
		Order("placed_at DESC").Order("seq DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrderTotals loads only what sales reports need.
func (r *GormRepo) ListOrderTotals(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Select("id", "placed_at", "total").
		Order("placed_at DESC").
		Find(&orders).Error
	return orders, err
}

// MarkItemReviewed flips the reviewed flag on the first item of the order
// matching productID, provided the order has been delivered. The update
// touches only that item row. It returns the number of rows updated, which
// is zero when nothing matched.
func (r *GormRepo) MarkItemReviewed(ctx context.Context, orderID string, productID uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&models.OrderItem{}).
		Where(`id = (
			SELECT MIN(oi.id) FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE oi.order_id = ? AND oi.product_id = ? AND o.status = ?)`,
			orderID, productID, models.OrderStatusDelivered).
		Where("reviewed = ?", false).
		Update("reviewed", true)
	return res.RowsAffected, res.Error
}

// UpdateOrderStatus moves an order from one status to another. It reports
// false when the order was no longer in status from.
func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id string, from, to models.OrderStatus, at time.Time) (bool, error) {
	updates := map[string]any{"status": to}
	if to == models.OrderStatusDelivered {
		updates["delivered_at"] = at
	}

	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
