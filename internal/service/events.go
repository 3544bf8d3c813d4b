package service

import (
	"context"

	"github.com/Skotchmaster/furnihome/internal/logging"
	"github.com/Skotchmaster/furnihome/internal/mykafka"
)

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderItemReviewed  = "order_item_reviewed"
	EventReviewSubmitted    = "review_submitted"
	EventProductCreated     = "product_created"
	EventProductUpdated     = "product_updated"
	EventProductDeleted     = "product_deleted"
)

// publish never fails the caller: the database write has already happened.
func publish(ctx context.Context, p mykafka.Publisher, topic, key, typ string, data any) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, mykafka.NewEvent(typ, data)); err != nil {
		logging.FromContext(ctx).Warn("publish_event_error", "topic", topic, "type", typ, "key", key, "error", err)
	}
}
