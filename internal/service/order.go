package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/furnihome/internal/checkout"
	"github.com/Skotchmaster/furnihome/internal/logging"
	"github.com/Skotchmaster/furnihome/internal/models"
	"github.com/Skotchmaster/furnihome/internal/mykafka"
	"github.com/Skotchmaster/furnihome/internal/repo"
)

// EstimatedDeliveryAfter is added to the placement time for the delivery
// estimate shown to the customer.
const EstimatedDeliveryAfter = 7 * 24 * time.Hour

type OrderRepo interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id string, userID *uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, f repo.OrderFilter) ([]models.Order, error)
	MarkItemReviewed(ctx context.Context, orderID string, productID uuid.UUID) (int64, error)
	UpdateOrderStatus(ctx context.Context, id string, from, to models.OrderStatus, at time.Time) (bool, error)
}

type OrderService struct {
	Repo     OrderRepo
	Calc     checkout.Calculator
	Currency string
	Events   mykafka.Publisher
	Now      func() time.Time
}

// CartLine is the single product selection carried into checkout.
type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
	Color     string
}

type Quote struct {
	checkout.Breakdown
	Currency string `json:"currency"`
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *OrderService) product(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	return p, err
}

func (s *OrderService) compute(p *models.Product, quantity int) (checkout.Breakdown, error) {
	b, err := s.Calc.Compute(p.Price, quantity)
	if err != nil {
		return checkout.Breakdown{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return b, nil
}

// Quote prices a cart line against the current catalog without placing it.
func (s *OrderService) Quote(ctx context.Context, productID uuid.UUID, quantity int) (*Quote, error) {
	p, err := s.product(ctx, productID)
	if err != nil {
		return nil, err
	}
	b, err := s.compute(p, quantity)
	if err != nil {
		return nil, err
	}
	return &Quote{Breakdown: b, Currency: s.Currency}, nil
}

func validateShipping(info *models.ShippingInfo) error {
	info.Name = strings.TrimSpace(info.Name)
	info.Address = strings.TrimSpace(info.Address)
	info.City = strings.TrimSpace(info.City)
	info.Email = strings.TrimSpace(info.Email)
	info.Phone = strings.TrimSpace(info.Phone)

	switch {
	case info.Name == "":
		return fmt.Errorf("%w: shipping name is required", ErrValidation)
	case info.Address == "":
		return fmt.Errorf("%w: shipping address is required", ErrValidation)
	case info.City == "":
		return fmt.Errorf("%w: shipping city is required", ErrValidation)
	}
	return nil
}

// PlaceOrder snapshots the product's current price, name and image into a
// new order. The total is always computed here from that snapshot.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, line CartLine, shipping models.ShippingInfo) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.place")

	if err := validateShipping(&shipping); err != nil {
		return nil, err
	}
	p, err := s.product(ctx, line.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.InStock {
		return nil, fmt.Errorf("%w: %s is out of stock", ErrValidation, p.Name)
	}

	color := strings.TrimSpace(line.Color)
	if color == "" {
		color = p.DefaultColor()
	} else if len(p.ColorNames) > 0 && !slices.Contains(p.ColorNames, color) {
		return nil, fmt.Errorf("%w: %s is not available in %q", ErrValidation, p.Name, color)
	}

	b, err := s.compute(p, line.Quantity)
	if err != nil {
		return nil, err
	}

	placed := s.now()
	eta := placed.Add(EstimatedDeliveryAfter)
	order := &models.Order{
		UserID:            userID,
		PlacedAt:          placed,
		Total:             b.Total,
		Status:            models.OrderStatusProcessing,
		ShippingInfo:      shipping,
		EstimatedDelivery: &eta,
		Items: []models.OrderItem{{
			ProductID: p.ID,
			Name:      p.Name,
			Color:     color,
			Quantity:  line.Quantity,
			Price:     p.Price,
			Image:     p.PrimaryImage(),
		}},
	}

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, repo.ErrSequenceExhausted) || repo.IsDuplicate(err) {
			l.Error("place_order_error", "reason", "order id unavailable", "error", err)
			return nil, fmt.Errorf("%w: cannot allocate order id", ErrConflict)
		}
		return nil, err
	}

	publish(ctx, s.Events, mykafka.TopicOrders, order.ID, EventOrderPlaced, order)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID uuid.UUID, id string) (*models.Order, error) {
	o, err := s.Repo.GetOrder(ctx, id, &userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return o, err
}

// ListOrders returns the user's orders most recent first, optionally
// narrowed by a case-insensitive match on order id or item name.
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, query string) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, repo.OrderFilter{UserID: &userID, Query: strings.TrimSpace(query)})
}

func (s *OrderService) ListAllOrders(ctx context.Context, query string) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, repo.OrderFilter{Query: strings.TrimSpace(query)})
}

// MarkItemReviewed flags the order's item for productID as reviewed. A
// missing item, an undelivered order or an already reviewed item leave the
// order unchanged without error; only a missing order is reported.
func (s *OrderService) MarkItemReviewed(ctx context.Context, userID uuid.UUID, orderID string, productID uuid.UUID) (*models.Order, error) {
	if _, err := s.GetOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}

	n, err := s.Repo.MarkItemReviewed(ctx, orderID, productID)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		publish(ctx, s.Events, mykafka.TopicOrders, orderID, EventOrderItemReviewed, map[string]string{
			"orderId":   orderID,
			"productId": productID.String(),
		})
	}
	return s.GetOrder(ctx, userID, orderID)
}

// UpdateStatus advances an order along processing -> shipped -> delivered,
// or cancels it before delivery.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	next := models.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	o, err := s.Repo.GetOrder(ctx, id, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
		}
		return nil, err
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", ErrValidation, o.Status, next)
	}

	ok, err := s.Repo.UpdateOrderStatus(ctx, id, o.Status, next, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: order %s changed concurrently", ErrConflict, id)
	}

	publish(ctx, s.Events, mykafka.TopicOrders, id, EventOrderStatusChanged, map[string]string{
		"orderId": id,
		"from":    string(o.Status),
		"to":      string(next),
	})

	updated, err := s.Repo.GetOrder(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
