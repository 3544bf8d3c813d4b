package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is a legal successor of s.
// Delivered and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
}

// OrderSequence is the atomic counter behind order ids: every placed order
// consumes one auto-increment row.
type OrderSequence struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
}

type Order struct {
	ID                string          `gorm:"primaryKey;size:16"                       json:"id"`
	Seq               uint64          `gorm:"uniqueIndex;not null"                     json:"-"`
	UserID            uuid.UUID       `gorm:"index;not null"                           json:"userId"`
	PlacedAt          time.Time       `gorm:"index;not null"                           json:"date"`
	Total             decimal.Decimal `gorm:"type:numeric;not null"                    json:"total"`
	Status            OrderStatus     `gorm:"size:16;not null"                         json:"status"`
	ShippingInfo      ShippingInfo    `gorm:"embedded;embeddedPrefix:ship_"            json:"shippingInfo"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	DeliveredAt       *time.Time      `json:"deliveredDate,omitempty"`
	Items             []OrderItem     `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"    json:"-"`
	OrderID   string          `gorm:"index;not null;size:16"      json:"-"`
	ProductID uuid.UUID       `gorm:"index;not null"              json:"productId"`
	Name      string          `gorm:"not null"                    json:"name"`
	Color     string          `json:"color,omitempty"`
	Quantity  int             `gorm:"not null;check:quantity>0"   json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"       json:"price"`
	Image     string          `json:"image"`
	Reviewed  bool            `gorm:"not null"                    json:"reviewed"`
}

// MaxOrderSeq is the number of distinct ids FormatOrderID can produce.
const MaxOrderSeq = 100 * 9000

// FormatOrderID maps the n-th order (n from 1) onto the "NNN-NNNN" display
// form: 400-1000, 400-1001, ... 400-9999, 401-1000, ... 499-9999.
func FormatOrderID(n uint64) (string, bool) {
	if n == 0 || n > MaxOrderSeq {
		return "", false
	}
	m := n - 1
	return fmt.Sprintf("%d-%d", 400+m/9000, 1000+m%9000), true
}
