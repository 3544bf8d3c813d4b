package transport

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/furnihome/internal/models"
	"github.com/Skotchmaster/furnihome/internal/util"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

// ProductRequest is the body of product create and replace calls.
type ProductRequest struct {
	Name          string              `json:"name"`
	Category      string              `json:"category"`
	Price         decimal.Decimal     `json:"price"`
	OriginalPrice decimal.NullDecimal `json:"originalPrice"`
	Rating        float64             `json:"rating"`
	ReviewCount   int                 `json:"reviewCount"`
	Image         string              `json:"image"`
	Images        []string            `json:"images"`
	Colors        []string            `json:"colors"`
	ColorNames    []string            `json:"colorNames"`
	Description   string              `json:"description"`
	Dimensions    models.Dimensions   `json:"dimensions"`
	Materials     string              `json:"materials"`
	SKU           string              `json:"sku"`
	InStock       *bool               `json:"inStock"`
	IsSale        bool                `json:"isSale"`
	FreeShipping  bool                `json:"freeShipping"`
}

func (r ProductRequest) ToModel() *models.Product {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return &models.Product{
		Name:          r.Name,
		Category:      models.Category(r.Category),
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		Image:         r.Image,
		Images:        r.Images,
		Colors:        r.Colors,
		ColorNames:    r.ColorNames,
		Description:   r.Description,
		Dimensions:    r.Dimensions,
		Materials:     r.Materials,
		SKU:           r.SKU,
		InStock:       inStock,
		IsSale:        r.IsSale,
		FreeShipping:  r.FreeShipping,
	}
}

type ProductListResponse struct {
	Data []models.Product `json:"data"`
	Meta util.Meta        `json:"meta"`
}

type QuoteRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Color     string    `json:"color"`
}

// CreateOrderRequest carries a single cart line. A client-sent total is
// accepted for compatibility and ignored.
type CreateOrderRequest struct {
	Items        []OrderItemRequest  `json:"items"`
	Total        decimal.NullDecimal `json:"total"`
	ShippingInfo models.ShippingInfo `json:"shippingInfo"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
}
