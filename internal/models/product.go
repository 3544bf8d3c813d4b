package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category string

const (
	CategorySofas    Category = "sofas"
	CategoryChairs   Category = "chairs"
	CategoryTables   Category = "tables"
	CategoryBeds     Category = "beds"
	CategoryLighting Category = "lighting"
	CategoryDecor    Category = "decor"
)

var Categories = []Category{
	CategorySofas, CategoryChairs, CategoryTables, CategoryBeds, CategoryLighting, CategoryDecor,
}

func (c Category) Valid() bool { return slices.Contains(Categories, c) }

type Dimensions struct {
	Width      string `json:"width,omitempty"`
	Depth      string `json:"depth,omitempty"`
	Height     string `json:"height,omitempty"`
	SeatHeight string `json:"seatHeight,omitempty"`
}

type Product struct {
	ID            uuid.UUID           `gorm:"primaryKey"                          json:"id"`
	Name          string              `gorm:"not null"                            json:"name"`
	Category      Category            `gorm:"index;not null"                      json:"category"`
	Price         decimal.Decimal     `gorm:"type:numeric;not null"               json:"price"`
	OriginalPrice decimal.NullDecimal `gorm:"type:numeric"                        json:"originalPrice"`
	Rating        float64             `gorm:"not null;default:0"                  json:"rating"`
	ReviewCount   int                 `gorm:"not null;default:0"                  json:"reviewCount"`
	Image         string              `json:"image"`
	Images        []string            `gorm:"serializer:json;type:text"           json:"images"`
	Colors        []string            `gorm:"serializer:json;type:text"           json:"colors"`
	ColorNames    []string            `gorm:"serializer:json;type:text"           json:"colorNames"`
	Description   string              `gorm:"not null"                            json:"description"`
	Dimensions    Dimensions          `gorm:"embedded;embeddedPrefix:dim_"        json:"dimensions"`
	Materials     string              `json:"materials"`
	SKU           string              `gorm:"column:sku;uniqueIndex;not null"     json:"sku"`
	InStock       bool                `gorm:"not null"                            json:"inStock"`
	IsSale        bool                `gorm:"not null"                            json:"isSale"`
	FreeShipping  bool                `gorm:"not null"                            json:"freeShipping"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DefaultColor is the color an order line gets when the buyer picked none.
func (p Product) DefaultColor() string {
	if len(p.ColorNames) == 0 {
		return ""
	}
	return p.ColorNames[0]
}

// PrimaryImage falls back to the first gallery image.
func (p Product) PrimaryImage() string {
	if p.Image != "" || len(p.Images) == 0 {
		return p.Image
	}
	return p.Images[0]
}
