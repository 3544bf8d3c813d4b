package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeatureWheelchairAccessible = "Wheelchair Accessible"
	FeatureFreeParking          = "Free Parking"
)

type OpeningHours struct {
	Monday    string `json:"monday,omitempty"`
	Tuesday   string `json:"tuesday,omitempty"`
	Wednesday string `json:"wednesday,omitempty"`
	Thursday  string `json:"thursday,omitempty"`
	Friday    string `json:"friday,omitempty"`
	Saturday  string `json:"saturday,omitempty"`
	Sunday    string `json:"sunday,omitempty"`
}

type Store struct {
	ID        uuid.UUID    `gorm:"primaryKey"                     json:"id"`
	Name      string       `gorm:"not null"                       json:"name"`
	Address   string       `json:"address"`
	City      string       `json:"city"`
	State     string       `json:"state"`
	Zip       string       `json:"zip"`
	Phone     string       `json:"phone"`
	Lat       float64      `gorm:"not null"                       json:"lat"`
	Lng       float64      `gorm:"not null"                       json:"lng"`
	Hours     OpeningHours `gorm:"embedded;embeddedPrefix:hours_" json:"hours"`
	Features  []string     `gorm:"serializer:json;type:text"      json:"features"`
	IsOpen    bool         `gorm:"not null"                       json:"isOpen"`
	ClosesAt  string       `json:"closesAt,omitempty"`
	CreatedAt time.Time    `json:"-"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s Store) HasFeature(f string) bool { return slices.Contains(s.Features, f) }
