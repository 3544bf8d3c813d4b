package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        uuid.UUID `gorm:"primaryKey"                             json:"id"`
	ProductID uuid.UUID `gorm:"index;not null"                         json:"productId"`
	UserID    uuid.UUID `gorm:"index;not null"                         json:"userId"`
	UserName  string    `gorm:"not null"                               json:"userName"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 1 AND 5"  json:"rating"`
	Title     string    `gorm:"not null"                               json:"title"`
	Content   string    `gorm:"not null"                               json:"content"`
	Date      time.Time `gorm:"index;not null"                         json:"date"`
	Verified  bool      `gorm:"not null"                               json:"verified"`
	Helpful   int       `gorm:"not null;default:0"                     json:"helpful"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
