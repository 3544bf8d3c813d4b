package repo

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/furnihome/internal/models"
)

// deliveredItems selects the items of userID's delivered orders for productID.
func deliveredItems(tx *gorm.DB, userID, productID uuid.UUID) *gorm.DB {
	return tx.Model(&models.OrderItem{}).
		Where("product_id = ?", productID).
		Where("order_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Model(&models.Order{}).Select("id").
				Where("user_id = ? AND status = ?", userID, models.OrderStatusDelivered))
}

// CreateReview stores the review, marks every matching item of the author's
// delivered orders as reviewed and refreshes the product's rating, all in one
// transaction. It returns the ids of the orders whose items were marked.
func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) ([]string, error) {
	var marked []string
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchases int64
		if err := deliveredItems(tx, review.UserID, review.ProductID).Count(&purchases).Error; err != nil {
			return err
		}
		review.Verified = purchases > 0

		if err := tx.Create(review).Error; err != nil {
			return err
		}

		if err := deliveredItems(tx, review.UserID, review.ProductID).
			Where("reviewed = ?", false).
			Distinct().Pluck("order_id", &marked).Error; err != nil {
			return err
		}
		if len(marked) > 0 {
			if err := deliveredItems(tx, review.UserID, review.ProductID).
				Where("reviewed = ?", false).
				Update("reviewed", true).Error; err != nil {
				return err
			}
		}

		return refreshRating(tx, review.ProductID)
	})
	return marked, err
}

func refreshRating(tx *gorm.DB, productID uuid.UUID) error {
	var stats struct {
		Count int64
		Avg   float64
	}
	if err := tx.Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
		Where("product_id = ?", productID).
		Scan(&stats).Error; err != nil {
		return err
	}

	return tx.Model(&models.Product{}).Where("id = ?", productID).Updates(map[string]any{
		"rating":       math.Round(stats.Avg*10) / 10,
		"review_count": stats.Count,
	}).Error
}

// ListReviews returns a product's reviews newest first.
func (r *GormRepo) ListReviews(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date DESC").
		Find(&reviews).Error
	return reviews, err
}

// ImportReviews inserts reviews as given, leaving order items and product
// ratings untouched. Used to load sample data.
func (r *GormRepo) ImportReviews(ctx context.Context, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&reviews).Error
}
