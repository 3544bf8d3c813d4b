package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/furnihome/internal/models"
	"github.com/Skotchmaster/furnihome/internal/mykafka"
)

type ReviewRepo interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateReview(ctx context.Context, review *models.Review) ([]string, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
}

type ReviewService struct {
	Repo   ReviewRepo
	Events mykafka.Publisher
	Now    func() time.Time
}

type Author struct {
	ID   uuid.UUID
	Name string
}

type ReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Title     string
	Content   string
}

// ReviewSummary is a product's review list with its star distribution.
// Breakdown and Percentages are keyed by star (1-5).
type ReviewSummary struct {
	Reviews       []models.Review `json:"reviews"`
	Breakdown     map[int]int     `json:"breakdown"`
	Percentages   map[int]int     `json:"percentages"`
	Total         int             `json:"total"`
	AverageRating float64         `json:"averageRating"`
}

func (in *ReviewInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)

	switch {
	case in.ProductID == uuid.Nil:
		return fmt.Errorf("%w: productId is required", ErrValidation)
	case in.Rating < models.MinRating || in.Rating > models.MaxRating:
		return fmt.Errorf("%w: rating must be between %d and %d", ErrValidation, models.MinRating, models.MaxRating)
	case in.Title == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case in.Content == "":
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	return nil
}

// SubmitReview records the review and marks the author's matching delivered
// order items as reviewed, across all of their orders.
func (s *ReviewService) SubmitReview(ctx context.Context, in ReviewInput, author Author) (*models.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetProduct(ctx, in.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, in.ProductID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	review := &models.Review{
		ProductID: in.ProductID,
		UserID:    author.ID,
		UserName:  author.Name,
		Rating:    in.Rating,
		Title:     in.Title,
		Content:   in.Content,
		Date:      now,
	}

	marked, err := s.Repo.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}

	publish(ctx, s.Events, mykafka.TopicReviews, review.ProductID.String(), EventReviewSubmitted, review)
	for _, orderID := range marked {
		publish(ctx, s.Events, mykafka.TopicOrders, orderID, EventOrderItemReviewed, map[string]string{
			"orderId":   orderID,
			"productId": review.ProductID.String(),
		})
	}
	return review, nil
}

func (s *ReviewService) ProductReviews(ctx context.Context, productID uuid.UUID) (*ReviewSummary, error) {
	reviews, err := s.Repo.ListReviews(ctx, productID)
	if err != nil {
		return nil, err
	}
	return Summarize(reviews), nil
}

// Summarize computes the star breakdown, whole-number percentages and the
// average rating rounded to one decimal place (0 with no reviews).
func Summarize(reviews []models.Review) *ReviewSummary {
	sum := &ReviewSummary{
		Reviews:     reviews,
		Breakdown:   make(map[int]int, models.MaxRating),
		Percentages: make(map[int]int, models.MaxRating),
		Total:       len(reviews),
	}
	for star := models.MinRating; star <= models.MaxRating; star++ {
		sum.Breakdown[star] = 0
	}

	points := 0
	for _, r := range reviews {
		sum.Breakdown[r.Rating]++
		points += r.Rating
	}

	for star := models.MinRating; star <= models.MaxRating; star++ {
		if sum.Total > 0 {
			sum.Percentages[star] = int(math.Round(float64(sum.Breakdown[star]) / float64(sum.Total) * 100))
		} else {
			sum.Percentages[star] = 0
		}
	}
	if sum.Total > 0 {
		sum.AverageRating = math.Round(float64(points)/float64(sum.Total)*10) / 10
	}
	return sum
}
