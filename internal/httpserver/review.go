package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/furnihome/internal/logging"
	authmw "github.com/Skotchmaster/furnihome/internal/middleware/auth"
	"github.com/Skotchmaster/furnihome/internal/service"
	"github.com/Skotchmaster/furnihome/internal/transport"
)

type ReviewHTTP struct {
	Svc *service.ReviewService
	// Users resolves the author's current display name.
	Users *service.AuthService
}

func (h *ReviewHTTP) GetProductReviews(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.get_product_reviews")

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		l.Warn("get_product_reviews_failed", "status", 400, "reason", "productId is not a uuid", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "productId is not a uuid")
	}

	summary, err := h.Svc.ProductReviews(ctx, productID)
	if err != nil {
		return fail(l, "get_product_reviews_failed", err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *ReviewHTTP) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.create_review")

	userID, ok := authmw.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
	}

	var req transport.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_review_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	author := service.Author{ID: userID, Name: authmw.UserName(c)}
	if h.Users != nil {
		user, err := h.Users.Me(ctx, userID)
		if err != nil {
			return fail(l, "create_review_failed", err)
		}
		author.Name = user.Name
	}

	review, err := h.Svc.SubmitReview(ctx, service.ReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
	}, author)
	if err != nil {
		return fail(l, "create_review_failed", err)
	}

	l.Info("create_review_success", "review_id", review.ID, "product_id", review.ProductID)
	return c.JSON(http.StatusCreated, review)
}
