// Package seed loads the demo storefront: two accounts, the sample
// catalog with its reviews, and the Kathmandu valley stores.
package seed

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/furnihome/internal/logging"
	"github.com/Skotchmaster/furnihome/internal/models"
	"github.com/Skotchmaster/furnihome/internal/repo"
	"github.com/Skotchmaster/furnihome/internal/service"
)

type Seeder struct {
	Repo    *repo.GormRepo
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Stores  *service.StoreService
}

type Result struct {
	Users    int
	Products int
	Reviews  int
	Stores   int
}

// Run wipes every table and loads the sample data. Products go through the
// catalog service so they also reach the search index when one is set.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	l := logging.FromContext(ctx).With("svc", "seed")

	if err := s.Repo.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	l.Info("seed_reset")

	res := &Result{}
	var demo *models.User
	for _, a := range []account{adminAccount, demoAccount} {
		u, err := s.Auth.CreateAccount(ctx, a.Name, a.Email, a.Password, a.Role)
		if err != nil {
			return nil, fmt.Errorf("create user %s: %w", a.Email, err)
		}
		if a.Email == demoAccount.Email {
			demo = u
		}
		res.Users++
	}

	bySKU := make(map[string]*models.Product)
	for _, p := range products() {
		created, err := s.Catalog.CreateProduct(ctx, &p)
		if err != nil {
			return nil, fmt.Errorf("create product %s: %w", p.SKU, err)
		}
		bySKU[created.SKU] = created
		res.Products++
	}

	batch := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		p, ok := bySKU[r.SKU]
		if !ok {
			return nil, fmt.Errorf("review for unknown sku %s", r.SKU)
		}
		batch = append(batch, models.Review{
			ProductID: p.ID,
			UserID:    demo.ID,
			UserName:  r.UserName,
			Rating:    r.Rating,
			Title:     r.Title,
			Content:   r.Content,
			Date:      r.date(),
			Verified:  true,
			Helpful:   r.Helpful,
		})
	}
	if err := s.Repo.ImportReviews(ctx, batch); err != nil {
		return nil, fmt.Errorf("import reviews: %w", err)
	}
	res.Reviews = len(batch)

	for _, st := range stores() {
		if err := s.Stores.CreateStore(ctx, &st); err != nil {
			return nil, fmt.Errorf("create store %s: %w", st.Name, err)
		}
		res.Stores++
	}

	l.Info("seed_success", "users", res.Users, "products", res.Products, "reviews", res.Reviews, "stores", res.Stores)
	return res, nil
}
