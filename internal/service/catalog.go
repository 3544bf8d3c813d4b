package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/furnihome/internal/logging"
	"github.com/Skotchmaster/furnihome/internal/models"
	"github.com/Skotchmaster/furnihome/internal/mykafka"
	"github.com/Skotchmaster/furnihome/internal/repo"
)

type ProductRepo interface {
	CreateProduct(ctx context.Context, prod *models.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, f repo.ProductFilter) (int64, []models.Product, error)
	SearchProducts(ctx context.Context, query string, offset, limit int) (int64, []models.Product, error)
	ReplaceProduct(ctx context.Context, prod *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CountProducts(ctx context.Context) (int64, error)
}

// ProductIndex is the optional full-text index kept in step with the catalog.
type ProductIndex interface {
	IndexProduct(ctx context.Context, prod models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}

type CatalogService struct {
	Repo   ProductRepo
	Index  ProductIndex
	Events mykafka.Publisher
}

func validateProduct(p *models.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	p.Description = strings.TrimSpace(p.Description)

	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case !p.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", ErrValidation, p.Category)
	case p.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case p.SKU == "":
		return fmt.Errorf("%w: sku is required", ErrValidation)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	case p.OriginalPrice.Valid && p.OriginalPrice.Decimal.IsNegative():
		return fmt.Errorf("%w: originalPrice cannot be negative", ErrValidation)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	case p.ReviewCount < 0:
		return fmt.Errorf("%w: reviewCount cannot be negative", ErrValidation)
	case len(p.Colors) > 0 && len(p.ColorNames) > 0 && len(p.Colors) != len(p.ColorNames):
		return fmt.Errorf("%w: colors and colorNames must have the same length", ErrValidation)
	}
	if p.Image == "" {
		p.Image = p.PrimaryImage()
	}
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	p.ID = uuid.Nil

	if err := s.Repo.CreateProduct(ctx, p); err != nil {
		if repo.IsDuplicate(err) {
			return nil, fmt.Errorf("%w: sku %q already exists", ErrConflict, p.SKU)
		}
		return nil, err
	}

	s.index(ctx, *p)
	publish(ctx, s.Events, mykafka.TopicProducts, p.ID.String(), EventProductCreated, p)
	return p, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	return p, err
}

func (s *CatalogService) ListProducts(ctx context.Context, category string, offset, limit int) (int64, []models.Product, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(category)))
	if c != "" && !c.Valid() {
		return 0, nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	return s.Repo.ListProducts(ctx, repo.ProductFilter{Category: c, Offset: offset, Limit: limit})
}

// SearchProducts prefers the search index and falls back to the database
// when no index is configured or the index query fails.
func (s *CatalogService) SearchProducts(ctx context.Context, query string, offset, limit int) (int64, []models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, nil, fmt.Errorf("%w: query is required", ErrValidation)
	}

	if s.Index != nil {
		total, items, err := s.Index.Search(ctx, query, offset, limit)
		if err == nil {
			return total, items, nil
		}
		logging.FromContext(ctx).Warn("search_index_error", "reason", "falling back to database", "error", err)
	}
	return s.Repo.SearchProducts(ctx, query, offset, limit)
}

// ReplaceProduct overwrites the product stored under id.
func (s *CatalogService) ReplaceProduct(ctx context.Context, id uuid.UUID, p *models.Product) (*models.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	p.ID = id

	if err := s.Repo.ReplaceProduct(ctx, p); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		case repo.IsDuplicate(err):
			return nil, fmt.Errorf("%w: sku %q already exists", ErrConflict, p.SKU)
		}
		return nil, err
	}

	s.index(ctx, *p)
	publish(ctx, s.Events, mykafka.TopicProducts, p.ID.String(), EventProductUpdated, p)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return err
	}

	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search_index_error", "reason", "cannot remove product", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Events, mykafka.TopicProducts, id.String(), EventProductDeleted, map[string]string{"id": id.String()})
	return nil
}

func (s *CatalogService) index(ctx context.Context, p models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Warn("search_index_error", "reason", "cannot index product", "product_id", p.ID, "error", err)
	}
}
