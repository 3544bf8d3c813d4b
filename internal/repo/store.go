package repo

import (
	"context"

	"github.com/Skotchmaster/furnihome/internal/models"
)

func (r *GormRepo) CreateStore(ctx context.Context, s *models.Store) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *GormRepo) ListStores(ctx context.Context) ([]models.Store, error) {
	stores := make([]models.Store, 0)
	err := r.DB.WithContext(ctx).Order("created_at ASC").Order("name ASC").Find(&stores).Error
	return stores, err
}
