package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Skotchmaster/furnihome/internal/geo"
	"github.com/Skotchmaster/furnihome/internal/models"
)

type StoreRepo interface {
	CreateStore(ctx context.Context, s *models.Store) error
	ListStores(ctx context.Context) ([]models.Store, error)
}

type StoreService struct {
	Repo StoreRepo
}

type StoreQuery struct {
	// Origin, when set, adds distances and orders stores nearest first.
	Origin               *geo.Point
	OpenNow              bool
	WheelchairAccessible bool
	FreeParking          bool
}

type StoreResult struct {
	models.Store
	Distance *float64 `json:"distance,omitempty"`
}

func (q StoreQuery) matches(s models.Store) bool {
	if q.OpenNow && !s.IsOpen {
		return false
	}
	if q.WheelchairAccessible && !s.HasFeature(models.FeatureWheelchairAccessible) {
		return false
	}
	if q.FreeParking && !s.HasFeature(models.FeatureFreeParking) {
		return false
	}
	return true
}

func (s *StoreService) FindStores(ctx context.Context, q StoreQuery) ([]StoreResult, error) {
	if q.Origin != nil && !q.Origin.Valid() {
		return nil, fmt.Errorf("%w: lat must be within [-90,90] and lng within [-180,180]", ErrValidation)
	}

	stores, err := s.Repo.ListStores(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]StoreResult, 0, len(stores))
	for _, st := range stores {
		if !q.matches(st) {
			continue
		}
		res := StoreResult{Store: st}
		if q.Origin != nil {
			d := geo.DistanceMiles(*q.Origin, geo.Point{Lat: st.Lat, Lng: st.Lng})
			res.Distance = &d
		}
		out = append(out, res)
	}

	if q.Origin != nil {
		sort.SliceStable(out, func(i, j int) bool { return *out[i].Distance < *out[j].Distance })
	}
	return out, nil
}

func (s *StoreService) CreateStore(ctx context.Context, st *models.Store) error {
	if st.Name == "" {
		return fmt.Errorf("%w: store name is required", ErrValidation)
	}
	if !(geo.Point{Lat: st.Lat, Lng: st.Lng}).Valid() {
		return fmt.Errorf("%w: store coordinates out of range", ErrValidation)
	}
	return s.Repo.CreateStore(ctx, st)
}
