package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/furnihome/internal/models"
	"github.com/Skotchmaster/furnihome/internal/report"
)

type ReportRepo interface {
	ListOrderTotals(ctx context.Context) ([]models.Order, error)
	CountProducts(ctx context.Context) (int64, error)
}

type ReportService struct {
	Repo ReportRepo
}

// Sales recomputes the report from the full order history on every call.
func (s *ReportService) Sales(ctx context.Context, granularity string) ([]report.Row, error) {
	g, err := report.ParseGranularity(granularity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	orders, err := s.Repo.ListOrderTotals(ctx)
	if err != nil {
		return nil, err
	}
	return report.Aggregate(orders, g)
}

func (s *ReportService) Summary(ctx context.Context) (*report.Summary, error) {
	orders, err := s.Repo.ListOrderTotals(ctx)
	if err != nil {
		return nil, err
	}
	sum := report.Summarize(orders)

	sum.ProductCount, err = s.Repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &sum, nil
}
