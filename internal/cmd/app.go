package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/furnihome/internal/checkout"
	"github.com/Skotchmaster/furnihome/internal/config"
	"github.com/Skotchmaster/furnihome/internal/db"
	"github.com/Skotchmaster/furnihome/internal/es"
	"github.com/Skotchmaster/furnihome/internal/logging"
	"github.com/Skotchmaster/furnihome/internal/mykafka"
	"github.com/Skotchmaster/furnihome/internal/repo"
	"github.com/Skotchmaster/furnihome/internal/service"
)

// app holds everything the subcommands share once configuration is loaded.
type app struct {
	Cfg    config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Repo   *repo.GormRepo
	Events mykafka.Publisher

	Auth    *service.AuthService
	Catalog *service.CatalogService
	Orders  *service.OrderService
	Reviews *service.ReviewService
	Reports *service.ReportService
	Stores  *service.StoreService
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	if cfg.DatabaseURL == "" {
		logger.Warn("database_fallback", "reason", "DATABASE_URL not set, using in-memory sqlite; data is lost on restart")
	}

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	gdb, err := db.Open(openCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if err := db.Migrate(gdb); err != nil {
		_ = db.Close(gdb)
		return nil, err
	}

	r := repo.New(gdb)
	events := mykafka.New(cfg.KafkaBrokers)
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("events_disabled", "reason", "KAFKA_BROKERS not set")
	}

	catalog := &service.CatalogService{Repo: r, Events: events}
	if cfg.ESURL != "" {
		idx, err := newProductIndex(ctx, cfg)
		if err != nil {
			logger.Warn("search_index_unavailable", "reason", "falling back to database search", "error", err)
		} else {
			catalog.Index = idx
		}
	}

	return &app{
		Cfg:     cfg,
		Logger:  logger,
		DB:      gdb,
		Repo:    r,
		Events:  events,
		Auth:    &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret, TokenTTL: cfg.AccessTokenTTL},
		Catalog: catalog,
		Orders: &service.OrderService{
			Repo:     r,
			Calc:     checkout.NewCalculator(cfg.Checkout.ShippingFlat, cfg.Checkout.TaxRate),
			Currency: cfg.Checkout.Currency,
			Events:   events,
		},
		Reviews: &service.ReviewService{Repo: r, Events: events},
		Reports: &service.ReportService{Repo: r},
		Stores:  &service.StoreService{Repo: r},
	}, nil
}

func newProductIndex(ctx context.Context, cfg config.Config) (*es.ProductIndex, error) {
	esCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := es.NewClient(esCtx, es.ClientConfig{URL: cfg.ESURL, User: cfg.ESUser, Password: cfg.ESPassword})
	if err != nil {
		return nil, err
	}
	idx := es.NewProductIndex(client, cfg.ESIndex)
	if err := idx.EnsureIndex(esCtx); err != nil {
		return nil, err
	}
	return idx, nil
}

func (a *app) Close() {
	if err := a.Events.Close(); err != nil {
		a.Logger.Warn("events_close_error", "error", err)
	}
	if err := db.Close(a.DB); err != nil {
		a.Logger.Warn("db_close_error", "error", err)
	}
}
