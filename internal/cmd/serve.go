package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/furnihome/internal/config"
	"github.com/Skotchmaster/furnihome/internal/httpserver"
	"github.com/Skotchmaster/furnihome/internal/middleware/csrf"
	"github.com/Skotchmaster/furnihome/internal/seed"
)

var seedOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the storefront HTTP API. The schema is migrated on start.
SIGINT or SIGTERM drains in-flight requests for up to 10 seconds.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&seedOnStart, "seed", false, "load the sample data before serving (wipes existing data)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	config.MustNonEmptyBytes(a.Cfg.JWTSecret, "JWT_SECRET")

	if seedOnStart {
		s := &seed.Seeder{Repo: a.Repo, Auth: a.Auth, Catalog: a.Catalog, Stores: a.Stores}
		if _, err := s.Run(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	csrfCfg := csrf.DefaultConfig()
	csrfCfg.Secure = a.Cfg.CookieSecure

	e := httpserver.New(a.Logger, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: a.Auth, CookieSecure: a.Cfg.CookieSecure},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: a.Catalog},
		OrderHandler:   &httpserver.OrderHTTP{Svc: a.Orders},
		ReviewHandler:  &httpserver.ReviewHTTP{Svc: a.Reviews, Users: a.Auth},
		StoreHandler:   &httpserver.StoreHTTP{Svc: a.Stores},
		ReportHandler:  &httpserver.ReportHTTP{Svc: a.Reports},
		JWTSecret:      a.Cfg.JWTSecret,
		CSRF:           csrfCfg,
		Ready:          a.Repo.Ping,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("server_shutdown_error", "error", err)
	}
	a.Logger.Info("server_stopped")
	return nil
}
