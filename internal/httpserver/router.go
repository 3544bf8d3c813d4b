package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/furnihome/internal/logging"
	authmw "github.com/Skotchmaster/furnihome/internal/middleware/auth"
	"github.com/Skotchmaster/furnihome/internal/middleware/csrf"
	loggingmw "github.com/Skotchmaster/furnihome/internal/middleware/logging"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	OrderHandler   *OrderHTTP
	ReviewHandler  *ReviewHTTP
	StoreHandler   *StoreHTTP
	ReportHandler  *ReportHTTP

	JWTSecret []byte
	CSRF      csrf.Config

	// Ready reports whether backing stores are reachable.
	Ready func(ctx context.Context) error
}

// New builds the echo instance with the standard middleware chain and all
// routes registered.
func New(logger *slog.Logger, d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.Secure())
	e.Use(echomw.CORS())

	Register(e, d)
	return e
}

// cookieAuthenticated reports whether the request would authenticate with
// the access cookie. Only those requests need a CSRF token.
func cookieAuthenticated(c echo.Context) bool {
	token, fromCookie := authmw.TokenFromRequest(c)
	return token != "" && fromCookie
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				logging.FromContext(c.Request().Context()).Error("readiness_failed", "error", err)
				return echo.NewHTTPError(http.StatusServiceUnavailable, "not ready")
			}
		}
		return c.NoContent(http.StatusOK)
	})

	authMW := authmw.New(d.JWTSecret)

	csrfCfg := d.CSRF
	csrfCfg.Skipper = func(c echo.Context) bool { return !cookieAuthenticated(c) }

	api := e.Group("/api", csrf.Middleware(csrfCfg))
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)
	auth.GET("/me", d.AuthHandler.Me, authMW.RequireAuth)

	products := api.Group("/products")
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	productAdmin := products.Group("", authMW.RequireAdmin)
	productAdmin.POST("", d.CatalogHandler.CreateProduct)
	productAdmin.PUT("/:id", d.CatalogHandler.ReplaceProduct)
	productAdmin.DELETE("/:id", d.CatalogHandler.DeleteProduct)

	api.POST("/checkout/quote", d.OrderHandler.Quote)

	orders := api.Group("/orders", authMW.RequireAuth)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.PUT("/:orderId/review/:productId", d.OrderHandler.MarkItemReviewed)

	api.GET("/reviews/:productId", d.ReviewHandler.GetProductReviews)
	api.POST("/reviews", d.ReviewHandler.CreateReview, authMW.RequireAuth)

	api.GET("/stores", d.StoreHandler.GetStores)

	admin := api.Group("/admin", authMW.RequireAdmin)
	admin.GET("/reports", d.ReportHandler.GetReports)
	admin.GET("/summary", d.ReportHandler.GetSummary)
	admin.GET("/orders", d.OrderHandler.AdminListOrders)
	admin.PATCH("/orders/:id/status", d.OrderHandler.UpdateStatus)
}
