package routes

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lunaville/storefront-backend/api/controllers"
	cartcontrollers "github.com/lunaville/storefront-backend/api/controllers/cart"
	"github.com/lunaville/storefront-backend/api/middleware"
	"github.com/lunaville/storefront-backend/internal/cart"
	"github.com/lunaville/storefront-backend/internal/catalog"
	"github.com/lunaville/storefront-backend/internal/notifications"
	"github.com/lunaville/storefront-backend/internal/orders"
	"github.com/lunaville/storefront-backend/pkg/config"
	"github.com/lunaville/storefront-backend/pkg/db"
	"github.com/lunaville/storefront-backend/pkg/logger"
	"github.com/lunaville/storefront-backend/pkg/metrics"
	redisclient "github.com/lunaville/storefront-backend/pkg/redis"
)

type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       redisclient.Pinger
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
	CartService cart.Service
	Catalog     catalog.Service
	Orders      orders.Service
	Notifier    notifications.Notifier
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.Catalog, logg))
			r.Get("/{productId}", controllers.ProductDetail(deps.Catalog, logg))
		})

		r.Route("/carts/{cartId}", func(r chi.Router) {
			r.Get("/", cartcontrollers.Fetch(deps.CartService, logg))
			r.Delete("/", cartcontrollers.Clear(deps.CartService, logg))
			r.Post("/items", cartcontrollers.AddItem(deps.CartService, logg))
			r.Patch("/items/{productId}", cartcontrollers.UpdateQuantity(deps.CartService, logg))
			r.Delete("/items/{productId}", cartcontrollers.RemoveItem(deps.CartService, logg))
		})

		r.Post("/pricing/quote", controllers.PricingQuote(logg))
		r.Post("/custom-rugs", controllers.CustomRugSubmit(deps.Notifier, logg))

		r.Post("/checkout", controllers.Checkout(deps.Orders, logg))
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(deps.Orders, logg))
			r.Get("/{orderId}", controllers.OrderDetail(deps.Orders, logg))
			r.Patch("/{orderId}/status", controllers.OrderUpdateStatus(deps.Orders, logg))
		})
	})

	return r
}
