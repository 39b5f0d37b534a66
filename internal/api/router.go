package api

import (
	"net/http"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/api/handlers"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/api/middleware"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/metrics"
	service "github.com/aaravmahajanofficial/sneaker-inventory/internal/services"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Deps struct {
	Identity  service.IdentityService
	Inventory service.InventoryService
	// Health is mounted at /health when set.
	Health http.Handler
}

// NewRouter wires the routes and the middleware chain, outermost first:
// tracing, request logging, metrics, then the mux.
func NewRouter(deps Deps) http.Handler {

	authHandler := handlers.NewAuthHandler(deps.Identity)
	sneakerHandler := handlers.NewSneakerHandler(deps.Inventory)
	authMiddleware := middleware.NewAuthMiddleware(deps.Identity)

	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/auth/signup", authHandler.Signup())
	routerMux.HandleFunc("POST /api/v1/auth/login", authHandler.Login())
	routerMux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout())
	routerMux.HandleFunc("GET /api/v1/auth/me", authHandler.Me())
	routerMux.HandleFunc("GET /api/v1/sneakers", authMiddleware.RequireUser(sneakerHandler.ListSneakers()))
	routerMux.HandleFunc("POST /api/v1/sneakers", authMiddleware.RequireUser(sneakerHandler.CreateSneaker()))
	routerMux.HandleFunc("GET /api/v1/sneakers/{id}", authMiddleware.RequireUser(sneakerHandler.GetSneaker()))
	routerMux.HandleFunc("PATCH /api/v1/sneakers/{id}", authMiddleware.RequireUser(sneakerHandler.UpdateSneaker()))
	routerMux.HandleFunc("DELETE /api/v1/sneakers/{id}", authMiddleware.RequireUser(sneakerHandler.DeleteSneaker()))
	routerMux.HandleFunc("GET /api/v1/dashboard/stats", authMiddleware.RequireUser(sneakerHandler.DashboardStats()))
	routerMux.Handle("GET /metrics", metrics.Handler())

	if deps.Health != nil {
		routerMux.Handle("GET /health", deps.Health)
	}

	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "sneaker-inventory")

	return handler
}
