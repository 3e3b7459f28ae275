// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods, handlers, and auth needs

package handlers

import (
	"net/http"

	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/middleware"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/models"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL pattern (e.g., "/brands/{id}")
	Handler http.HandlerFunc // Handler function
	Public  bool             // served without a Bearer token
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	routes := []Route{
		// Health & Auth
		{Method: http.MethodGet, Path: "/health", Handler: h.Health, Public: true},
		{Method: http.MethodGet, Path: "/auth/status", Handler: h.AuthStatus, Public: true},
		{Method: http.MethodPost, Path: "/auth/register", Handler: h.Register, Public: true},
		{Method: http.MethodPost, Path: "/auth/login", Handler: h.Login, Public: true},

		// Size types live under /sizes
		{Method: http.MethodGet, Path: "/sizes/types", Handler: h.listDocuments(models.SizeTypeSchema)},
		{Method: http.MethodPost, Path: "/sizes/types", Handler: h.createDocument(models.SizeTypeSchema)},

		// Sub-resources
		{Method: http.MethodGet, Path: "/categories/{id}/size-types", Handler: h.CategorySizeTypes},
		{Method: http.MethodPost, Path: "/categories/{id}/size-types", Handler: h.AddCategorySizeType},
		{Method: http.MethodPost, Path: "/products/{id}/images", Handler: h.AddProductImage},
		{Method: http.MethodDelete, Path: "/products/{id}/images", Handler: h.RemoveProductImage},
		{Method: http.MethodGet, Path: "/stock/product/{product}/size/{size}", Handler: h.StockForProductSize},
		{Method: http.MethodPatch, Path: "/stock/product/{product}/size/{size}", Handler: h.SetStockForProductSize},
	}

	for _, s := range models.Schemas {
		base := "/" + s.Name
		create := h.createDocument(s)
		if s.Name == models.Stock {
			create = h.CreateStock
		}
		routes = append(routes,
			Route{Method: http.MethodGet, Path: base, Handler: h.listDocuments(s)},
			Route{Method: http.MethodPost, Path: base, Handler: create},
			Route{Method: http.MethodGet, Path: base + "/{id}", Handler: h.getDocument(s)},
			Route{Method: http.MethodPatch, Path: base + "/{id}", Handler: h.patchDocument(s)},
			Route{Method: http.MethodDelete, Path: base + "/{id}", Handler: h.deleteDocument(s)},
		)
	}

	return routes
}

// Mux registers every route behind its middleware: request logging and
// CORS everywhere, a per-client rate limit on /auth/, and Bearer auth on
// everything not public.
func (h *Handler) Mux() *http.ServeMux {
	var origins []string
	if h.cfg != nil {
		origins = h.cfg.CORSAllowedOrigins
	}
	cors := middleware.CORS(origins)
	auth := middleware.Auth(h.tokens)
	authLimit := middleware.RateLimit(h.authLimiter, middleware.ClientIP)

	mux := http.NewServeMux()
	for _, rt := range h.Routes() {
		chain := []middleware.Middleware{middleware.LogRequest, cors}
		switch {
		case rt.Public && rt.Path != "/health" && rt.Path != "/auth/status":
			chain = append(chain, authLimit)
		case !rt.Public:
			chain = append(chain, auth)
		}
		mux.HandleFunc(rt.Method+" "+rt.Path, middleware.Chain(rt.Handler, chain...))
	}

	// Preflight for any path
	mux.HandleFunc("OPTIONS /", middleware.Chain(func(http.ResponseWriter, *http.Request) {}, middleware.LogRequest, cors))

	// Unknown paths answer in the API's JSON error shape
	mux.HandleFunc("/", middleware.Chain(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, "Route not found", http.StatusNotFound)
	}, middleware.LogRequest, cors))

	return mux
}
