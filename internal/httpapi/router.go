package httpapi

import (
	"net/http"

	"github.com/bengobox/test-scenarios/internal/config"
	httpmiddleware "github.com/bengobox/test-scenarios/internal/httpapi/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Route binds a GET path to its handler.
type Route struct {
	Path    string
	Handler http.HandlerFunc
}

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	Routes []Route
	Logger *zap.Logger
	CORS   config.CORSConfig
}

// NewRouter wires HTTP routes. Only GET (and HEAD through GetHead) is
// routed; any other method on a known path is answered like an unknown path.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(httpmiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if deps.Logger != nil {
		r.Use(httpmiddleware.AccessLog(deps.Logger))
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.GetHead)
	if deps.CORS.Enabled() {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.NotFound(http.NotFound)
	r.MethodNotAllowed(http.NotFound)

	for _, route := range deps.Routes {
		r.Get(route.Path, route.Handler)
	}

	return r
}
