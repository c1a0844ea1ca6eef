package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	rh "github.com/statictask/newsletter/route-handlers"
	"github.com/statictask/newsletter/webutil"
)

const (
	staticBasePath = "/static"
	healthPath     = "/healthz"

	requestTimeout = 60 * time.Second
)

func SetupRoutes(pageHandler *rh.PageHandler) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(RequestID)
	r.Use(RealIP)
	r.Use(Logger)    // Log every request
	r.Use(Recoverer) // Recover from panics
	r.Use(Timeout(requestTimeout))

	r.Get("/", webutil.MakeHandler(pageHandler.HandleIndex))
	r.Get(staticBasePath+"/*", webutil.MakeHandler(pageHandler.HandleAsset))

	// Health check endpoint
	r.Get(healthPath, webutil.MakeHandler(rh.HandleHealthCheck))

	return r
}
