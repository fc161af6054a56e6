// Package server exposes a results directory over HTTP, serving the same
// listing and artifact payloads the remote client consumes.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/RolfLobo/dembrandt/internal/source"
)

// New builds an http.Server for src on addr.
func New(addr string, src source.Source) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           Router(src),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Router assembles the API routes.
func Router(src source.Source) http.Handler {
	h := &handlers{src: src}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/api/health", h.health)
	r.Get("/api/results", h.list)
	r.Get("/api/results/{domain}/{filename}", h.artifact)
	return r
}
