package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"coach-relay/internal/handlers"
	"coach-relay/internal/middleware"
)

func New(chatHandler *handlers.ChatHandler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS())
	r.Use(middleware.Preflight)

	r.Get("/", handlers.Index)
	r.Get("/health", handlers.Health)

	// ──── Coach Routes ────
	r.Route("/coach", func(r chi.Router) {
		r.Post("/chat", chatHandler.Chat)
	})

	return r
}
