package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/handler"
	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/middleware"
)

func SetupExploreRoutes(mux *chi.Mux, h *handler.ExploreHandler, jwtSecret string) {
	mux.Get("/api/explore", h.List)
	mux.Get("/api/explore/{id}", h.GetByID)

	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))

		r.Post("/api/explore", h.Create)
		r.Put("/api/explore/{id}", h.Update)
		r.Delete("/api/explore/{id}", h.Delete)
	})
}
