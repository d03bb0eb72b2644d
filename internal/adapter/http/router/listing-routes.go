package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/handler"
	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/middleware"
)

// SetupListingRoutes registers listing and favorite routes. Reads are
// public; anything that creates, mutates or contacts requires a token.
func SetupListingRoutes(mux *chi.Mux, h *handler.ListingHandler, f *handler.FavoriteHandler, jwtSecret string) {
	mux.Get("/api/listings", h.List)
	mux.Get("/api/listings/search", h.Search)
	mux.Get("/api/listings/{id}", h.GetByID)
	mux.Get("/api/listings/{id}/photos", h.GetPhotos)

	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))

		r.Post("/api/listings", h.Create)
		r.Put("/api/listings/{id}", h.Update)
		r.Delete("/api/listings/{id}", h.Delete)
		r.Post("/api/listings/{id}/photos", h.UploadPhoto)
		r.Post("/api/listings/{id}/contact", h.Contact)

		r.Post("/api/favorites", f.Add)
		r.Delete("/api/favorites", f.Remove)
		r.Get("/api/favorites", f.List)
	})
}
