package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/handler"
	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/middleware"
)

func SetupUserRoutes(mux *chi.Mux, h *handler.AuthHandler, jwtSecret string) {
	mux.Post("/api/auth/register", h.Register)
	mux.Post("/api/auth/login", h.Login)

	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))

		r.Get("/api/users/me", h.GetProfile)
		r.Put("/api/users/me", h.UpdateProfile)
		r.Put("/api/users/me/password", h.ChangePassword)
		r.Delete("/api/users/me", h.DeleteAccount)
	})
}
