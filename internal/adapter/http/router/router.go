package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/handler"
	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/middleware"
	"github.com/deepakkode/scrap-marketplace/internal/platform/metrics"
)

// New wires every route group into a single chi mux.
func New(
	logger *zap.Logger,
	metricsManager *metrics.Manager,
	jwtSecret string,
	auth *handler.AuthHandler,
	listings *handler.ListingHandler,
	explore *handler.ExploreHandler,
	favorites *handler.FavoriteHandler,
) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(middleware.RequestLogger(logger))
	mux.Use(middleware.Metrics(metricsManager))
	mux.Use(chimiddleware.Recoverer)

	mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Welcome to ScrapConnect API"}`))
	})

	SetupUserRoutes(mux, auth, jwtSecret)
	SetupListingRoutes(mux, listings, favorites, jwtSecret)
	SetupExploreRoutes(mux, explore, jwtSecret)

	return mux
}
