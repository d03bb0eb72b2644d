package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/middleware"
	"github.com/deepakkode/scrap-marketplace/internal/listing/usecase"
)

type FavoriteHandler struct {
	favorites *usecase.FavoriteUsecase
	logger    *zap.Logger
}

func NewFavoriteHandler(favorites *usecase.FavoriteUsecase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, logger: logger}
}

type favoriteRequest struct {
	ListingID string `json:"listingId"`
}

type favoriteResponse struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listingId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ListingID == "" {
		writeError(w, http.StatusBadRequest, "listingId is required")
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.favorites.AddFavorite(r.Context(), userID, req.ListingID); err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Added to favorites"})
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if err := h.favorites.RemoveFavorite(r.Context(), userID, req.ListingID); err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Removed from favorites"})
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	favorites, err := h.favorites.GetFavorites(r.Context(), userID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	out := make([]favoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, favoriteResponse{ID: f.ID, ListingID: f.ListingID, CreatedAt: f.CreatedAt})
	}
	writeJSON(w, http.StatusOK, out)
}
