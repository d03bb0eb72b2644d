package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
	"github.com/deepakkode/scrap-marketplace/internal/listing/usecase"
)

type ExploreHandler struct {
	explore *usecase.ExploreUsecase
	logger  *zap.Logger
}

func NewExploreHandler(explore *usecase.ExploreUsecase, logger *zap.Logger) *ExploreHandler {
	return &ExploreHandler{explore: explore, logger: logger}
}

type exploreRequest struct {
	List     string  `json:"list"`
	Material string  `json:"material"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
}

type exploreResponse struct {
	ID        string    `json:"id"`
	List      string    `json:"list"`
	Material  string    `json:"material"`
	Location  string    `json:"location"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toExploreResponse(e *domain.ExploreEntry) exploreResponse {
	return exploreResponse{
		ID:        e.ID,
		List:      e.List,
		Material:  e.Material,
		Location:  e.Location,
		Price:     e.Price,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (h *ExploreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req exploreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.explore.CreateEntry(r.Context(), req.List, req.Material, req.Location, req.Price)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExploreResponse(entry))
}

func (h *ExploreHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req exploreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	entry, err := h.explore.UpdateEntry(r.Context(), id, req.List, req.Material, req.Location, req.Price)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExploreResponse(entry))
}

func (h *ExploreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.explore.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Entry deleted"})
}

func (h *ExploreHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	entry, err := h.explore.GetEntryByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExploreResponse(entry))
}

func (h *ExploreHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.explore.ListEntries(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	out := make([]exploreResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toExploreResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}
