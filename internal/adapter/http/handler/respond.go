package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
	"github.com/deepakkode/scrap-marketplace/internal/listing/query"
	"github.com/deepakkode/scrap-marketplace/internal/listing/usecase"
	"github.com/deepakkode/scrap-marketplace/internal/user"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeUsecaseError translates domain errors into the status codes and
// JSON messages clients of the REST API rely on.
func writeUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrListingNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, usecase.ErrEntryNotFound),
		errors.Is(err, domain.ErrFavoriteNotFound),
		errors.Is(err, user.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, user.ErrUnauthorized),
		errors.Is(err, user.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, query.ErrInvalidInput),
		errors.Is(err, usecase.ErrTooManyImages),
		errors.Is(err, domain.ErrInvalidListingData),
		errors.Is(err, domain.ErrDuplicateFavorite),
		errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Server Error")
	}
}
