package domain

import "errors"

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrEntryNotFound      = errors.New("explore entry not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrInvalidListingData = errors.New("invalid listing data")
	ErrDuplicateFavorite  = errors.New("favorite already exists")
)
