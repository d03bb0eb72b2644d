package domain

import "context"

type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	Update(ctx context.Context, listing *Listing) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Listing, error)
	FindAll(ctx context.Context) ([]*Listing, error)
	FindBySellerID(ctx context.Context, sellerID string) ([]*Listing, error)
}

type ExploreRepository interface {
	Create(ctx context.Context, entry *ExploreEntry) error
	Update(ctx context.Context, entry *ExploreEntry) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*ExploreEntry, error)
	FindAll(ctx context.Context) ([]*ExploreEntry, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, favorite *Favorite) error
	Remove(ctx context.Context, userID, listingID string) error
	FindByUserID(ctx context.Context, userID string) ([]*Favorite, error)
}

// Storage is the image store the photo usecase uploads to (MinIO in production).
type Storage interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}
