package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

// MaxImagesPerListing caps how many images a listing may carry.
const MaxImagesPerListing = 5

var ErrTooManyImages = errors.New("listing already has the maximum number of images")

type PhotoUsecase struct {
	storage domain.Storage
	repo    domain.ListingRepository
	logger  *zap.Logger
}

func NewPhotoUsecase(storage domain.Storage, repo domain.ListingRepository, logger *zap.Logger) *PhotoUsecase {
	return &PhotoUsecase{
		storage: storage,
		repo:    repo,
		logger:  logger.Named("PhotoUsecase"),
	}
}

// UploadImage stores the file and appends its URL to the listing. Only the
// listing's owner may attach images.
func (uc *PhotoUsecase) UploadImage(ctx context.Context, listingID, userID, fileName string, data []byte) (string, error) {
	listing, err := uc.repo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return "", ErrListingNotFound
		}
		return "", err
	}
	if listing.SellerID != userID {
		uc.logger.Warn("forbidden to upload image",
			zap.String("listing_id", listingID), zap.String("user_id", userID))
		return "", ErrForbidden
	}
	if len(listing.Images) >= MaxImagesPerListing {
		return "", ErrTooManyImages
	}

	url, err := uc.storage.Upload(ctx, fileName, data)
	if err != nil {
		uc.logger.Error("image upload failed",
			zap.String("listing_id", listingID), zap.String("file", fileName), zap.Error(err))
		return "", err
	}

	listing.Images = append(listing.Images, url)
	listing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, listing); err != nil {
		return "", err
	}
	return url, nil
}

// ImageURLs returns the listing's image references in upload order.
func (uc *PhotoUsecase) ImageURLs(ctx context.Context, listingID string) ([]string, error) {
	listing, err := uc.repo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return listing.Images, nil
}
