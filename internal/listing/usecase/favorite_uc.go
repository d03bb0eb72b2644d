package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

type FavoriteUsecase struct {
	repo   domain.FavoriteRepository
	logger *zap.Logger
}

func NewFavoriteUsecase(repo domain.FavoriteRepository, logger *zap.Logger) *FavoriteUsecase {
	return &FavoriteUsecase{
		repo:   repo,
		logger: logger.Named("FavoriteUsecase"),
	}
}

func (uc *FavoriteUsecase) AddFavorite(ctx context.Context, userID, listingID string) error {
	uc.logger.Info("adding favorite", zap.String("user_id", userID), zap.String("listing_id", listingID))
	favorite := &domain.Favorite{
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now(),
	}
	err := uc.repo.Add(ctx, favorite)
	if err != nil {
		uc.logger.Error("failed to add favorite",
			zap.String("user_id", userID), zap.String("listing_id", listingID), zap.Error(err))
	}
	return err
}

func (uc *FavoriteUsecase) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	uc.logger.Info("removing favorite", zap.String("user_id", userID), zap.String("listing_id", listingID))
	err := uc.repo.Remove(ctx, userID, listingID)
	if err != nil {
		uc.logger.Error("failed to remove favorite",
			zap.String("user_id", userID), zap.String("listing_id", listingID), zap.Error(err))
	}
	return err
}

func (uc *FavoriteUsecase) GetFavorites(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	favorites, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to fetch favorites", zap.String("user_id", userID), zap.Error(err))
	}
	return favorites, err
}
