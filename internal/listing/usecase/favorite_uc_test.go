package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

type fakeFavoriteRepo struct {
	favorites []*domain.Favorite
	nextID    int
}

func (r *fakeFavoriteRepo) Add(_ context.Context, f *domain.Favorite) error {
	for _, existing := range r.favorites {
		if existing.UserID == f.UserID && existing.ListingID == f.ListingID {
			return domain.ErrDuplicateFavorite
		}
	}
	r.nextID++
	f.ID = fmt.Sprintf("fav-%d", r.nextID)
	r.favorites = append(r.favorites, f)
	return nil
}

func (r *fakeFavoriteRepo) Remove(_ context.Context, userID, listingID string) error {
	for i, f := range r.favorites {
		if f.UserID == userID && f.ListingID == listingID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return domain.ErrFavoriteNotFound
}

func (r *fakeFavoriteRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Favorite, error) {
	var out []*domain.Favorite
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func TestFavoriteLifecycle(t *testing.T) {
	uc := NewFavoriteUsecase(&fakeFavoriteRepo{}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, uc.AddFavorite(ctx, "buyer-1", "listing-1"))
	require.NoError(t, uc.AddFavorite(ctx, "buyer-1", "listing-2"))
	require.NoError(t, uc.AddFavorite(ctx, "buyer-2", "listing-1"))

	mine, err := uc.GetFavorites(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	require.NoError(t, uc.RemoveFavorite(ctx, "buyer-1", "listing-1"))
	mine, err = uc.GetFavorites(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestAddFavoriteTwiceFails(t *testing.T) {
	uc := NewFavoriteUsecase(&fakeFavoriteRepo{}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, uc.AddFavorite(ctx, "buyer-1", "listing-1"))
	err := uc.AddFavorite(ctx, "buyer-1", "listing-1")
	assert.ErrorIs(t, err, domain.ErrDuplicateFavorite)
}

func TestRemoveFavoriteUnknown(t *testing.T) {
	uc := NewFavoriteUsecase(&fakeFavoriteRepo{}, zap.NewNop())
	err := uc.RemoveFavorite(context.Background(), "buyer-1", "never-added")
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}
