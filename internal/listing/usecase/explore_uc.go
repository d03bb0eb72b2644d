package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

var ErrEntryNotFound = errors.New("explore entry not found")

type ExploreUsecase struct {
	repo   domain.ExploreRepository
	logger *zap.Logger
}

func NewExploreUsecase(repo domain.ExploreRepository, logger *zap.Logger) *ExploreUsecase {
	return &ExploreUsecase{
		repo:   repo,
		logger: logger.Named("ExploreUsecase"),
	}
}

func (uc *ExploreUsecase) CreateEntry(ctx context.Context, list, material, location string, price float64) (*domain.ExploreEntry, error) {
	uc.logger.Info("creating explore entry", zap.String("material", material), zap.String("location", location))

	entry := &domain.ExploreEntry{
		List:      list,
		Material:  material,
		Location:  location,
		Price:     price,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		uc.logger.Error("failed to create explore entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// UpdateEntry keeps existing field values where the input is zero-valued.
func (uc *ExploreUsecase) UpdateEntry(ctx context.Context, id, list, material, location string, price float64) (*domain.ExploreEntry, error) {
	entry, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if list != "" {
		entry.List = list
	}
	if material != "" {
		entry.Material = material
	}
	if location != "" {
		entry.Location = location
	}
	if price > 0 {
		entry.Price = price
	}
	entry.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, entry); err != nil {
		uc.logger.Error("failed to update explore entry", zap.String("entry_id", id), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (uc *ExploreUsecase) DeleteEntry(ctx context.Context, id string) error {
	if _, err := uc.findExisting(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete explore entry", zap.String("entry_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (uc *ExploreUsecase) GetEntryByID(ctx context.Context, id string) (*domain.ExploreEntry, error) {
	return uc.findExisting(ctx, id)
}

func (uc *ExploreUsecase) ListEntries(ctx context.Context) ([]*domain.ExploreEntry, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *ExploreUsecase) findExisting(ctx context.Context, id string) (*domain.ExploreEntry, error) {
	entry, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}
