package usecase

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
	"github.com/deepakkode/scrap-marketplace/internal/listing/query"
	"github.com/deepakkode/scrap-marketplace/internal/mailer"
	"github.com/deepakkode/scrap-marketplace/internal/platform/metrics"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrForbidden       = errors.New("user not authorized to perform this action")
)

var tracer = otel.Tracer("scrap-marketplace/listing-usecase")

// EventPublisher fans listing lifecycle events out to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
}

// ListingCache is the read-through cache in front of single-listing lookups.
type ListingCache interface {
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	SetListing(ctx context.Context, listing *domain.Listing) error
	DeleteListing(ctx context.Context, id string) error
}

const (
	SubjectListingCreated = "listing.created"
	SubjectListingUpdated = "listing.updated"
	SubjectListingDeleted = "listing.deleted"
)

type ListingUsecase struct {
	repo    domain.ListingRepository
	cache   ListingCache
	events  EventPublisher
	mail    mailer.Sender
	metrics *metrics.Manager
	logger  *zap.Logger
}

// NewListingUsecase wires the listing service. cache, events, mail and
// metricsManager may be nil; the corresponding side effects are skipped.
func NewListingUsecase(repo domain.ListingRepository, cache ListingCache, events EventPublisher, mail mailer.Sender, metricsManager *metrics.Manager, logger *zap.Logger) *ListingUsecase {
	return &ListingUsecase{
		repo:    repo,
		cache:   cache,
		events:  events,
		mail:    mail,
		metrics: metricsManager,
		logger:  logger.Named("ListingUsecase"),
	}
}

// CreateListingInput carries everything needed to post a new offer. The
// seller sub-record is denormalized from the authenticated user.
type CreateListingInput struct {
	SellerID    string
	Title       string
	Material    domain.Material
	Condition   domain.Condition
	Price       float64
	Quantity    float64
	Unit        string
	Location    string
	Description string
	Seller      domain.Seller
}

func (uc *ListingUsecase) CreateListing(ctx context.Context, in CreateListingInput) (*domain.Listing, error) {
	uc.logger.Info("creating new listing",
		zap.String("seller_id", in.SellerID), zap.String("material", string(in.Material)))

	if in.Material == "" || in.Location == "" || in.Price < 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidListingData
	}
	if in.Unit == "" {
		in.Unit = "kg"
	}

	listing := &domain.Listing{
		SellerID:    in.SellerID,
		Title:       in.Title,
		Material:    in.Material,
		Condition:   in.Condition,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Location:    in.Location,
		Description: in.Description,
		Images:      []string{},
		Seller:      in.Seller,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, listing); err != nil {
		uc.logger.Error("failed to create listing", zap.String("seller_id", in.SellerID), zap.Error(err))
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ListingsCreatedTotal.Inc()
	}
	uc.publish(ctx, SubjectListingCreated, listing)
	if uc.mail != nil && listing.Seller.Email != "" {
		if err := uc.mail.SendListingCreatedEmail(listing.Seller.Email, listing.Title); err != nil {
			uc.logger.Warn("failed to send listing-created email",
				zap.String("listing_id", listing.ID), zap.Error(err))
		}
	}
	return listing, nil
}

// UpdateListingInput fields at their zero value keep the current ones,
// matching the PUT semantics of the REST surface.
type UpdateListingInput struct {
	Material    domain.Material
	Condition   domain.Condition
	Price       float64
	Quantity    float64
	Location    string
	Title       string
	Description string
	Images      []string
}

func (uc *ListingUsecase) UpdateListing(ctx context.Context, id, userID string, in UpdateListingInput) (*domain.Listing, error) {
	uc.logger.Info("updating listing", zap.String("listing_id", id), zap.String("user_id", userID))

	listing, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.SellerID != userID {
		uc.logger.Warn("forbidden to update listing",
			zap.String("listing_id", id), zap.String("owner_id", listing.SellerID), zap.String("user_id", userID))
		return nil, ErrForbidden
	}

	if in.Material != "" {
		listing.Material = in.Material
	}
	if in.Condition != "" {
		listing.Condition = in.Condition
	}
	if in.Price > 0 {
		listing.Price = in.Price
	}
	if in.Quantity > 0 {
		listing.Quantity = in.Quantity
	}
	if in.Location != "" {
		listing.Location = in.Location
	}
	if in.Title != "" {
		listing.Title = in.Title
	}
	if in.Description != "" {
		listing.Description = in.Description
	}
	if len(in.Images) > 0 {
		listing.Images = in.Images
	}
	listing.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, listing); err != nil {
		uc.logger.Error("failed to update listing", zap.String("listing_id", id), zap.Error(err))
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ListingUpdatesTotal.Inc()
	}
	uc.invalidate(ctx, id)
	uc.publish(ctx, SubjectListingUpdated, listing)
	return listing, nil
}

func (uc *ListingUsecase) DeleteListing(ctx context.Context, id, userID string) error {
	uc.logger.Info("deleting listing", zap.String("listing_id", id), zap.String("user_id", userID))

	listing, err := uc.findExisting(ctx, id)
	if err != nil {
		return err
	}
	if listing.SellerID != userID {
		uc.logger.Warn("forbidden to delete listing",
			zap.String("listing_id", id), zap.String("owner_id", listing.SellerID), zap.String("user_id", userID))
		return ErrForbidden
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete listing", zap.String("listing_id", id), zap.Error(err))
		return err
	}

	if uc.metrics != nil {
		uc.metrics.ListingDeletesTotal.Inc()
	}
	uc.invalidate(ctx, id)
	uc.publish(ctx, SubjectListingDeleted, listing)
	return nil
}

func (uc *ListingUsecase) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.GetListing(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	listing, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetListing(ctx, listing); err != nil {
			uc.logger.Warn("failed to cache listing", zap.String("listing_id", id), zap.Error(err))
		}
	}
	return listing, nil
}

func (uc *ListingUsecase) ListListings(ctx context.Context) ([]*domain.Listing, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *ListingUsecase) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Listing, error) {
	return uc.repo.FindBySellerID(ctx, sellerID)
}

// SearchListings evaluates the query spec against the full collection.
func (uc *ListingUsecase) SearchListings(ctx context.Context, spec query.Spec) (*query.Result, error) {
	ctx, span := tracer.Start(ctx, "SearchListings")
	defer span.End()
	span.SetAttributes(
		attribute.String("search.text", spec.SearchText),
		attribute.String("search.sort", string(spec.Sort)),
		attribute.Int("search.page", spec.Page),
	)

	listings, err := uc.repo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("failed to load listings for search", zap.Error(err))
		return nil, err
	}

	res, err := query.Run(listings, spec)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("search.total_count", res.TotalCount))
	return res, nil
}

// ContactSeller mails a buyer inquiry to the listing's seller.
func (uc *ListingUsecase) ContactSeller(ctx context.Context, listingID, buyerName, buyerEmail, message string) error {
	uc.logger.Info("contacting seller", zap.String("listing_id", listingID))

	listing, err := uc.findExisting(ctx, listingID)
	if err != nil {
		return err
	}
	if uc.mail == nil || listing.Seller.Email == "" {
		return domain.ErrInvalidListingData
	}
	return uc.mail.SendInquiryEmail(listing, buyerName, buyerEmail, message)
}

func (uc *ListingUsecase) findExisting(ctx context.Context, id string) (*domain.Listing, error) {
	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

func (uc *ListingUsecase) publish(ctx context.Context, subject string, listing *domain.Listing) {
	if uc.events == nil {
		return
	}
	if err := uc.events.Publish(ctx, subject, listing); err != nil {
		uc.logger.Warn("failed to publish event",
			zap.String("subject", subject), zap.String("listing_id", listing.ID), zap.Error(err))
	}
}

func (uc *ListingUsecase) invalidate(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteListing(ctx, id); err != nil {
		uc.logger.Warn("failed to invalidate cached listing", zap.String("listing_id", id), zap.Error(err))
	}
}
