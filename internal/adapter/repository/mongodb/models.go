package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

// listingDocument is the persisted shape of a Listing.
type listingDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SellerID    string             `bson:"seller_id"`
	Title       string             `bson:"title"`
	Material    string             `bson:"material_type"`
	Condition   string             `bson:"condition,omitempty"`
	Price       float64            `bson:"price"`
	Quantity    float64            `bson:"quantity"`
	Unit        string             `bson:"unit"`
	Location    string             `bson:"location"`
	Description string             `bson:"description,omitempty"`
	Images      []string           `bson:"images,omitempty"`
	Seller      sellerDocument     `bson:"seller"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type sellerDocument struct {
	ID     string  `bson:"id"`
	Name   string  `bson:"name"`
	Email  string  `bson:"email"`
	Phone  string  `bson:"phone,omitempty"`
	Rating float64 `bson:"rating,omitempty"`
}

type exploreDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	List      string             `bson:"list"`
	Material  string             `bson:"material"`
	Location  string             `bson:"location"`
	Price     float64            `bson:"price"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type favoriteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	ListingID string             `bson:"listing_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func toListingDocument(l *domain.Listing) (*listingDocument, error) {
	if l == nil {
		return nil, nil
	}

	docID := primitive.NilObjectID
	if l.ID != "" {
		var err error
		docID, err = primitive.ObjectIDFromHex(l.ID)
		if err != nil {
			return nil, fmt.Errorf("toListingDocument: invalid listing ID %q: %w", l.ID, err)
		}
	}

	return &listingDocument{
		ID:          docID,
		SellerID:    l.SellerID,
		Title:       l.Title,
		Material:    string(l.Material),
		Condition:   string(l.Condition),
		Price:       l.Price,
		Quantity:    l.Quantity,
		Unit:        l.Unit,
		Location:    l.Location,
		Description: l.Description,
		Images:      l.Images,
		Seller: sellerDocument{
			ID:     l.Seller.ID,
			Name:   l.Seller.Name,
			Email:  l.Seller.Email,
			Phone:  l.Seller.Phone,
			Rating: l.Seller.Rating,
		},
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}, nil
}

func toDomainListing(d *listingDocument) *domain.Listing {
	if d == nil {
		return nil
	}
	return &domain.Listing{
		ID:          d.ID.Hex(),
		SellerID:    d.SellerID,
		Title:       d.Title,
		Material:    domain.Material(d.Material),
		Condition:   domain.Condition(d.Condition),
		Price:       d.Price,
		Quantity:    d.Quantity,
		Unit:        d.Unit,
		Location:    d.Location,
		Description: d.Description,
		Images:      d.Images,
		Seller: domain.Seller{
			ID:     d.Seller.ID,
			Name:   d.Seller.Name,
			Email:  d.Seller.Email,
			Phone:  d.Seller.Phone,
			Rating: d.Seller.Rating,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDomainListings(docs []*listingDocument) []*domain.Listing {
	listings := make([]*domain.Listing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, toDomainListing(doc))
	}
	return listings
}

func toDomainEntry(d *exploreDocument) *domain.ExploreEntry {
	if d == nil {
		return nil
	}
	return &domain.ExploreEntry{
		ID:        d.ID.Hex(),
		List:      d.List,
		Material:  d.Material,
		Location:  d.Location,
		Price:     d.Price,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDomainFavorite(d *favoriteDocument) *domain.Favorite {
	if d == nil {
		return nil
	}
	return &domain.Favorite{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		ListingID: d.ListingID,
		CreatedAt: d.CreatedAt,
	}
}
