package domain

import "time"

type Material string

const (
	MaterialPlastic     Material = "plastic"
	MaterialCotton      Material = "cotton"
	MaterialIron        Material = "iron"
	MaterialSteel       Material = "steel"
	MaterialAluminum    Material = "aluminum"
	MaterialCopper      Material = "copper"
	MaterialBrass       Material = "brass"
	MaterialPaper       Material = "paper"
	MaterialCardboard   Material = "cardboard"
	MaterialElectronics Material = "electronics"
	MaterialBatteries   Material = "batteries"
)

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// Seller is the contact sub-record embedded in a Listing. It is denormalized
// from the user record so that feed and search responses carry everything a
// buyer needs without a second lookup.
type Seller struct {
	ID     string
	Name   string
	Email  string
	Phone  string
	Rating float64
}

// Listing is a single seller-posted offer of a scrap material.
// CreatedAt is the posted date: set once on creation, never mutated.
type Listing struct {
	ID          string
	SellerID    string
	Title       string
	Material    Material
	Condition   Condition
	Price       float64 // per unit, >= 0
	Quantity    float64 // > 0
	Unit        string  // e.g. "kg"
	Location    string
	Description string
	Images      []string // MinIO object URLs
	Seller      Seller
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExploreEntry is a curated row on the explore page, maintained separately
// from listings.
type ExploreEntry struct {
	ID        string
	List      string
	Material  string
	Location  string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Favorite struct {
	ID        string
	UserID    string
	ListingID string
	CreatedAt time.Time
}
