package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/middleware"
	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
	"github.com/deepakkode/scrap-marketplace/internal/listing/query"
	"github.com/deepakkode/scrap-marketplace/internal/listing/usecase"
	"github.com/deepakkode/scrap-marketplace/internal/user"
)

// maxUploadBytes caps a multipart create/upload request at 10 MiB.
const maxUploadBytes = 10 << 20

type ListingHandler struct {
	listings *usecase.ListingUsecase
	photos   *usecase.PhotoUsecase
	users    *user.Usecase
	logger   *zap.Logger
}

func NewListingHandler(listings *usecase.ListingUsecase, photos *usecase.PhotoUsecase, users *user.Usecase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{listings: listings, photos: photos, users: users, logger: logger}
}

type sellerResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone,omitempty"`
	Rating float64 `json:"rating"`
}

type listingResponse struct {
	ID          string         `json:"id"`
	SellerID    string         `json:"sellerId"`
	Title       string         `json:"title"`
	Material    string         `json:"material"`
	Condition   string         `json:"condition"`
	Price       float64        `json:"price"`
	Quantity    float64        `json:"quantity"`
	Unit        string         `json:"unit"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Images      []string       `json:"images"`
	Seller      sellerResponse `json:"seller"`
	PostedDate  time.Time      `json:"postedDate"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func toListingResponse(l *domain.Listing) listingResponse {
	images := l.Images
	if images == nil {
		images = []string{}
	}
	return listingResponse{
		ID:          l.ID,
		SellerID:    l.SellerID,
		Title:       l.Title,
		Material:    string(l.Material),
		Condition:   string(l.Condition),
		Price:       l.Price,
		Quantity:    l.Quantity,
		Unit:        l.Unit,
		Location:    l.Location,
		Description: l.Description,
		Images:      images,
		Seller: sellerResponse{
			ID:     l.Seller.ID,
			Name:   l.Seller.Name,
			Email:  l.Seller.Email,
			Phone:  l.Seller.Phone,
			Rating: l.Seller.Rating,
		},
		PostedDate: l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toListingResponses(listings []*domain.Listing) []listingResponse {
	out := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	return out
}

// Create accepts a multipart form: the listing fields plus up to five
// image files under the "images" key.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	seller, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid price")
		return
	}
	quantity, err := strconv.ParseFloat(r.FormValue("quantity"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	in := usecase.CreateListingInput{
		SellerID:    userID,
		Title:       r.FormValue("title"),
		Material:    domain.Material(r.FormValue("material")),
		Condition:   domain.Condition(r.FormValue("condition")),
		Price:       price,
		Quantity:    quantity,
		Unit:        r.FormValue("unit"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
		Seller: domain.Seller{
			ID:    seller.ID,
			Name:  seller.Username,
			Email: seller.Email,
			Phone: seller.Phone,
		},
	}

	listing, err := h.listings.CreateListing(r.Context(), in)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) > usecase.MaxImagesPerListing {
		writeError(w, http.StatusBadRequest, "Too many images")
		return
	}
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid image upload")
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid image upload")
			return
		}
		if _, err := h.photos.UploadImage(r.Context(), listing.ID, userID, fh.Filename, data); err != nil {
			writeUsecaseError(w, err)
			return
		}
	}

	created, err := h.listings.GetListingByID(r.Context(), listing.ID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toListingResponse(created))
}

type updateListingRequest struct {
	Title       string   `json:"title"`
	Material    string   `json:"material"`
	Condition   string   `json:"condition"`
	Price       float64  `json:"price"`
	Quantity    float64  `json:"quantity"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	userID := middleware.UserIDFromContext(r.Context())

	updated, err := h.listings.UpdateListing(r.Context(), id, userID, usecase.UpdateListingInput{
		Title:       req.Title,
		Material:    domain.Material(req.Material),
		Condition:   domain.Condition(req.Condition),
		Price:       req.Price,
		Quantity:    req.Quantity,
		Location:    req.Location,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(updated))
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := middleware.UserIDFromContext(r.Context())

	if err := h.listings.DeleteListing(r.Context(), id, userID); err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Listing deleted"})
}

func (h *ListingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	listing, err := h.listings.GetListingByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponse(listing))
}

// List returns every listing, or only a single seller's when the seller
// query parameter is set.
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		listings []*domain.Listing
		err      error
	)
	if sellerID := r.URL.Query().Get("seller"); sellerID != "" {
		listings, err = h.listings.ListBySeller(r.Context(), sellerID)
	} else {
		listings, err = h.listings.ListListings(r.Context())
	}
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toListingResponses(listings))
}

type searchResponse struct {
	Items         []listingResponse `json:"items"`
	TotalCount    int               `json:"totalCount"`
	TotalPages    int               `json:"totalPages"`
	ActiveFilters []query.Chip      `json:"activeFilters"`
	PageWindow    []string          `json:"pageWindow"`
	Page          int               `json:"page"`
	PageSize      int               `json:"pageSize"`
}

// Search runs the explore query over the full collection. Every parameter
// is optional; malformed numeric filters simply do not constrain.
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	spec := query.Spec{
		SearchText: q.Get("q"),
		Filters: query.Filters{
			Material:  q.Get("material"),
			PriceMin:  q.Get("priceMin"),
			PriceMax:  q.Get("priceMax"),
			Location:  q.Get("location"),
			Condition: q["condition"],
			Quantity:  q.Get("quantity"),
			Seller:    q.Get("seller"),
			DateRange: query.ParseDateRange(q.Get("dateRange")),
		},
		Sort:     query.ParseSortKey(q.Get("sort")),
		Page:     positiveIntOr(q.Get("page"), 1),
		PageSize: positiveIntOr(q.Get("pageSize"), query.DefaultPageSize),
	}

	result, err := h.listings.SearchListings(r.Context(), spec)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Items:         toListingResponses(result.Items),
		TotalCount:    result.TotalCount,
		TotalPages:    result.TotalPages,
		ActiveFilters: result.ActiveFilters,
		PageWindow:    query.Window(spec.Page, result.TotalPages),
		Page:          spec.Page,
		PageSize:      spec.PageSize,
	})
}

func positiveIntOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

type contactRequest struct {
	Message string `json:"message"`
}

// Contact emails the listing's seller on behalf of the authenticated buyer.
func (h *ListingHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	buyer, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.listings.ContactSeller(r.Context(), id, buyer.Username, buyer.Email, req.Message); err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Message sent to seller"})
}

// UploadPhoto adds one image file ("image" form key) to an owned listing.
func (h *ListingHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	f, fh, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid image upload")
		return
	}

	id := chi.URLParam(r, "id")
	userID := middleware.UserIDFromContext(r.Context())
	url, err := h.photos.UploadImage(r.Context(), id, userID, fh.Filename, data)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

func (h *ListingHandler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	urls, err := h.photos.ImageURLs(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	if urls == nil {
		urls = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"images": urls})
}
