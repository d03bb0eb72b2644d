package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
	"github.com/deepakkode/scrap-marketplace/internal/listing/query"
	"github.com/deepakkode/scrap-marketplace/internal/platform/metrics"
)

type fakeListingRepo struct {
	listings map[string]*domain.Listing
	nextID   int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*domain.Listing)}
}

func (r *fakeListingRepo) Create(_ context.Context, l *domain.Listing) error {
	r.nextID++
	l.ID = fmt.Sprintf("listing-%d", r.nextID)
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) Update(_ context.Context, l *domain.Listing) error {
	if _, ok := r.listings[l.ID]; !ok {
		return domain.ErrListingNotFound
	}
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *fakeListingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.listings[id]; !ok {
		return domain.ErrListingNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeListingRepo) FindAll(_ context.Context) ([]*domain.Listing, error) {
	out := make([]*domain.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeListingRepo) FindBySellerID(_ context.Context, sellerID string) ([]*domain.Listing, error) {
	var out []*domain.Listing
	for _, l := range r.listings {
		if l.SellerID == sellerID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCache struct {
	entries map[string]*domain.Listing
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*domain.Listing)}
}

func (c *fakeCache) GetListing(_ context.Context, id string) (*domain.Listing, error) {
	if l, ok := c.entries[id]; ok {
		c.hits++
		return l, nil
	}
	return nil, nil
}

func (c *fakeCache) SetListing(_ context.Context, l *domain.Listing) error {
	c.entries[l.ID] = l
	return nil
}

func (c *fakeCache) DeleteListing(_ context.Context, id string) error {
	delete(c.entries, id)
	return nil
}

type fakeEvents struct {
	subjects []string
}

func (e *fakeEvents) Publish(_ context.Context, subject string, _ interface{}) error {
	e.subjects = append(e.subjects, subject)
	return nil
}

type fakeMailer struct {
	createdEmails []string
	inquiries     []string
}

func (m *fakeMailer) SendListingCreatedEmail(toEmail, _ string) error {
	m.createdEmails = append(m.createdEmails, toEmail)
	return nil
}

func (m *fakeMailer) SendInquiryEmail(l *domain.Listing, buyerName, _, message string) error {
	m.inquiries = append(m.inquiries, buyerName+": "+message+" re "+l.Title)
	return nil
}

func newTestUsecase() (*ListingUsecase, *fakeListingRepo, *fakeCache, *fakeEvents, *fakeMailer) {
	repo := newFakeListingRepo()
	cch := newFakeCache()
	events := &fakeEvents{}
	mail := &fakeMailer{}
	uc := NewListingUsecase(repo, cch, events, mail, nil, zap.NewNop())
	return uc, repo, cch, events, mail
}

func validInput() CreateListingInput {
	return CreateListingInput{
		SellerID:  "seller-1",
		Title:     "Copper wire offcuts",
		Material:  domain.MaterialCopper,
		Condition: domain.ConditionGood,
		Price:     4.5,
		Quantity:  120,
		Location:  "Pune",
		Seller:    domain.Seller{ID: "seller-1", Name: "Asha Metals", Email: "asha@example.com"},
	}
}

func TestCreateListingDefaultsUnitAndNotifies(t *testing.T) {
	uc, repo, _, events, mail := newTestUsecase()

	listing, err := uc.CreateListing(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "kg", listing.Unit)
	assert.NotNil(t, listing.Images)
	assert.Len(t, repo.listings, 1)
	assert.Equal(t, []string{SubjectListingCreated}, events.subjects)
	assert.Equal(t, []string{"asha@example.com"}, mail.createdEmails)
}

func TestCreateListingRejectsBadData(t *testing.T) {
	uc, _, _, _, _ := newTestUsecase()

	for name, mutate := range map[string]func(*CreateListingInput){
		"missing material":  func(in *CreateListingInput) { in.Material = "" },
		"missing location":  func(in *CreateListingInput) { in.Location = "" },
		"negative price":    func(in *CreateListingInput) { in.Price = -1 },
		"zero quantity":     func(in *CreateListingInput) { in.Quantity = 0 },
		"negative quantity": func(in *CreateListingInput) { in.Quantity = -5 },
	} {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := uc.CreateListing(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidListingData)
		})
	}
}

func TestUpdateListingOnlyByOwner(t *testing.T) {
	uc, _, _, _, _ := newTestUsecase()
	listing, err := uc.CreateListing(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uc.UpdateListing(context.Background(), listing.ID, "someone-else", UpdateListingInput{Price: 9})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateListingKeepsUnsetFields(t *testing.T) {
	uc, _, _, _, _ := newTestUsecase()
	listing, err := uc.CreateListing(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := uc.UpdateListing(context.Background(), listing.ID, "seller-1", UpdateListingInput{Price: 6.0})
	require.NoError(t, err)

	assert.Equal(t, 6.0, updated.Price)
	assert.Equal(t, listing.Title, updated.Title)
	assert.Equal(t, listing.Material, updated.Material)
	assert.Equal(t, listing.Quantity, updated.Quantity)
	assert.Equal(t, listing.Location, updated.Location)
}

func TestUpdateListingInvalidatesCache(t *testing.T) {
	uc, _, cch, _, _ := newTestUsecase()
	listing, err := uc.CreateListing(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uc.GetListingByID(context.Background(), listing.ID)
	require.NoError(t, err)
	require.Contains(t, cch.entries, listing.ID)

	_, err = uc.UpdateListing(context.Background(), listing.ID, "seller-1", UpdateListingInput{Price: 7})
	require.NoError(t, err)
	assert.NotContains(t, cch.entries, listing.ID)
}

func TestDeleteListing(t *testing.T) {
	uc, repo, _, events, _ := newTestUsecase()
	listing, err := uc.CreateListing(context.Background(), validInput())
	require.NoError(t, err)

	err = uc.DeleteListing(context.Background(), listing.ID, "intruder")
	assert.ErrorIs(t, err, ErrForbidden)

	err = uc.DeleteListing(context.Background(), listing.ID, "seller-1")
	require.NoError(t, err)
	assert.Empty(t, repo.listings)
	assert.Contains(t, events.subjects, SubjectListingDeleted)

	err = uc.DeleteListing(context.Background(), listing.ID, "seller-1")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestGetListingByIDReadsThroughCache(t *testing.T) {
	uc, _, cch, _, _ := newTestUsecase()
	listing, err := uc.CreateListing(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uc.GetListingByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, cch.hits)

	_, err = uc.GetListingByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cch.hits)
}

func TestGetListingByIDNotFound(t *testing.T) {
	uc, _, _, _, _ := newTestUsecase()
	_, err := uc.GetListingByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestSearchListingsFiltersAndPages(t *testing.T) {
	uc, _, _, _, _ := newTestUsecase()

	for i := 0; i < 5; i++ {
		in := validInput()
		in.Title = fmt.Sprintf("Copper batch %d", i)
		in.Price = float64(i + 1)
		_, err := uc.CreateListing(context.Background(), in)
		require.NoError(t, err)
	}
	steel := validInput()
	steel.Title = "Steel beams"
	steel.Material = domain.MaterialSteel
	_, err := uc.CreateListing(context.Background(), steel)
	require.NoError(t, err)

	res, err := uc.SearchListings(context.Background(), query.Spec{
		Filters:  query.Filters{Material: "copper"},
		Sort:     query.SortPriceLow,
		Page:     1,
		PageSize: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)
	require.Len(t, res.Items, 3)
	assert.Equal(t, 1.0, res.Items[0].Price)
	for _, l := range res.Items {
		assert.Equal(t, domain.MaterialCopper, l.Material)
	}
	require.Len(t, res.ActiveFilters, 1)
	assert.Equal(t, "Material: copper", res.ActiveFilters[0].Label)
}

func TestContactSellerSendsInquiry(t *testing.T) {
	uc, _, _, _, mail := newTestUsecase()
	listing, err := uc.CreateListing(context.Background(), validInput())
	require.NoError(t, err)

	err = uc.ContactSeller(context.Background(), listing.ID, "Ravi", "ravi@example.com", "Is this still available?")
	require.NoError(t, err)
	require.Len(t, mail.inquiries, 1)
	assert.True(t, strings.Contains(mail.inquiries[0], "Is this still available?"))
}

func TestContactSellerUnknownListing(t *testing.T) {
	uc, _, _, _, _ := newTestUsecase()
	err := uc.ContactSeller(context.Background(), "missing", "Ravi", "ravi@example.com", "hello")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestNilCacheAndEventsAreTolerated(t *testing.T) {
	repo := newFakeListingRepo()
	uc := NewListingUsecase(repo, nil, nil, nil, nil, zap.NewNop())

	listing, err := uc.CreateListing(context.Background(), validInput())
	require.NoError(t, err)

	got, err := uc.GetListingByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, got.ID)

	_, err = uc.UpdateListing(context.Background(), listing.ID, "seller-1", UpdateListingInput{Price: 2})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteListing(context.Background(), listing.ID, "seller-1"))
}

func TestListingLifecycleIncrementsCounters(t *testing.T) {
	repo := newFakeListingRepo()
	m := metrics.NewManager("scrap_marketplace")
	uc := NewListingUsecase(repo, nil, nil, nil, m, zap.NewNop())

	listing, err := uc.CreateListing(context.Background(), validInput())
	require.NoError(t, err)
	_, err = uc.UpdateListing(context.Background(), listing.ID, "seller-1", UpdateListingInput{Price: 2})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteListing(context.Background(), listing.ID, "seller-1"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ListingsCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ListingUpdatesTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ListingDeletesTotal))

	_, err = uc.CreateListing(context.Background(), CreateListingInput{})
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ListingsCreatedTotal))
}

func TestCreateListingSetsPostedDateOnce(t *testing.T) {
	uc, _, _, _, _ := newTestUsecase()
	listing, err := uc.CreateListing(context.Background(), validInput())
	require.NoError(t, err)
	posted := listing.CreatedAt

	time.Sleep(10 * time.Millisecond)
	updated, err := uc.UpdateListing(context.Background(), listing.ID, "seller-1", UpdateListingInput{Price: 3})
	require.NoError(t, err)

	assert.Equal(t, posted, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(posted))
}
