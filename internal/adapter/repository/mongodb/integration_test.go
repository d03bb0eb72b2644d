package mongodb

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
	"github.com/deepakkode/scrap-marketplace/internal/user"
)

var testDB *mongo.Database

// TestMain starts a disposable MongoDB container for the repository tests.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "5.0",
		Env: []string{
			"MONGO_INITDB_ROOT_USERNAME=root",
			"MONGO_INITDB_ROOT_PASSWORD=password",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start MongoDB resource: %s", err)
	}

	uri := fmt.Sprintf("mongodb://root:password@%s/?authSource=admin", resource.GetHostPort("27017/tcp"))

	var client *mongo.Client
	if err := pool.Retry(func() error {
		var errRetry error
		client, errRetry = mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
		if errRetry != nil {
			return errRetry
		}
		return client.Ping(context.Background(), nil)
	}); err != nil {
		log.Fatalf("Could not connect to MongoDB: %s", err)
	}

	testDB = client.Database("scrapconnect_test")

	code := m.Run()

	_ = client.Disconnect(context.Background())
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func sampleListing(sellerID string) *domain.Listing {
	return &domain.Listing{
		SellerID:    sellerID,
		Title:       "Copper wire offcuts",
		Material:    domain.MaterialCopper,
		Condition:   domain.ConditionGood,
		Price:       4.5,
		Quantity:    120,
		Unit:        "kg",
		Location:    "Pune",
		Description: "Clean single-strand offcuts",
		Images:      []string{"http://storage.local/images/a.jpg"},
		Seller: domain.Seller{
			ID:    sellerID,
			Name:  "Asha Metals",
			Email: "asha@example.com",
		},
	}
}

func TestListingRepositoryRoundTrip(t *testing.T) {
	repo := NewListingRepository(testDB)
	ctx := context.Background()

	listing := sampleListing("seller-rt")
	require.NoError(t, repo.Create(ctx, listing))
	require.NotEmpty(t, listing.ID)

	got, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.Title, got.Title)
	assert.Equal(t, domain.MaterialCopper, got.Material)
	assert.Equal(t, listing.Price, got.Price)
	assert.Equal(t, listing.Images, got.Images)
	assert.Equal(t, "Asha Metals", got.Seller.Name)
	assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)
}

func TestListingRepositoryUpdate(t *testing.T) {
	repo := NewListingRepository(testDB)
	ctx := context.Background()

	listing := sampleListing("seller-upd")
	require.NoError(t, repo.Create(ctx, listing))

	listing.Price = 9.9
	listing.Location = "Mumbai"
	require.NoError(t, repo.Update(ctx, listing))

	got, err := repo.FindByID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.9, got.Price)
	assert.Equal(t, "Mumbai", got.Location)
}

func TestListingRepositoryUpdateUnknownID(t *testing.T) {
	repo := NewListingRepository(testDB)

	ghost := sampleListing("seller-ghost")
	ghost.ID = "bbbbbbbbbbbbbbbbbbbbbbbb"
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestListingRepositoryDelete(t *testing.T) {
	repo := NewListingRepository(testDB)
	ctx := context.Background()

	listing := sampleListing("seller-del")
	require.NoError(t, repo.Create(ctx, listing))
	require.NoError(t, repo.Delete(ctx, listing.ID))

	_, err := repo.FindByID(ctx, listing.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	err = repo.Delete(ctx, listing.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	err = repo.Delete(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestListingRepositoryFindBySellerID(t *testing.T) {
	repo := NewListingRepository(testDB)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, sampleListing("seller-many")))
	}
	require.NoError(t, repo.Create(ctx, sampleListing("seller-other")))

	mine, err := repo.FindBySellerID(ctx, "seller-many")
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	none, err := repo.FindBySellerID(ctx, "seller-nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func sampleUser(email string) *user.User {
	return &user.User{
		Username:  "asha",
		Email:     email,
		Password:  "bcrypt-hash",
		Phone:     "555-0101",
		Role:      user.RoleSeller,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	repo := NewUserRepository(testDB, zap.NewNop())
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, sampleUser("Asha@Example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// Emails are stored and matched lowercased.
	byEmail, err := repo.GetUserByEmail(ctx, "ASHA@example.COM")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)
	assert.Equal(t, "asha@example.com", byEmail.Email)

	byID, err := repo.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "asha", byID.Username)
	assert.True(t, byID.IsActive)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(testDB, zap.NewNop())
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, sampleUser("dup@example.com"))
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, sampleUser("DUP@example.com"))
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestUserRepositoryUpdatePassword(t *testing.T) {
	repo := NewUserRepository(testDB, zap.NewNop())
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, sampleUser("pw@example.com"))
	require.NoError(t, err)

	require.NoError(t, repo.UpdatePassword(ctx, id, "new-bcrypt-hash"))

	got, err := repo.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new-bcrypt-hash", got.Password)

	err = repo.UpdatePassword(ctx, "bbbbbbbbbbbbbbbbbbbbbbbb", "hash")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepositoryDeactivate(t *testing.T) {
	repo := NewUserRepository(testDB, zap.NewNop())
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, sampleUser("gone@example.com"))
	require.NoError(t, err)

	require.NoError(t, repo.DeactivateUser(ctx, id))

	got, err := repo.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	assert.ErrorIs(t, repo.DeactivateUser(ctx, "no-hex"), user.ErrUserNotFound)
}
