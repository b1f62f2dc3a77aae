package listing

import (
	"context"
	"errors"
	"testing"

	listingRepo "stayhaven/database/repository/listing"
	"stayhaven/models"
	"stayhaven/services/geo"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeListingRepo struct {
	byID      map[string]*models.Listing
	created   []*models.Listing
	createErr error

	lastQuery listingRepo.ListingQuery
	lastSort  int
	searched  []models.Listing
	total     int64
}

func (f *fakeListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	l, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeListingRepo) Create(ctx context.Context, l *models.Listing) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, l)
	return nil
}

func (f *fakeListingRepo) Search(ctx context.Context, q listingRepo.ListingQuery, priceSort, limit, page int) ([]models.Listing, int64, error) {
	f.lastQuery = q
	f.lastSort = priceSort
	return f.searched, f.total, nil
}

func (f *fakeListingRepo) GetManyByIDs(ctx context.Context, ids []string, limit, page int) ([]models.Listing, error) {
	return nil, nil
}

type fakeUserRepo struct {
	appended map[string][]string
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error             { return nil }
func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id, name, avatar, contact, tokenHash string) error {
	return nil
}
func (f *fakeUserRepo) SetSessionToken(ctx context.Context, id, tokenHash string) error { return nil }
func (f *fakeUserRepo) SetWallet(ctx context.Context, id, walletID string) error        { return nil }
func (f *fakeUserRepo) AppendListing(ctx context.Context, id, listingID string) error {
	if f.appended == nil {
		f.appended = make(map[string][]string)
	}
	f.appended[id] = append(f.appended[id], listingID)
	return nil
}

type fakeGeocoder struct {
	region geo.Region
	err    error
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (geo.Region, error) {
	return f.region, f.err
}

type fakeStorage struct {
	url      string
	publicID string
	err      error

	deleted []string
}

func (f *fakeStorage) UploadListingImage(ctx context.Context, image string) (string, string, error) {
	return f.url, f.publicID, f.err
}

func (f *fakeStorage) DeleteImage(ctx context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

func newService(repo *fakeListingRepo, users *fakeUserRepo, geocoder *fakeGeocoder, store *fakeStorage) *DefaultListingService {
	return &DefaultListingService{
		Repo:     repo,
		UserRepo: users,
		Geocoder: geocoder,
		Storage:  store,
		Logger:   zap.NewNop(),
	}
}

func TestGetByIDAuthorizesHost(t *testing.T) {
	repo := &fakeListingRepo{byID: map[string]*models.Listing{
		"l1": {ID: "l1", Host: "h1"},
	}}
	svc := newService(repo, &fakeUserRepo{}, &fakeGeocoder{}, &fakeStorage{})

	found, err := svc.GetByID(context.Background(), "l1", &models.User{ID: "h1"})
	require.NoError(t, err)
	require.True(t, found.Authorized)

	found, err = svc.GetByID(context.Background(), "l1", &models.User{ID: "someone-else"})
	require.NoError(t, err)
	require.False(t, found.Authorized)

	_, err = svc.GetByID(context.Background(), "missing", nil)
	require.EqualError(t, err, "listing can't be found")
}

func TestSearchGeocodesLocation(t *testing.T) {
	repo := &fakeListingRepo{total: 2, searched: []models.Listing{{ID: "a"}, {ID: "b"}}}
	geocoder := &fakeGeocoder{region: geo.Region{City: "toronto", Admin: "ontario", Country: "canada"}}
	svc := newService(repo, &fakeUserRepo{}, geocoder, &fakeStorage{})

	result, err := svc.Search(context.Background(), "toronto", models.ListingsFilterPriceLowToHigh, 10, 1)
	require.NoError(t, err)

	require.Equal(t, "Toronto, Ontario, Canada", result.Region)
	require.Equal(t, listingRepo.ListingQuery{City: "Toronto", Admin: "Ontario", Country: "Canada"}, repo.lastQuery)
	require.Equal(t, 1, repo.lastSort)
	require.EqualValues(t, 2, result.Total)
	require.Len(t, result.Result, 2)
}

func TestCapitalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"toronto", "Toronto"},
		{"new york", "New York"},
		{"île-de-france", "Île-de-france"},
		{"Île-de-France", "Île-de-france"},
		{"ÎLE-DE-FRANCE", "Île-de-france"},
		{"łódź", "Łódź"},
		{"", ""},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, capitalize(tc.in), "capitalize(%q)", tc.in)
	}
}

func TestSearchKeepsAccentedRegions(t *testing.T) {
	repo := &fakeListingRepo{}
	geocoder := &fakeGeocoder{region: geo.Region{City: "paris", Admin: "île-de-france", Country: "france"}}
	svc := newService(repo, &fakeUserRepo{}, geocoder, &fakeStorage{})

	result, err := svc.Search(context.Background(), "paris", models.ListingsFilterPriceLowToHigh, 10, 1)
	require.NoError(t, err)

	require.Equal(t, "Paris, Île-de-france, France", result.Region)
	require.Equal(t, "Île-de-france", repo.lastQuery.Admin)
}

func TestSearchWithoutLocationSkipsGeocoding(t *testing.T) {
	repo := &fakeListingRepo{}
	geocoder := &fakeGeocoder{err: errors.New("must not be called")}
	svc := newService(repo, &fakeUserRepo{}, geocoder, &fakeStorage{})

	result, err := svc.Search(context.Background(), "", models.ListingsFilterPriceHighToLow, 10, 1)
	require.NoError(t, err)
	require.Empty(t, result.Region)
	require.Equal(t, -1, repo.lastSort)
}

func TestSearchRequiresCountry(t *testing.T) {
	geocoder := &fakeGeocoder{region: geo.Region{City: "nowhere"}}
	svc := newService(&fakeListingRepo{}, &fakeUserRepo{}, geocoder, &fakeStorage{})

	_, err := svc.Search(context.Background(), "nowhere", models.ListingsFilterPriceLowToHigh, 10, 1)
	require.EqualError(t, err, "no country found for location")
}

func TestHostCreatesListing(t *testing.T) {
	repo := &fakeListingRepo{}
	users := &fakeUserRepo{}
	geocoder := &fakeGeocoder{region: geo.Region{City: "Toronto", Admin: "Ontario", Country: "Canada"}}
	store := &fakeStorage{url: "https://cdn.example.com/img.jpg"}
	svc := newService(repo, users, geocoder, store)

	input := models.HostListingInput{
		Title:       "Lakeside house",
		Description: "Big windows",
		Type:        models.ListingTypeHouse,
		Image:       "data:image/jpeg;base64,abc",
		Address:     "12 Lakeshore Blvd, Toronto",
		Price:       20000,
		NumOfGuests: 4,
	}

	created, err := svc.Host(context.Background(), &models.User{ID: "h1"}, input)
	require.NoError(t, err)

	require.NotEmpty(t, created.ID)
	require.Equal(t, "h1", created.Host)
	require.Equal(t, "https://cdn.example.com/img.jpg", created.Image)
	require.Equal(t, "Canada", created.Country)
	require.Equal(t, "Ontario", created.Admin)
	require.Equal(t, "Toronto", created.City)
	require.NotNil(t, created.Bookings)
	require.Empty(t, created.Bookings)
	require.NotNil(t, created.Index)

	require.Len(t, repo.created, 1)
	require.Equal(t, []string{created.ID}, users.appended["h1"])
}

func TestHostDeletesImageWhenCreateFails(t *testing.T) {
	repo := &fakeListingRepo{createErr: errors.New("insert failed")}
	geocoder := &fakeGeocoder{region: geo.Region{City: "Toronto", Admin: "Ontario", Country: "Canada"}}
	store := &fakeStorage{url: "https://cdn.example.com/img.jpg", publicID: "stayhaven/listings/img"}
	svc := newService(repo, &fakeUserRepo{}, geocoder, store)

	input := models.HostListingInput{
		Title:       "Lakeside house",
		Description: "Big windows",
		Type:        models.ListingTypeHouse,
		Image:       "data:image/jpeg;base64,abc",
		Address:     "12 Lakeshore Blvd, Toronto",
		Price:       20000,
		NumOfGuests: 4,
	}

	_, err := svc.Host(context.Background(), &models.User{ID: "h1"}, input)
	require.EqualError(t, err, "insert failed")
	require.Equal(t, []string{"stayhaven/listings/img"}, store.deleted)
}

func TestHostRejectsIncompleteAddress(t *testing.T) {
	geocoder := &fakeGeocoder{region: geo.Region{Country: "Canada"}}
	svc := newService(&fakeListingRepo{}, &fakeUserRepo{}, geocoder, &fakeStorage{})

	input := models.HostListingInput{
		Title:       "Lakeside house",
		Description: "Big windows",
		Type:        models.ListingTypeHouse,
		Address:     "somewhere",
		Price:       20000,
	}

	_, err := svc.Host(context.Background(), &models.User{ID: "h1"}, input)
	require.EqualError(t, err, "invalid address input")
}

func TestHostRequiresViewer(t *testing.T) {
	svc := newService(&fakeListingRepo{}, &fakeUserRepo{}, &fakeGeocoder{}, &fakeStorage{})

	_, err := svc.Host(context.Background(), nil, models.HostListingInput{})
	require.EqualError(t, err, "viewer cannot be found")
}
