package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	listingRepo "stayhaven/database/repository/listing"
	"stayhaven/models"
	"stayhaven/tasks"

	"go.uber.org/zap"
)

type fakeListingRepo struct {
	listing *models.Listing
	getErr  error
}

func (f *fakeListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.listing == nil || f.listing.ID != id {
		return nil, nil
	}
	cp := *f.listing
	return &cp, nil
}

func (f *fakeListingRepo) Create(ctx context.Context, l *models.Listing) error { return nil }

func (f *fakeListingRepo) Search(ctx context.Context, q listingRepo.ListingQuery, priceSort, limit, page int) ([]models.Listing, int64, error) {
	return nil, 0, nil
}

func (f *fakeListingRepo) GetManyByIDs(ctx context.Context, ids []string, limit, page int) ([]models.Listing, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error { return nil }
func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id, name, avatar, contact, tokenHash string) error {
	return nil
}
func (f *fakeUserRepo) SetSessionToken(ctx context.Context, id, tokenHash string) error { return nil }
func (f *fakeUserRepo) SetWallet(ctx context.Context, id, walletID string) error        { return nil }
func (f *fakeUserRepo) AppendListing(ctx context.Context, id, listingID string) error   { return nil }

type fakeBookingRepo struct {
	createErr error

	created *models.Booking
	hostID  string
	total   int64
	index   models.BookingsIndex
}

func (f *fakeBookingRepo) GetManyByIDs(ctx context.Context, ids []string, limit, page int) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) CreateWithSideEffects(ctx context.Context, b *models.Booking, hostID string, total int64, index models.BookingsIndex) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = b
	f.hostID = hostID
	f.total = total
	f.index = index
	return nil
}

type fakeGateway struct {
	chargeErr error

	charged bool
	amount  int64
	source  string
	dest    string
}

func (f *fakeGateway) Charge(ctx context.Context, amount int64, source, destinationAccount string) error {
	f.charged = true
	f.amount = amount
	f.source = source
	f.dest = destinationAccount
	return f.chargeErr
}

func (f *fakeGateway) Connect(ctx context.Context, code string) (string, error) { return "", nil }
func (f *fakeGateway) Disconnect(ctx context.Context, accountID string) error   { return nil }

type fakeReconciler struct {
	payloads []tasks.PaymentReconcilePayload
}

func (f *fakeReconciler) EnqueuePaymentReconcile(ctx context.Context, p tasks.PaymentReconcilePayload) error {
	f.payloads = append(f.payloads, p)
	return nil
}

type fixture struct {
	svc        *DefaultBookingService
	listings   *fakeListingRepo
	users      *fakeUserRepo
	bookings   *fakeBookingRepo
	gateway    *fakeGateway
	reconciler *fakeReconciler
	viewer     *models.User
}

func newFixture() *fixture {
	listings := &fakeListingRepo{
		listing: &models.Listing{
			ID:    "listing-1",
			Host:  "host-1",
			Price: 100,
			Index: models.BookingsIndex{},
		},
	}
	users := &fakeUserRepo{
		users: map[string]*models.User{
			"host-1":   {ID: "host-1", WalletID: "acct_1"},
			"tenant-1": {ID: "tenant-1"},
		},
	}
	bookings := &fakeBookingRepo{}
	gateway := &fakeGateway{}
	reconciler := &fakeReconciler{}

	return &fixture{
		svc: &DefaultBookingService{
			ListingRepo: listings,
			UserRepo:    users,
			BookingRepo: bookings,
			Payments:    gateway,
			Reconciler:  reconciler,
			Logger:      zap.NewNop(),
		},
		listings:   listings,
		users:      users,
		bookings:   bookings,
		gateway:    gateway,
		reconciler: reconciler,
		viewer:     &models.User{ID: "tenant-1"},
	}
}

// stayInput builds a valid three-night request starting a week out, keeping
// the dates inside the advance-booking horizon regardless of when the test
// runs.
func stayInput() models.CreateBookingInput {
	start := time.Now().UTC().AddDate(0, 0, 7)
	return models.CreateBookingInput{
		ID:       "listing-1",
		Source:   "tok_visa",
		CheckIn:  start.Format(DayFormat),
		CheckOut: start.AddDate(0, 0, 3).Format(DayFormat),
	}
}

func assertCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsCode(err, code) {
		t.Fatalf("got error %v, want code %s", err, code)
	}
}

func TestCreateBookingRequiresViewer(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateBooking(context.Background(), nil, stayInput())

	assertCode(t, err, CodeUnauthenticated)
	if f.gateway.charged {
		t.Fatal("charge must not run for an unauthenticated viewer")
	}
}

func TestCreateBookingMissingListing(t *testing.T) {
	f := newFixture()
	input := stayInput()
	input.ID = "no-such-listing"

	_, err := f.svc.CreateBooking(context.Background(), f.viewer, input)

	assertCode(t, err, CodeNotFound)
}

func TestCreateBookingRejectsOwnListing(t *testing.T) {
	f := newFixture()
	host := &models.User{ID: "host-1"}

	_, err := f.svc.CreateBooking(context.Background(), host, stayInput())

	assertCode(t, err, CodeInvalidOperation)
	if f.gateway.charged {
		t.Fatal("charge must not run for a self booking")
	}
}

func TestCreateBookingRejectsBadDates(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"garbage check in", "not-a-date", "2021-01-02"},
		{"garbage check out", "2021-01-01", "not-a-date"},
		{"inverted range", time.Now().UTC().AddDate(0, 0, 8).Format(DayFormat), time.Now().UTC().AddDate(0, 0, 7).Format(DayFormat)},
		{"beyond horizon", time.Now().UTC().AddDate(0, 0, 200).Format(DayFormat), time.Now().UTC().AddDate(0, 0, 203).Format(DayFormat)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			input := stayInput()
			input.CheckIn = tc.checkIn
			input.CheckOut = tc.checkOut

			_, err := f.svc.CreateBooking(context.Background(), f.viewer, input)

			assertCode(t, err, CodeInvalidInput)
			if f.gateway.charged {
				t.Fatal("charge must not run for invalid dates")
			}
			if f.bookings.created != nil {
				t.Fatal("nothing may persist for invalid dates")
			}
		})
	}
}

func TestCreateBookingRequiresHostWallet(t *testing.T) {
	f := newFixture()
	f.users.users["host-1"].WalletID = ""

	_, err := f.svc.CreateBooking(context.Background(), f.viewer, stayInput())

	assertCode(t, err, CodePaymentSetupRequired)
	if f.gateway.charged {
		t.Fatal("wallet check must precede the charge")
	}
}

func TestCreateBookingChargeFailure(t *testing.T) {
	f := newFixture()
	f.gateway.chargeErr = errors.New("card declined")

	_, err := f.svc.CreateBooking(context.Background(), f.viewer, stayInput())

	assertCode(t, err, CodePaymentFailed)
	if f.bookings.created != nil {
		t.Fatal("nothing may persist after a failed charge")
	}
	if len(f.reconciler.payloads) != 0 {
		t.Fatal("a failed charge needs no reconciliation")
	}
}

func TestCreateBookingPersistenceFailureEnqueuesReconciliation(t *testing.T) {
	f := newFixture()
	f.bookings.createErr = errors.New("transaction aborted")

	_, err := f.svc.CreateBooking(context.Background(), f.viewer, stayInput())

	assertCode(t, err, CodePersistenceFailure)
	if !f.gateway.charged {
		t.Fatal("the charge ran before persistence")
	}
	if len(f.reconciler.payloads) != 1 {
		t.Fatalf("expected one reconciliation payload, got %d", len(f.reconciler.payloads))
	}
	p := f.reconciler.payloads[0]
	if p.ListingID != "listing-1" || p.TenantID != "tenant-1" || p.HostWallet != "acct_1" || p.Amount != 400 {
		t.Fatalf("unexpected reconciliation payload %+v", p)
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	f := newFixture()
	input := stayInput()

	created, err := f.svc.CreateBooking(context.Background(), f.viewer, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == "" {
		t.Fatal("booking must get an id")
	}
	if created.Listing != "listing-1" || created.Tenant != "tenant-1" {
		t.Fatalf("unexpected booking %+v", created)
	}
	if created.CheckIn != input.CheckIn || created.CheckOut != input.CheckOut {
		t.Fatalf("booking dates must echo the input, got %+v", created)
	}

	// Three nights at 100 with both boundary dates billed.
	if f.gateway.amount != 400 {
		t.Fatalf("charged %d, want 400", f.gateway.amount)
	}
	if f.gateway.source != "tok_visa" || f.gateway.dest != "acct_1" {
		t.Fatalf("charge routed wrong: source %q dest %q", f.gateway.source, f.gateway.dest)
	}

	if f.bookings.created != created {
		t.Fatal("the persisted booking must be the returned one")
	}
	if f.bookings.hostID != "host-1" || f.bookings.total != 400 {
		t.Fatalf("persisted side effects wrong: host %q total %d", f.bookings.hostID, f.bookings.total)
	}

	days := 0
	for _, months := range f.bookings.index {
		for _, d := range months {
			days += len(d)
		}
	}
	if days != 4 {
		t.Fatalf("expected 4 days marked in the index, got %d", days)
	}
}

func TestCreateBookingSerializesPerListing(t *testing.T) {
	unlock := lockListing("concurrent-listing")

	acquired := make(chan struct{})
	go func() {
		inner := lockListing("concurrent-listing")
		close(acquired)
		inner()
	}()

	select {
	case <-acquired:
		t.Fatal("second booking acquired the listing lock while the first held it")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second booking never acquired the lock after release")
	}
}
