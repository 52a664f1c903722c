package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/skyscan-flight-api/internal/model"
	"github.com/iliyamo/skyscan-flight-api/internal/repository"
)

// fakeBookingRepo keeps bookings in memory and enforces PNR uniqueness
// the way the MySQL store does.
type fakeBookingRepo struct {
	bookings  []model.Booking
	createErr error
	// rejectPNRs forces ErrDuplicatePNR for specific codes to drive
	// the retry loop.
	rejectPNRs map[string]int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{rejectPNRs: map[string]int{}}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	if n, ok := f.rejectPNRs["*"]; ok && n != 0 {
		if n > 0 {
			f.rejectPNRs["*"] = n - 1
		}
		return repository.ErrDuplicatePNR
	}
	for _, existing := range f.bookings {
		if strings.EqualFold(existing.PNR, b.PNR) {
			return repository.ErrDuplicatePNR
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	for _, b := range f.bookings {
		if strings.EqualFold(b.UserEmail, email) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByPNR(ctx context.Context, pnr string) (*model.Booking, error) {
	for _, b := range f.bookings {
		if strings.EqualFold(b.PNR, pnr) {
			copied := b
			return &copied, nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

var _ repository.BookingRepo = (*fakeBookingRepo)(nil)

func draft() model.BookingDraft {
	return model.BookingDraft{
		FlightID: "flt_0",
		Passenger: model.Passenger{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "Ada@Example.com",
			Passport:  "AB123456",
		},
		TotalPrice: 245.50,
		Currency:   "USD",
	}
}

func TestCreateAssignsServerFields(t *testing.T) {
	repo := newFakeBookingRepo()
	store := NewStore(repo)
	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	b, err := store.Create(context.Background(), draft())
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Len(t, b.PNR, 6)
	assert.Equal(t, model.BookingStatusConfirmed, b.Status)
	assert.Equal(t, fixed, b.CreatedAt)
	assert.Equal(t, "Ada@Example.com", b.UserEmail)
	assert.NotNil(t, b.Extras)
}

func TestCreatePNRAlphabet(t *testing.T) {
	store := NewStore(newFakeBookingRepo())
	for i := 0; i < 50; i++ {
		b, err := store.Create(context.Background(), draft())
		require.NoError(t, err)
		for _, ch := range b.PNR {
			ok := (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
			assert.True(t, ok, "unexpected character %q in pnr %s", ch, b.PNR)
		}
	}
}

func TestCreateUniquePNRs(t *testing.T) {
	repo := newFakeBookingRepo()
	store := NewStore(repo)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		b, err := store.Create(context.Background(), draft())
		require.NoError(t, err)
		assert.False(t, seen[b.PNR], "duplicate pnr %s", b.PNR)
		seen[b.PNR] = true
	}
}

func TestCreateRetriesOnDuplicatePNR(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.rejectPNRs["*"] = 2 // first two attempts collide
	store := NewStore(repo)

	b, err := store.Create(context.Background(), draft())
	require.NoError(t, err)
	assert.Len(t, b.PNR, 6)
	require.Len(t, repo.bookings, 1)
}

func TestCreateGivesUpAfterMaxAttempts(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.rejectPNRs["*"] = -1 // every attempt collides
	store := NewStore(repo)

	_, err := store.Create(context.Background(), draft())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPNRExhausted)
}

func TestCreateSurfacesOtherRepoErrors(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.createErr = errors.New("connection refused")
	store := NewStore(repo)

	_, err := store.Create(context.Background(), draft())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPNRExhausted)
}

func TestCreateDefaultsCurrencyAndExtras(t *testing.T) {
	store := NewStore(newFakeBookingRepo())
	d := draft()
	d.Currency = ""
	d.Extras = nil

	b, err := store.Create(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "USD", b.Currency)
	assert.Equal(t, map[string]int{}, b.Extras)
}

func TestByEmailCaseInsensitive(t *testing.T) {
	repo := newFakeBookingRepo()
	store := NewStore(repo)
	_, err := store.Create(context.Background(), draft())
	require.NoError(t, err)

	bookings, err := store.ByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	bookings, err = store.ByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestByPNRCaseInsensitive(t *testing.T) {
	repo := newFakeBookingRepo()
	store := NewStore(repo)
	created, err := store.Create(context.Background(), draft())
	require.NoError(t, err)

	got, err := store.ByPNR(context.Background(), strings.ToLower(created.PNR))
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = store.ByPNR(context.Background(), "ZZZZZZ")
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}
