package booking

import (
	"context"
	"regexp"
	"strconv"
	"testing"

	"frontdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings      []*models.Booking
	nextID        uint
	createErrs    []error // popped one per Create call
	statusUpdates int
}

func (f *fakeBookingRepo) FindByCode(_ context.Context, code, hotelID string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.Code == code && b.HotelID == hotelID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range f.bookings {
		if existing.Code == b.Code && existing.HotelID == b.HotelID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	b.ID = f.nextID
	copied := *b
	f.bookings = append(f.bookings, &copied)
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uint, status models.BookingStatus) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			f.statusUpdates++
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeBookingRepo) MarkIdentityVerified(_ context.Context, id uint) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.IdentityVerified = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeBookingRepo) MarkPaid(_ context.Context, id uint) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.PaymentStatus = "paid"
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newTestService(repo *fakeBookingRepo) *DefaultBookingService {
	return NewDefaultBookingService(repo, zap.NewNop())
}

func seedBooking(repo *fakeBookingRepo, code, hotelID string, status models.BookingStatus) *models.Booking {
	repo.nextID++
	b := &models.Booking{
		ID:         repo.nextID,
		Code:       code,
		HotelID:    hotelID,
		GuestName:  "Sarah",
		RoomNumber: "204",
		Status:     status,
	}
	repo.bookings = append(repo.bookings, b)
	return b
}

func TestCheckInTransitionsConfirmedBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	seedBooking(repo, "1001", "hotel-1", models.BookingConfirmed)
	svc := newTestService(repo)

	res, err := svc.CheckIn(context.Background(), "1001", "hotel-1")
	require.NoError(t, err)
	assert.False(t, res.AlreadyCheckedIn)
	assert.Equal(t, models.BookingCheckedIn, res.Booking.Status)
	assert.Equal(t, models.BookingCheckedIn, repo.bookings[0].Status)
}

func TestCheckInIsIdempotent(t *testing.T) {
	repo := &fakeBookingRepo{}
	seedBooking(repo, "1001", "hotel-1", models.BookingConfirmed)
	svc := newTestService(repo)

	_, err := svc.CheckIn(context.Background(), "1001", "hotel-1")
	require.NoError(t, err)

	res, err := svc.CheckIn(context.Background(), "1001", "hotel-1")
	require.NoError(t, err)
	assert.True(t, res.AlreadyCheckedIn)
	assert.Equal(t, models.BookingCheckedIn, repo.bookings[0].Status)
	assert.Equal(t, 1, repo.statusUpdates, "second check-in must not mutate the record")
}

func TestCheckInUnknownCode(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	_, err := svc.CheckIn(context.Background(), "9999", "hotel-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckInIsHotelScoped(t *testing.T) {
	repo := &fakeBookingRepo{}
	seedBooking(repo, "1001", "hotel-1", models.BookingConfirmed)
	svc := newTestService(repo)

	_, err := svc.CheckIn(context.Background(), "1001", "hotel-2")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelTransitionsBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	seedBooking(repo, "1001", "hotel-1", models.BookingConfirmed)
	svc := newTestService(repo)

	require.NoError(t, svc.Cancel(context.Background(), "1001", "hotel-1"))
	assert.Equal(t, models.BookingCancelled, repo.bookings[0].Status)
}

func TestCancelAlreadyCancelledSucceeds(t *testing.T) {
	repo := &fakeBookingRepo{}
	seedBooking(repo, "1001", "hotel-1", models.BookingCancelled)
	svc := newTestService(repo)

	require.NoError(t, svc.Cancel(context.Background(), "1001", "hotel-1"))
	assert.Zero(t, repo.statusUpdates)
}

func TestCancelUnknownCode(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{})

	err := svc.Cancel(context.Background(), "9999", "hotel-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateGeneratesCodeAndRoomInRange(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo)
	codePattern := regexp.MustCompile(`^\d{4}$`)

	for i := 0; i < 50; i++ {
		b, err := svc.Create(context.Background(), "Sarah", "2026-09-01", "hotel-1")
		require.NoError(t, err)

		assert.Regexp(t, codePattern, b.Code)
		code, _ := strconv.Atoi(b.Code)
		assert.GreaterOrEqual(t, code, codeMin)
		assert.LessOrEqual(t, code, codeMax)

		room, err := strconv.Atoi(b.RoomNumber)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, room, roomMin)
		assert.LessOrEqual(t, room, roomMax)

		assert.Equal(t, models.BookingConfirmed, b.Status)
		assert.Equal(t, "2026-09-01", b.CheckInDate)
	}
}

func TestCreateRetriesOnDuplicateCode(t *testing.T) {
	repo := &fakeBookingRepo{
		createErrs: []error{gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey},
	}
	svc := newTestService(repo)

	b, err := svc.Create(context.Background(), "Sarah", "", "hotel-1")
	require.NoError(t, err)
	assert.NotEmpty(t, b.Code)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateGivesUpWhenCodeSpaceExhausted(t *testing.T) {
	repo := &fakeBookingRepo{
		createErrs: []error{
			gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey,
			gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey,
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), "Sarah", "", "hotel-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
