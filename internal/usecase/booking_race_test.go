package usecase

import (
	"context"
	"sync"
	"testing"

	"safarsaga-backend/internal/data/entity"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/internal/dto/request"
	"safarsaga-backend/pkg/apperr"
	"safarsaga-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// fakeBookingStore is an in-memory BookingRepository whose CreateWithCapacity
// honours the same contract as the real one: the duplicate re-check, the
// capacity count and the insert happen in one critical section.
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []*entity.Booking
}

func (f *fakeBookingStore) slotMatches(b *entity.Booking, destinationID, eventID *uuid.UUID, travelDate string) bool {
	if !b.IsActive() {
		return false
	}
	if b.TravelDate.Format("2006-01-02") != travelDate {
		return false
	}
	return matchRef(b.DestinationID, destinationID) || matchRef(b.EventID, eventID)
}

func (f *fakeBookingStore) CreateWithCapacity(ctx context.Context, booking *entity.Booking, capacity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	date := booking.TravelDate.Format("2006-01-02")
	seatsTaken := 0
	for _, b := range f.bookings {
		if !f.slotMatches(b, booking.DestinationID, booking.EventID, date) {
			continue
		}
		if b.UserID == booking.UserID {
			return apperr.Duplicate("duplicate booking for this slot", b.ID.String())
		}
		seatsTaken += b.Seats
	}

	if seatsTaken+booking.Seats > capacity {
		return apperr.Capacity("not enough seats remain for this date")
	}

	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingStore) FindActiveBySlot(ctx context.Context, userID uuid.UUID, destinationID, eventID *uuid.UUID, travelDate string) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID && f.slotMatches(b, destinationID, eventID, travelDate) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingStore) FindByCode(ctx context.Context, code string) (*entity.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeBookingStore) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) CountAll(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeBookingStore) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus, paymentStatus entity.PaymentStatus) error {
	return nil
}

func (f *fakeBookingStore) UpdatePayment(ctx context.Context, bookingID uuid.UUID, paymentStatus entity.PaymentStatus, reference *string) error {
	return nil
}

var _ repository.BookingRepository = (*fakeBookingStore)(nil)

func TestCreateBooking_ConcurrentAdmissionForLastSeat(t *testing.T) {
	store := &fakeBookingStore{}
	destinationID := uuid.New()

	mockDestinations := new(MockDestinationRepository)
	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 1, 500.0), nil)

	repo := &repository.Repository{
		Booking:     store,
		Destination: mockDestinations,
		Event:       new(MockEventRepository),
	}
	config := &utils.Config{Booking: utils.BookingConfig{MaxHorizonDays: 730}}
	service := NewBookingService(repo, nil, nil, config, zap.NewNop())

	travelDate := futureDate(45)
	const racers = 8

	var wg sync.WaitGroup
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := &request.CreateBookingRequest{
				DestinationID: strPtr(destinationID.String()),
				Seats:         1,
				TravelDate:    travelDate,
				ContactPhone:  "+489912345678",
			}
			_, errs[i] = service.CreateBooking(context.Background(), uuid.New().String(), req)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.Equal(t, apperr.KindCapacity, apperr.KindOf(err))
	}

	// One seat, many racers: exactly one admission.
	assert.Equal(t, 1, successes)
	assert.Len(t, store.bookings, 1)
}

func TestCreateBooking_ConcurrentDuplicateFromSameUser(t *testing.T) {
	store := &fakeBookingStore{}
	destinationID := uuid.New()

	mockDestinations := new(MockDestinationRepository)
	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 100, 500.0), nil)

	repo := &repository.Repository{
		Booking:     store,
		Destination: mockDestinations,
		Event:       new(MockEventRepository),
	}
	config := &utils.Config{Booking: utils.BookingConfig{MaxHorizonDays: 730}}
	service := NewBookingService(repo, nil, nil, config, zap.NewNop())

	userID := uuid.New()
	travelDate := futureDate(45)
	const racers = 4

	var wg sync.WaitGroup
	errs := make([]error, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := &request.CreateBookingRequest{
				DestinationID: strPtr(destinationID.String()),
				Seats:         2,
				TravelDate:    travelDate,
				ContactPhone:  "+489912345678",
			}
			_, errs[i] = service.CreateBooking(context.Background(), userID.String(), req)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))
	}

	// The same user retrying in parallel still holds exactly one slot.
	assert.Equal(t, 1, successes)
	assert.Len(t, store.bookings, 1)
}
