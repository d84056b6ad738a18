package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

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

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateWithCapacity(ctx context.Context, booking *entity.Booking, capacity int) error {
	args := m.Called(ctx, booking, capacity)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByCode(ctx context.Context, code string) (*entity.Booking, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) FindActiveBySlot(ctx context.Context, userID uuid.UUID, destinationID, eventID *uuid.UUID, travelDate string) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, destinationID, eventID, travelDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus, paymentStatus entity.PaymentStatus) error {
	args := m.Called(ctx, bookingID, status, paymentStatus)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdatePayment(ctx context.Context, bookingID uuid.UUID, paymentStatus entity.PaymentStatus, reference *string) error {
	args := m.Called(ctx, bookingID, paymentStatus, reference)
	return args.Error(0)
}

type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) Create(ctx context.Context, destination *entity.Destination) error {
	args := m.Called(ctx, destination)
	return args.Error(0)
}

func (m *MockDestinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Destination), args.Error(1)
}

func (m *MockDestinationRepository) FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Destination, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Destination), args.Error(1)
}

func (m *MockDestinationRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDestinationRepository) Update(ctx context.Context, destination *entity.Destination) error {
	args := m.Called(ctx, destination)
	return args.Error(0)
}

func (m *MockDestinationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *MockEventRepository) FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Event, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Event), args.Error(1)
}

func (m *MockEventRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Test fixtures

func newTestService(bookings *MockBookingRepository, destinations *MockDestinationRepository, events *MockEventRepository) BookingService {
	repo := &repository.Repository{
		Booking:     bookings,
		Destination: destinations,
		Event:       events,
	}
	config := &utils.Config{Booking: utils.BookingConfig{MaxHorizonDays: 730}}
	return NewBookingService(repo, nil, nil, config, zap.NewNop())
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func strPtr(s string) *string { return &s }

func activeDestination(id uuid.UUID, capacity int, price float64) *entity.Destination {
	return &entity.Destination{
		Base:         entity.Base{ID: id},
		Name:         "Gilgit Valley",
		Country:      "Pakistan",
		PricePerSeat: price,
		Capacity:     capacity,
		IsActive:     true,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	ctx := context.Background()
	userID := uuid.New()
	destinationID := uuid.New()
	travelDate := futureDate(30)

	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 40, 250.0), nil)
	mockBookings.On("FindActiveBySlot", mock.Anything, userID, &destinationID, (*uuid.UUID)(nil), travelDate).Return([]*entity.Booking{}, nil)
	mockBookings.On("CreateWithCapacity", mock.Anything, mock.AnythingOfType("*entity.Booking"), 40).Return(nil)

	req := &request.CreateBookingRequest{
		DestinationID: strPtr(destinationID.String()),
		Seats:         3,
		TravelDate:    travelDate,
		ContactPhone:  "+489912345678",
	}

	resp, err := service.CreateBooking(ctx, userID.String(), req)

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, entity.BookingStatusPending, resp.Status)
		assert.Equal(t, entity.PaymentStatusUnpaid, resp.PaymentStatus)
		assert.Equal(t, 750.0, resp.TotalAmount)
		assert.Equal(t, travelDate, resp.TravelDate)
		assert.Equal(t, "Gilgit Valley", resp.DestinationName)
		assert.NotEmpty(t, resp.BookingCode)
	}
	mockBookings.AssertExpectations(t)
}

func TestCreateBooking_Duplicate(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	ctx := context.Background()
	userID := uuid.New()
	destinationID := uuid.New()
	travelDate := futureDate(14)

	existing := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        userID,
		DestinationID: &destinationID,
		TravelDate:    time.Now().AddDate(0, 0, 14),
		Status:        entity.BookingStatusConfirmed,
	}

	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 40, 100.0), nil)
	mockBookings.On("FindActiveBySlot", mock.Anything, userID, &destinationID, (*uuid.UUID)(nil), travelDate).Return([]*entity.Booking{existing}, nil)

	req := &request.CreateBookingRequest{
		DestinationID: strPtr(destinationID.String()),
		Seats:         2,
		TravelDate:    travelDate,
		ContactPhone:  "+489912345678",
	}

	resp, err := service.CreateBooking(ctx, userID.String(), req)

	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))
	assert.Equal(t, existing.ID.String(), apperr.ConflictIDOf(err))
	mockBookings.AssertNotCalled(t, "CreateWithCapacity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_CapacityExhausted(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	ctx := context.Background()
	userID := uuid.New()
	destinationID := uuid.New()
	travelDate := futureDate(21)

	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 5, 100.0), nil)
	mockBookings.On("FindActiveBySlot", mock.Anything, userID, &destinationID, (*uuid.UUID)(nil), travelDate).Return([]*entity.Booking{}, nil)
	mockBookings.On("CreateWithCapacity", mock.Anything, mock.AnythingOfType("*entity.Booking"), 5).
		Return(apperr.Capacity("only 2 seats remain for this date"))

	req := &request.CreateBookingRequest{
		DestinationID: strPtr(destinationID.String()),
		Seats:         4,
		TravelDate:    travelDate,
		ContactPhone:  "+489912345678",
	}

	resp, err := service.CreateBooking(ctx, userID.String(), req)

	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindCapacity, apperr.KindOf(err))
}

func TestCreateBooking_ValidationFailures(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	ctx := context.Background()
	userID := uuid.New()
	destinationID := uuid.New().String()
	eventID := uuid.New().String()

	tests := []struct {
		name string
		req  *request.CreateBookingRequest
	}{
		{
			name: "zero seats",
			req: &request.CreateBookingRequest{
				DestinationID: &destinationID,
				Seats:         0,
				TravelDate:    futureDate(10),
				ContactPhone:  "+489912345678",
			},
		},
		{
			name: "both destination and event",
			req: &request.CreateBookingRequest{
				DestinationID: &destinationID,
				EventID:       &eventID,
				Seats:         1,
				TravelDate:    futureDate(10),
				ContactPhone:  "+489912345678",
			},
		},
		{
			name: "neither destination nor event",
			req: &request.CreateBookingRequest{
				Seats:        1,
				TravelDate:   futureDate(10),
				ContactPhone: "+489912345678",
			},
		},
		{
			name: "missing contact phone",
			req: &request.CreateBookingRequest{
				DestinationID: &destinationID,
				Seats:         1,
				TravelDate:    futureDate(10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.CreateBooking(ctx, userID.String(), tt.req)
			assert.Nil(t, resp)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}

	mockBookings.AssertNotCalled(t, "CreateWithCapacity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_PastDate(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	destinationID := uuid.New().String()
	req := &request.CreateBookingRequest{
		DestinationID: &destinationID,
		Seats:         1,
		TravelDate:    time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		ContactPhone:  "+489912345678",
	}

	resp, err := service.CreateBooking(context.Background(), uuid.New().String(), req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestCreateBooking_InactiveDestination(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	destinationID := uuid.New()
	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(nil, nil)

	req := &request.CreateBookingRequest{
		DestinationID: strPtr(destinationID.String()),
		Seats:         1,
		TravelDate:    futureDate(10),
		ContactPhone:  "+489912345678",
	}

	resp, err := service.CreateBooking(context.Background(), uuid.New().String(), req)

	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCancelBooking_PaidBecomesRefunded(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	userID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		BookingCode:   "SFR-20260801-120000-0001",
		UserID:        userID,
		Status:        entity.BookingStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	mockBookings.On("UpdateStatus", mock.Anything, booking.ID, entity.BookingStatusCancelled, entity.PaymentStatusRefunded).Return(nil)

	err := service.CancelBooking(context.Background(), booking.ID.String(), userID.String(), false)

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	userID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        userID,
		Status:        entity.BookingStatusCancelled,
		PaymentStatus: entity.PaymentStatusRefunded,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	err := service.CancelBooking(context.Background(), booking.ID.String(), userID.String(), false)

	assert.Equal(t, apperr.KindTerminalState, apperr.KindOf(err))
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_NotOwner(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        uuid.New(),
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	err := service.CancelBooking(context.Background(), booking.ID.String(), uuid.New().String(), false)

	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
}

func TestCancelBooking_AdminCanCancelAnyBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        uuid.New(),
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	mockBookings.On("UpdateStatus", mock.Anything, booking.ID, entity.BookingStatusCancelled, entity.PaymentStatusUnpaid).Return(nil)

	err := service.CancelBooking(context.Background(), booking.ID.String(), uuid.New().String(), true)

	assert.NoError(t, err)
}

func TestCancelBooking_DeletedEventStillCancels(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	userID := uuid.New()
	eventID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        userID,
		EventID:       &eventID,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	// The event record is gone but the cancellation must still go through.
	mockEvents.On("FindByID", mock.Anything, eventID).Return(nil, nil)
	mockBookings.On("UpdateStatus", mock.Anything, booking.ID, entity.BookingStatusCancelled, entity.PaymentStatusUnpaid).Return(nil)

	err := service.CancelBooking(context.Background(), booking.ID.String(), userID.String(), false)

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestCancelBooking_EventLookupFailureStillCancels(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	userID := uuid.New()
	eventID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        userID,
		EventID:       &eventID,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	mockEvents.On("FindByID", mock.Anything, eventID).Return(nil, errors.New("connection refused"))
	mockBookings.On("UpdateStatus", mock.Anything, booking.ID, entity.BookingStatusCancelled, entity.PaymentStatusUnpaid).Return(nil)

	err := service.CancelBooking(context.Background(), booking.ID.String(), userID.String(), false)

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestCancelBooking_StartedEventBlocksCancellation(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	userID := uuid.New()
	eventID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        userID,
		EventID:       &eventID,
		Status:        entity.BookingStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	startedEvent := &entity.Event{
		Base:      entity.Base{ID: eventID},
		Name:      "Cherry Blossom Trek",
		StartDate: time.Now().AddDate(0, 0, -1),
		IsActive:  true,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	mockEvents.On("FindByID", mock.Anything, eventID).Return(startedEvent, nil)

	err := service.CancelBooking(context.Background(), booking.ID.String(), userID.String(), false)

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitPayment_MovesToPendingReview(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	userID := uuid.New()
	destinationID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        userID,
		DestinationID: &destinationID,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	mockBookings.On("UpdatePayment", mock.Anything, booking.ID, entity.PaymentStatusPendingReview, mock.AnythingOfType("*string")).Return(nil)
	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 10, 100.0), nil)

	resp, err := service.SubmitPayment(context.Background(), booking.ID.String(), userID.String(), &request.SubmitPaymentRequest{
		PaymentReference: "TRX-445566",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, entity.PaymentStatusPendingReview, resp.PaymentStatus)
	}
}

func TestSubmitPayment_RejectedCanResubmit(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	userID := uuid.New()
	destinationID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        userID,
		DestinationID: &destinationID,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusRejected,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	mockBookings.On("UpdatePayment", mock.Anything, booking.ID, entity.PaymentStatusPendingReview, mock.AnythingOfType("*string")).Return(nil)
	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 10, 100.0), nil)

	resp, err := service.SubmitPayment(context.Background(), booking.ID.String(), userID.String(), &request.SubmitPaymentRequest{
		PaymentReference: "TRX-778899",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestSubmitPayment_AlreadyPaid(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	userID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        userID,
		Status:        entity.BookingStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	resp, err := service.SubmitPayment(context.Background(), booking.ID.String(), userID.String(), &request.SubmitPaymentRequest{
		PaymentReference: "TRX-112233",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestConfirmPayment_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	destinationID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        uuid.New(),
		DestinationID: &destinationID,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusPendingReview,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	mockBookings.On("UpdateStatus", mock.Anything, booking.ID, entity.BookingStatusConfirmed, entity.PaymentStatusPaid).Return(nil)
	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 10, 100.0), nil)

	resp, err := service.ConfirmPayment(context.Background(), booking.ID.String())

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
		assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)
	}
}

func TestConfirmPayment_CancelledBookingIsTerminal(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        uuid.New(),
		Status:        entity.BookingStatusCancelled,
		PaymentStatus: entity.PaymentStatusRefunded,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	resp, err := service.ConfirmPayment(context.Background(), booking.ID.String())

	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindTerminalState, apperr.KindOf(err))
}

func TestRejectPayment_BookingReturnsToPending(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	destinationID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        uuid.New(),
		DestinationID: &destinationID,
		Status:        entity.BookingStatusConfirmed,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	mockBookings.On("UpdateStatus", mock.Anything, booking.ID, entity.BookingStatusPending, entity.PaymentStatusRejected).Return(nil)
	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 10, 100.0), nil)

	resp, err := service.RejectPayment(context.Background(), booking.ID.String(), &request.RejectPaymentRequest{
		Reason: "reference does not match any transfer",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, entity.BookingStatusPending, resp.Status)
		assert.Equal(t, entity.PaymentStatusRejected, resp.PaymentStatus)
	}
}

func TestGetBookingByCode(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	ownerID := uuid.New()
	destinationID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		BookingCode:   "SFR-20260801-120000-0042",
		UserID:        ownerID,
		DestinationID: &destinationID,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	mockBookings.On("FindByCode", mock.Anything, booking.BookingCode).Return(booking, nil)
	mockBookings.On("FindByCode", mock.Anything, "SFR-UNKNOWN").Return(nil, nil)
	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 10, 100.0), nil)

	resp, err := service.GetBookingByCode(context.Background(), booking.BookingCode, ownerID.String(), false)
	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, booking.BookingCode, resp.BookingCode)
	}

	resp, err = service.GetBookingByCode(context.Background(), booking.BookingCode, uuid.New().String(), false)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))

	resp, err = service.GetBookingByCode(context.Background(), "SFR-UNKNOWN", ownerID.String(), false)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetBookingByID_OwnerAndAdminAccess(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockDestinations := new(MockDestinationRepository)
	mockEvents := new(MockEventRepository)
	service := newTestService(mockBookings, mockDestinations, mockEvents)

	ownerID := uuid.New()
	destinationID := uuid.New()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		UserID:        ownerID,
		DestinationID: &destinationID,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	mockBookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	mockDestinations.On("FindByID", mock.Anything, destinationID).Return(activeDestination(destinationID, 10, 100.0), nil)

	resp, err := service.GetBookingByID(context.Background(), booking.ID.String(), ownerID.String(), false)
	assert.NoError(t, err)
	assert.NotNil(t, resp)

	resp, err = service.GetBookingByID(context.Background(), booking.ID.String(), uuid.New().String(), true)
	assert.NoError(t, err)
	assert.NotNil(t, resp)

	resp, err = service.GetBookingByID(context.Background(), booking.ID.String(), uuid.New().String(), false)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
}
