package usecase

import (
	"context"
	"time"

	"safarsaga-backend/internal/data/entity"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/internal/dto/request"
	"safarsaga-backend/internal/dto/response"
	"safarsaga-backend/internal/events"
	"safarsaga-backend/pkg/apperr"
	"safarsaga-backend/pkg/locker"
	"safarsaga-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID, requesterID string, isAdmin bool) (*response.BookingResponse, error)
	GetBookingByCode(ctx context.Context, code, requesterID string, isAdmin bool) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID, requesterID string, isAdmin bool) error
	SubmitPayment(ctx context.Context, bookingID, userID string, req *request.SubmitPaymentRequest) (*response.BookingResponse, error)

	// Admin endpoints
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ConfirmPayment(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	RejectPayment(ctx context.Context, bookingID string, req *request.RejectPaymentRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo        *repository.Repository
	locks       *locker.SlotLocker // optional, nil when Redis is not configured
	producer    *events.Producer   // optional, nil when Kafka is not configured
	horizonDays int
	log         *zap.Logger
}

func NewBookingService(repo *repository.Repository, locks *locker.SlotLocker, producer *events.Producer, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:        repo,
		locks:       locks,
		producer:    producer,
		horizonDays: config.Booking.MaxHorizonDays,
		log:         log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	if (req.DestinationID == nil) == (req.EventID == nil) {
		return nil, apperr.Validation("exactly one of destination_id or event_id is required")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format %s", userID)
	}

	travelDate, err := ValidateTravelDate(req.TravelDate, time.Now(), s.horizonDays)
	if err != nil {
		return nil, err
	}

	// Resolve the catalog record the booking admits against. Event bookings
	// also carry the event's destination so either reference can be reported.
	var (
		destinationID *uuid.UUID
		eventID       *uuid.UUID
		capacity      int
		pricePerSeat  float64
	)

	if req.EventID != nil {
		id, err := uuid.Parse(*req.EventID)
		if err != nil {
			return nil, apperr.Validationf("invalid event ID format %s", *req.EventID)
		}

		event, err := s.repo.Event.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if event == nil || !event.IsActive {
			return nil, apperr.NotFoundf("event %s not found", *req.EventID)
		}

		eventID = &id
		destinationID = event.DestinationID
		capacity = event.Capacity
		pricePerSeat = event.PricePerSeat
	} else {
		id, err := uuid.Parse(*req.DestinationID)
		if err != nil {
			return nil, apperr.Validationf("invalid destination ID format %s", *req.DestinationID)
		}

		destination, err := s.repo.Destination.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if destination == nil || !destination.IsActive {
			return nil, apperr.NotFoundf("destination %s not found", *req.DestinationID)
		}

		destinationID = &id
		capacity = destination.Capacity
		pricePerSeat = destination.PricePerSeat
	}

	// Fast-fail duplicate check before taking any lock. The transactional
	// insert re-checks under the slot lock, so this pass is advisory only.
	active, err := s.repo.Booking.FindActiveBySlot(ctx, userUUID, destinationID, eventID, travelDate.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if conflict := FindConflictingBooking(userUUID, destinationID, eventID, travelDate, active); conflict != nil {
		return nil, apperr.Duplicate(
			"you already have an active booking for this destination on "+travelDate.Format("2006-01-02"),
			conflict.ID.String(),
		)
	}

	slotRef := eventID
	if slotRef == nil {
		slotRef = destinationID
	}

	if s.locks != nil {
		ok, err := s.locks.Acquire(ctx, *slotRef, travelDate)
		if err != nil {
			// The transactional check still serializes; the lock only sheds
			// contention, so a broken Redis must not block admissions.
			s.log.Warn("Slot lock unavailable, relying on transactional check", zap.Error(err))
		} else if !ok {
			return nil, apperr.Duplicate("another booking for this slot is being processed, please retry", "")
		} else {
			defer s.locks.Release(ctx, *slotRef, travelDate)
		}
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingCode:      utils.GenerateBookingCode(),
		UserID:           userUUID,
		DestinationID:    destinationID,
		EventID:          eventID,
		Seats:            req.Seats,
		TotalAmount:      pricePerSeat * float64(req.Seats),
		TravelDate:       travelDate,
		ContactPhone:     req.ContactPhone,
		EmergencyContact: req.EmergencyContact,
		SpecialRequests:  req.SpecialRequests,
		Status:           entity.BookingStatusPending,
		PaymentStatus:    entity.PaymentStatusUnpaid,
	}

	if err := s.repo.Booking.CreateWithCapacity(ctx, booking, capacity); err != nil {
		s.log.Warn("Booking admission rejected",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("travel_date", req.TravelDate),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.BookingCode),
		zap.String("user_id", userID),
		zap.Int("seats", booking.Seats),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	s.publish(ctx, events.TypeBookingCreated, booking)

	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format %s", userID)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = *s.buildBookingResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID, requesterID string, isAdmin bool) (*response.BookingResponse, error) {
	booking, err := s.fetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && booking.UserID.String() != requesterID {
		return nil, apperr.Authorization("you may only view your own bookings")
	}

	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) GetBookingByCode(ctx context.Context, code, requesterID string, isAdmin bool) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFoundf("booking with code %s not found", code)
	}

	if !isAdmin && booking.UserID.String() != requesterID {
		return nil, apperr.Authorization("you may only view your own bookings")
	}

	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, requesterID string, isAdmin bool) error {
	booking, err := s.fetchBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if !isAdmin && booking.UserID.String() != requesterID {
		return apperr.Authorization("you may only cancel your own bookings")
	}

	if booking.Status == entity.BookingStatusCancelled {
		return apperr.TerminalState("booking is already cancelled")
	}

	// The event-start guard applies only to event-based bookings, and only
	// when the event can actually be fetched: a dangling or unreachable
	// secondary reference degrades to "no constraint" rather than blocking
	// the cancellation. Destination-only bookings skip the guard entirely.
	if booking.EventID != nil {
		lookup := ProbeEvent(ctx, s.repo.Event, *booking.EventID)
		switch lookup.Outcome {
		case LookupFound:
			if lookup.Event.HasStarted(time.Now()) {
				return apperr.Validation("cannot cancel a booking for an event that has already started")
			}
		case LookupNotFound:
			s.log.Warn("Booking references a deleted event, cancelling anyway",
				zap.String("booking_id", booking.ID.String()),
				zap.String("event_id", booking.EventID.String()),
			)
		case LookupFailed:
			s.log.Warn("Event lookup failed during cancellation, cancelling anyway",
				zap.Error(lookup.Err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("event_id", booking.EventID.String()),
			)
		}
	}

	paymentStatus := booking.PaymentStatus
	if paymentStatus == entity.PaymentStatusPaid {
		paymentStatus = entity.PaymentStatusRefunded
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled, paymentStatus); err != nil {
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.BookingCode),
		zap.String("payment_status", string(paymentStatus)),
	)

	booking.Status = entity.BookingStatusCancelled
	booking.PaymentStatus = paymentStatus
	s.publish(ctx, events.TypeBookingCancelled, booking)

	return nil
}

func (s *bookingService) SubmitPayment(ctx context.Context, bookingID, userID string, req *request.SubmitPaymentRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	booking, err := s.fetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID.String() != userID {
		return nil, apperr.Authorization("you may only pay for your own bookings")
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, apperr.TerminalState("booking is already cancelled")
	}

	if booking.PaymentStatus != entity.PaymentStatusUnpaid && booking.PaymentStatus != entity.PaymentStatusRejected {
		return nil, apperr.Validationf("payment status is %s, cannot submit payment", booking.PaymentStatus)
	}

	reference := req.PaymentReference
	if err := s.repo.Booking.UpdatePayment(ctx, booking.ID, entity.PaymentStatusPendingReview, &reference); err != nil {
		return nil, err
	}

	s.log.Info("Payment submitted for review",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.BookingCode),
	)

	booking.PaymentStatus = entity.PaymentStatusPendingReview
	booking.PaymentReference = &reference
	s.publish(ctx, events.TypePaymentSubmitted, booking)

	return s.buildBookingResponse(ctx, booking), nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = *s.buildBookingResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) ConfirmPayment(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.fetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, apperr.TerminalState("booking is already cancelled")
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed, entity.PaymentStatusPaid); err != nil {
		return nil, err
	}

	s.log.Info("Payment confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.BookingCode),
	)

	booking.Status = entity.BookingStatusConfirmed
	booking.PaymentStatus = entity.PaymentStatusPaid
	s.publish(ctx, events.TypeBookingConfirmed, booking)

	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) RejectPayment(ctx context.Context, bookingID string, req *request.RejectPaymentRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	booking, err := s.fetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, apperr.TerminalState("booking is already cancelled")
	}

	// Rejection sends a confirmed booking back to pending.
	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusPending, entity.PaymentStatusRejected); err != nil {
		return nil, err
	}

	s.log.Info("Payment rejected",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.BookingCode),
		zap.String("reason", req.Reason),
	)

	booking.Status = entity.BookingStatusPending
	booking.PaymentStatus = entity.PaymentStatusRejected
	s.publish(ctx, events.TypePaymentRejected, booking)

	return s.buildBookingResponse(ctx, booking), nil
}

// ==================== HELPER METHODS ====================

// fetchBooking resolves the primary record; absence or store failure here is
// always fatal to the operation.
func (s *bookingService) fetchBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validationf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFoundf("booking %s not found", bookingID)
	}

	return booking, nil
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) *response.BookingResponse {
	// Catalog names are decoration; a dangling reference just leaves them out.
	var destination *entity.Destination
	var event *entity.Event

	if booking.DestinationID != nil {
		d, err := s.repo.Destination.FindByID(ctx, *booking.DestinationID)
		if err != nil {
			s.log.Warn("Destination lookup failed while building response",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		destination = d
	}

	if booking.EventID != nil {
		e, err := s.repo.Event.FindByID(ctx, *booking.EventID)
		if err != nil {
			s.log.Warn("Event lookup failed while building response",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		event = e
	}

	resp := response.BookingToResponse(booking, destination, event)
	return &resp
}

func (s *bookingService) publish(ctx context.Context, eventType string, booking *entity.Booking) {
	if s.producer == nil {
		return
	}

	_ = s.producer.Publish(ctx, events.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID.String(),
		BookingCode:   booking.BookingCode,
		UserID:        booking.UserID.String(),
		Seats:         booking.Seats,
		TotalAmount:   booking.TotalAmount,
		TravelDate:    booking.TravelDate,
		Status:        string(booking.Status),
		PaymentStatus: string(booking.PaymentStatus),
		OccurredAt:    time.Now(),
	})
}
