package repository

import (
	"context"
	"errors"
	"fmt"

	"safarsaga-backend/internal/data/entity"
	"safarsaga-backend/pkg/apperr"
	"safarsaga-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bookingColumns = `id, booking_code, user_id, destination_id, event_id, seats,
		total_amount, travel_date, contact_phone, emergency_contact, special_requests,
		status, payment_status, payment_reference, created_at, updated_at`

type BookingRepository interface {
	// CreateWithCapacity inserts the booking inside one transaction that holds
	// an advisory lock on the slot, re-checks the duplicate policy and the
	// remaining capacity. It is the only write path for new bookings.
	CreateWithCapacity(ctx context.Context, booking *entity.Booking, capacity int) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByCode(ctx context.Context, code string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	FindActiveBySlot(ctx context.Context, userID uuid.UUID, destinationID, eventID *uuid.UUID, travelDate string) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus, paymentStatus entity.PaymentStatus) error
	UpdatePayment(ctx context.Context, bookingID uuid.UUID, paymentStatus entity.PaymentStatus, reference *string) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingCode,
		&booking.UserID,
		&booking.DestinationID,
		&booking.EventID,
		&booking.Seats,
		&booking.TotalAmount,
		&booking.TravelDate,
		&booking.ContactPhone,
		&booking.EmergencyContact,
		&booking.SpecialRequests,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentReference,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// slotCondition matches bookings that occupy the same catalog slot. Either
// reference may be nil; a booking conflicts when it shares any populated one.
const slotCondition = `(($1::uuid IS NOT NULL AND destination_id = $1)
		OR ($2::uuid IS NOT NULL AND event_id = $2))
		AND travel_date = $3
		AND status IN ('pending', 'confirmed')`

func (r *bookingRepository) CreateWithCapacity(ctx context.Context, booking *entity.Booking, capacity int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.Dependency("begin booking transaction", err)
	}
	defer tx.Rollback(ctx)

	slotRef := booking.SlotID()
	if slotRef == nil {
		return apperr.Validation("booking has neither destination nor event reference")
	}

	travelDate := booking.TravelDate.Format("2006-01-02")

	// Serialize all admissions for this slot. The lock is transaction-scoped,
	// so the duplicate and capacity checks below see a consistent snapshot.
	lockKey := slotRef.String() + ":" + travelDate
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return apperr.Dependency("acquire slot lock", err)
	}

	var conflictID uuid.UUID
	err = tx.QueryRow(ctx, `
		SELECT id FROM bookings
		WHERE user_id = $4 AND `+slotCondition+`
		LIMIT 1
	`, booking.DestinationID, booking.EventID, travelDate, booking.UserID).Scan(&conflictID)
	if err == nil {
		return apperr.Duplicate(
			fmt.Sprintf("an active booking already exists for this destination on %s", travelDate),
			conflictID.String(),
		)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return apperr.Dependency("check duplicate booking", err)
	}

	var taken int
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(seats), 0) FROM bookings
		WHERE `+slotCondition+`
	`, booking.DestinationID, booking.EventID, travelDate).Scan(&taken)
	if err != nil {
		return apperr.Dependency("count reserved seats", err)
	}

	if taken+booking.Seats > capacity {
		return apperr.Capacity(
			fmt.Sprintf("only %d of %d seats remain for %s", capacity-taken, capacity, travelDate),
		)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`,
		booking.ID,
		booking.BookingCode,
		booking.UserID,
		booking.DestinationID,
		booking.EventID,
		booking.Seats,
		booking.TotalAmount,
		booking.TravelDate,
		booking.ContactPhone,
		booking.EmergencyContact,
		booking.SpecialRequests,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentReference,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
			zap.String("user_id", booking.UserID.String()),
		)
		return apperr.Dependency("insert booking "+booking.BookingCode, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.Dependency("commit booking "+booking.BookingCode, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, apperr.Dependency("find booking by ID "+id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByCode(ctx context.Context, code string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_code = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by code",
			zap.Error(err),
			zap.String("booking_code", code),
		)
		return nil, apperr.Dependency("find booking by code "+code, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, apperr.Dependency("find bookings by user ID "+userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, apperr.Dependency("count bookings by user ID "+userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, apperr.Dependency("list bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, apperr.Dependency("count bookings", err)
	}

	return count, nil
}

func (r *bookingRepository) FindActiveBySlot(ctx context.Context, userID uuid.UUID, destinationID, eventID *uuid.UUID, travelDate string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $4 AND ` + slotCondition + `
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, destinationID, eventID, travelDate, userID)
	if err != nil {
		r.log.Error("Failed to find active bookings by slot",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("travel_date", travelDate),
		)
		return nil, apperr.Dependency("find active bookings by slot", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus, paymentStatus entity.PaymentStatus) error {
	query := `UPDATE bookings SET status = $2, payment_status = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status, paymentStatus)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return apperr.Dependency("update booking status "+bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) UpdatePayment(ctx context.Context, bookingID uuid.UUID, paymentStatus entity.PaymentStatus, reference *string) error {
	query := `
		UPDATE bookings
		SET payment_status = $2, payment_reference = COALESCE($3, payment_reference), updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, bookingID, paymentStatus, reference)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("payment_status", string(paymentStatus)),
		)
		return apperr.Dependency("update payment status "+bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("booking %s not found", bookingID.String())
	}

	return nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, apperr.Dependency("scan booking row", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
