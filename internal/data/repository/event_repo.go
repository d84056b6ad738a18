package repository

import (
	"context"
	"errors"

	"safarsaga-backend/internal/data/entity"
	"safarsaga-backend/pkg/apperr"
	"safarsaga-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const eventColumns = `id, destination_id, name, description, start_date,
		price_per_seat, capacity, is_active, created_at, updated_at`

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Event, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, event *entity.Event) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var e entity.Event
	err := row.Scan(
		&e.ID,
		&e.DestinationID,
		&e.Name,
		&e.Description,
		&e.StartDate,
		&e.PricePerSeat,
		&e.Capacity,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.DestinationID,
		event.Name,
		event.Description,
		event.StartDate,
		event.PricePerSeat,
		event.Capacity,
		event.IsActive,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("name", event.Name),
		)
		return apperr.Dependency("create event "+event.Name, err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, apperr.Dependency("find event by ID "+id.String(), err)
	}

	return event, nil
}

func (r *eventRepository) FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE is_active = TRUE
		ORDER BY start_date
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list events", zap.Error(err))
		return nil, apperr.Dependency("list events", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, apperr.Dependency("scan event row", err)
		}
		events = append(events, event)
	}

	return events, nil
}

func (r *eventRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count events", zap.Error(err))
		return 0, apperr.Dependency("count events", err)
	}

	return count, nil
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET destination_id = $2, name = $3, description = $4, start_date = $5,
		    price_per_seat = $6, capacity = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		event.ID,
		event.DestinationID,
		event.Name,
		event.Description,
		event.StartDate,
		event.PricePerSeat,
		event.Capacity,
		event.IsActive,
		event.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update event",
			zap.Error(err),
			zap.String("event_id", event.ID.String()),
		)
		return apperr.Dependency("update event "+event.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("event %s not found", event.ID.String())
	}

	return nil
}

func (r *eventRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE events SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate event",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return apperr.Dependency("deactivate event "+id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("event %s not found", id.String())
	}

	return nil
}
