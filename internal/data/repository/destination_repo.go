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

const destinationColumns = `id, name, country, description, price_per_seat, capacity,
		image_url, is_active, created_at, updated_at`

type DestinationRepository interface {
	Create(ctx context.Context, destination *entity.Destination) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error)
	FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Destination, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, destination *entity.Destination) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type destinationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDestinationRepository(db database.PgxIface, log *zap.Logger) DestinationRepository {
	return &destinationRepository{
		db:  db,
		log: log.With(zap.String("repository", "destination")),
	}
}

func scanDestination(row pgx.Row) (*entity.Destination, error) {
	var d entity.Destination
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Country,
		&d.Description,
		&d.PricePerSeat,
		&d.Capacity,
		&d.ImageURL,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *destinationRepository) Create(ctx context.Context, destination *entity.Destination) error {
	query := `
		INSERT INTO destinations (` + destinationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		destination.ID,
		destination.Name,
		destination.Country,
		destination.Description,
		destination.PricePerSeat,
		destination.Capacity,
		destination.ImageURL,
		destination.IsActive,
		destination.CreatedAt,
		destination.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create destination",
			zap.Error(err),
			zap.String("name", destination.Name),
		)
		return apperr.Dependency("create destination "+destination.Name, err)
	}

	return nil
}

func (r *destinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`

	destination, err := scanDestination(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find destination by ID",
			zap.Error(err),
			zap.String("destination_id", id.String()),
		)
		return nil, apperr.Dependency("find destination by ID "+id.String(), err)
	}

	return destination, nil
}

func (r *destinationRepository) FindAllActive(ctx context.Context, limit, offset int) ([]*entity.Destination, error) {
	query := `
		SELECT ` + destinationColumns + `
		FROM destinations
		WHERE is_active = TRUE
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list destinations", zap.Error(err))
		return nil, apperr.Dependency("list destinations", err)
	}
	defer rows.Close()

	var destinations []*entity.Destination
	for rows.Next() {
		destination, err := scanDestination(rows)
		if err != nil {
			return nil, apperr.Dependency("scan destination row", err)
		}
		destinations = append(destinations, destination)
	}

	return destinations, nil
}

func (r *destinationRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM destinations WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count destinations", zap.Error(err))
		return 0, apperr.Dependency("count destinations", err)
	}

	return count, nil
}

func (r *destinationRepository) Update(ctx context.Context, destination *entity.Destination) error {
	query := `
		UPDATE destinations
		SET name = $2, country = $3, description = $4, price_per_seat = $5,
		    capacity = $6, image_url = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		destination.ID,
		destination.Name,
		destination.Country,
		destination.Description,
		destination.PricePerSeat,
		destination.Capacity,
		destination.ImageURL,
		destination.IsActive,
		destination.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update destination",
			zap.Error(err),
			zap.String("destination_id", destination.ID.String()),
		)
		return apperr.Dependency("update destination "+destination.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("destination %s not found", destination.ID.String())
	}

	return nil
}

func (r *destinationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE destinations SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate destination",
			zap.Error(err),
			zap.String("destination_id", id.String()),
		)
		return apperr.Dependency("deactivate destination "+id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("destination %s not found", id.String())
	}

	return nil
}
