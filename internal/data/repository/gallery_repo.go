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

type GalleryRepository interface {
	Create(ctx context.Context, image *entity.GalleryImage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryImage, error)
	FindByDestinationID(ctx context.Context, destinationID uuid.UUID, limit, offset int) ([]*entity.GalleryImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type galleryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGalleryRepository(db database.PgxIface, log *zap.Logger) GalleryRepository {
	return &galleryRepository{
		db:  db,
		log: log.With(zap.String("repository", "gallery")),
	}
}

func (r *galleryRepository) Create(ctx context.Context, image *entity.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (id, user_id, destination_id, url, public_id, caption, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		image.ID,
		image.UserID,
		image.DestinationID,
		image.URL,
		image.PublicID,
		image.Caption,
		image.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create gallery image",
			zap.Error(err),
			zap.String("public_id", image.PublicID),
		)
		return apperr.Dependency("create gallery image", err)
	}

	return nil
}

func (r *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryImage, error) {
	query := `
		SELECT id, user_id, destination_id, url, public_id, caption, created_at
		FROM gallery_images
		WHERE id = $1
	`

	var image entity.GalleryImage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&image.ID,
		&image.UserID,
		&image.DestinationID,
		&image.URL,
		&image.PublicID,
		&image.Caption,
		&image.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find gallery image",
			zap.Error(err),
			zap.String("image_id", id.String()),
		)
		return nil, apperr.Dependency("find gallery image "+id.String(), err)
	}

	return &image, nil
}

func (r *galleryRepository) FindByDestinationID(ctx context.Context, destinationID uuid.UUID, limit, offset int) ([]*entity.GalleryImage, error) {
	query := `
		SELECT id, user_id, destination_id, url, public_id, caption, created_at
		FROM gallery_images
		WHERE destination_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, destinationID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list gallery images",
			zap.Error(err),
			zap.String("destination_id", destinationID.String()),
		)
		return nil, apperr.Dependency("list gallery images", err)
	}
	defer rows.Close()

	var images []*entity.GalleryImage
	for rows.Next() {
		var image entity.GalleryImage
		err := rows.Scan(
			&image.ID,
			&image.UserID,
			&image.DestinationID,
			&image.URL,
			&image.PublicID,
			&image.Caption,
			&image.CreatedAt,
		)
		if err != nil {
			return nil, apperr.Dependency("scan gallery image row", err)
		}
		images = append(images, &image)
	}

	return images, nil
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete gallery image",
			zap.Error(err),
			zap.String("image_id", id.String()),
		)
		return apperr.Dependency("delete gallery image "+id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFoundf("gallery image %s not found", id.String())
	}

	return nil
}
