package usecase

import (
	"context"
	"time"

	"safarsaga-backend/internal/data/entity"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/internal/dto/request"
	"safarsaga-backend/internal/dto/response"
	"safarsaga-backend/pkg/apperr"
	"safarsaga-backend/pkg/mediastore"
	"safarsaga-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GalleryService interface {
	UploadImage(ctx context.Context, userID string, req *request.UploadImageRequest) (*response.GalleryImageResponse, error)
	ListByDestination(ctx context.Context, destinationID string, req *request.PaginatedRequest) ([]response.GalleryImageResponse, error)
	DeleteImage(ctx context.Context, imageID, requesterID string, isAdmin bool) error
}

type galleryService struct {
	repo  *repository.Repository
	media *mediastore.Client
	log   *zap.Logger
}

func NewGalleryService(repo *repository.Repository, media *mediastore.Client, log *zap.Logger) GalleryService {
	return &galleryService{
		repo:  repo,
		media: media,
		log:   log.With(zap.String("service", "gallery")),
	}
}

func (s *galleryService) UploadImage(ctx context.Context, userID string, req *request.UploadImageRequest) (*response.GalleryImageResponse, error) {
	if s.media == nil {
		return nil, apperr.Dependency("media storage is not configured", nil)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format %s", userID)
	}

	var destinationID *uuid.UUID
	if req.DestinationID != nil {
		id, err := uuid.Parse(*req.DestinationID)
		if err != nil {
			return nil, apperr.Validationf("invalid destination ID format %s", *req.DestinationID)
		}

		destination, err := s.repo.Destination.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if destination == nil {
			return nil, apperr.NotFoundf("destination %s not found", *req.DestinationID)
		}
		destinationID = &id
	}

	imageID := uuid.New()
	upload, err := s.media.UploadBase64Image(ctx, req.ImageBase64, imageID.String())
	if err != nil {
		s.log.Error("Failed to upload image", zap.Error(err))
		return nil, apperr.Dependency("upload image", err)
	}

	image := &entity.GalleryImage{
		BaseSimple: entity.BaseSimple{
			ID:        imageID,
			CreatedAt: time.Now(),
		},
		UserID:        userUUID,
		DestinationID: destinationID,
		URL:           upload.URL,
		PublicID:      upload.PublicID,
		Caption:       req.Caption,
	}

	if err := s.repo.Gallery.Create(ctx, image); err != nil {
		// No record, no upload.
		if delErr := s.media.Delete(ctx, upload.PublicID); delErr != nil {
			s.log.Warn("Failed to clean up orphaned upload",
				zap.Error(delErr),
				zap.String("public_id", upload.PublicID),
			)
		}
		return nil, err
	}

	s.log.Info("Gallery image uploaded",
		zap.String("image_id", image.ID.String()),
		zap.String("user_id", userID),
	)

	resp := response.GalleryImageToResponse(image)
	return &resp, nil
}

func (s *galleryService) ListByDestination(ctx context.Context, destinationID string, req *request.PaginatedRequest) ([]response.GalleryImageResponse, error) {
	id, err := uuid.Parse(destinationID)
	if err != nil {
		return nil, apperr.Validationf("invalid destination ID format %s", destinationID)
	}

	images, err := s.repo.Gallery.FindByDestinationID(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	imageResponses := make([]response.GalleryImageResponse, len(images))
	for i, image := range images {
		imageResponses[i] = response.GalleryImageToResponse(image)
	}

	return imageResponses, nil
}

func (s *galleryService) DeleteImage(ctx context.Context, imageID, requesterID string, isAdmin bool) error {
	id, err := uuid.Parse(imageID)
	if err != nil {
		return apperr.Validationf("invalid image ID format %s", imageID)
	}

	image, err := s.repo.Gallery.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if image == nil {
		return apperr.NotFoundf("gallery image %s not found", imageID)
	}

	if !isAdmin && image.UserID.String() != requesterID {
		return apperr.Authorization("you may only delete your own images")
	}

	if err := s.repo.Gallery.Delete(ctx, id); err != nil {
		return err
	}

	// Media removal is best effort; the record is already gone.
	if s.media != nil {
		if err := s.media.Delete(ctx, image.PublicID); err != nil {
			s.log.Warn("Failed to delete media file",
				zap.Error(err),
				zap.String("public_id", image.PublicID),
			)
		}
	}

	s.log.Info("Gallery image deleted", zap.String("image_id", imageID))
	return nil
}
