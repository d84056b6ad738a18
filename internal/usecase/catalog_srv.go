package usecase

import (
	"context"
	"encoding/json"
	"time"

	"safarsaga-backend/internal/data/entity"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/internal/dto/request"
	"safarsaga-backend/internal/dto/response"
	"safarsaga-backend/pkg/apperr"
	"safarsaga-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	destinationCacheKey = "catalog:destinations"
	destinationCacheTTL = 5 * time.Minute
)

type CatalogService interface {
	ListDestinations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DestinationResponse], error)
	GetDestination(ctx context.Context, destinationID string) (*response.DestinationResponse, error)
	ListEvents(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.EventResponse], error)
	GetEvent(ctx context.Context, eventID string) (*response.EventResponse, error)

	// Admin endpoints
	CreateDestination(ctx context.Context, req *request.CreateDestinationRequest) (*response.DestinationResponse, error)
	UpdateDestination(ctx context.Context, destinationID string, req *request.UpdateDestinationRequest) (*response.DestinationResponse, error)
	DeleteDestination(ctx context.Context, destinationID string) error
	CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type catalogService struct {
	repo  *repository.Repository
	cache *redis.Client // optional, nil when Redis is not configured
	log   *zap.Logger
}

func NewCatalogService(repo *repository.Repository, cache *redis.Client, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListDestinations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DestinationResponse], error) {
	// First page is the hot path; serve it from cache when possible.
	if s.cache != nil && req.Page <= 1 {
		if cached := s.readCachedDestinations(ctx, req); cached != nil {
			return cached, nil
		}
	}

	destinations, err := s.repo.Destination.FindAllActive(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Destination.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	destinationResponses := make([]response.DestinationResponse, len(destinations))
	for i, d := range destinations {
		destinationResponses[i] = response.DestinationToResponse(d)
	}

	result := response.NewPaginatedResponse(destinationResponses, req.Page, req.PerPage, total)

	if s.cache != nil && req.Page <= 1 {
		s.writeCachedDestinations(ctx, result)
	}

	return result, nil
}

func (s *catalogService) GetDestination(ctx context.Context, destinationID string) (*response.DestinationResponse, error) {
	id, err := uuid.Parse(destinationID)
	if err != nil {
		return nil, apperr.Validationf("invalid destination ID format %s", destinationID)
	}

	destination, err := s.repo.Destination.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if destination == nil || !destination.IsActive {
		return nil, apperr.NotFoundf("destination %s not found", destinationID)
	}

	resp := response.DestinationToResponse(destination)
	return &resp, nil
}

func (s *catalogService) ListEvents(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.EventResponse], error) {
	events, err := s.repo.Event.FindAllActive(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Event.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	eventResponses := make([]response.EventResponse, len(events))
	for i, e := range events {
		eventResponses[i] = response.EventToResponse(e)
	}

	return response.NewPaginatedResponse(eventResponses, req.Page, req.PerPage, total), nil
}

func (s *catalogService) GetEvent(ctx context.Context, eventID string) (*response.EventResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, apperr.Validationf("invalid event ID format %s", eventID)
	}

	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil || !event.IsActive {
		return nil, apperr.NotFoundf("event %s not found", eventID)
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *catalogService) CreateDestination(ctx context.Context, req *request.CreateDestinationRequest) (*response.DestinationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	destination := &entity.Destination{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Country:      req.Country,
		Description:  req.Description,
		PricePerSeat: req.PricePerSeat,
		Capacity:     req.Capacity,
		ImageURL:     req.ImageURL,
		IsActive:     true,
	}

	if err := s.repo.Destination.Create(ctx, destination); err != nil {
		return nil, err
	}

	s.invalidateDestinationCache(ctx)
	s.log.Info("Destination created",
		zap.String("destination_id", destination.ID.String()),
		zap.String("name", destination.Name),
	)

	resp := response.DestinationToResponse(destination)
	return &resp, nil
}

func (s *catalogService) UpdateDestination(ctx context.Context, destinationID string, req *request.UpdateDestinationRequest) (*response.DestinationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(destinationID)
	if err != nil {
		return nil, apperr.Validationf("invalid destination ID format %s", destinationID)
	}

	destination, err := s.repo.Destination.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, apperr.NotFoundf("destination %s not found", destinationID)
	}

	if req.Name != nil {
		destination.Name = *req.Name
	}
	if req.Country != nil {
		destination.Country = *req.Country
	}
	if req.Description != nil {
		destination.Description = req.Description
	}
	if req.PricePerSeat != nil {
		destination.PricePerSeat = *req.PricePerSeat
	}
	if req.Capacity != nil {
		destination.Capacity = *req.Capacity
	}
	if req.ImageURL != nil {
		destination.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		destination.IsActive = *req.IsActive
	}
	destination.UpdatedAt = time.Now()

	if err := s.repo.Destination.Update(ctx, destination); err != nil {
		return nil, err
	}

	s.invalidateDestinationCache(ctx)
	s.log.Info("Destination updated", zap.String("destination_id", destinationID))

	resp := response.DestinationToResponse(destination)
	return &resp, nil
}

func (s *catalogService) DeleteDestination(ctx context.Context, destinationID string) error {
	id, err := uuid.Parse(destinationID)
	if err != nil {
		return apperr.Validationf("invalid destination ID format %s", destinationID)
	}

	if err := s.repo.Destination.Deactivate(ctx, id); err != nil {
		return err
	}

	s.invalidateDestinationCache(ctx)
	s.log.Info("Destination deactivated", zap.String("destination_id", destinationID))

	return nil
}

func (s *catalogService) CreateEvent(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperr.Validation("start date must be a valid date in YYYY-MM-DD format")
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

	now := time.Now()
	event := &entity.Event{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		DestinationID: destinationID,
		Name:          req.Name,
		Description:   req.Description,
		StartDate:     startDate,
		PricePerSeat:  req.PricePerSeat,
		Capacity:      req.Capacity,
		IsActive:      true,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("name", event.Name),
	)

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *catalogService) DeleteEvent(ctx context.Context, eventID string) error {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return apperr.Validationf("invalid event ID format %s", eventID)
	}

	if err := s.repo.Event.Deactivate(ctx, id); err != nil {
		return err
	}

	s.log.Info("Event deactivated", zap.String("event_id", eventID))
	return nil
}

// ==================== CACHE HELPERS ====================

func (s *catalogService) readCachedDestinations(ctx context.Context, req *request.PaginatedRequest) *response.PaginatedResponse[response.DestinationResponse] {
	data, err := s.cache.Get(ctx, destinationCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("Destination cache read failed", zap.Error(err))
		}
		return nil
	}

	var cached response.PaginatedResponse[response.DestinationResponse]
	if err := json.Unmarshal(data, &cached); err != nil {
		s.log.Warn("Destination cache decode failed", zap.Error(err))
		return nil
	}

	// Only reuse the cache when it was built for the same page shape.
	if cached.Pagination.PerPage != req.Limit() {
		return nil
	}

	return &cached
}

func (s *catalogService) writeCachedDestinations(ctx context.Context, result *response.PaginatedResponse[response.DestinationResponse]) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, destinationCacheKey, data, destinationCacheTTL).Err(); err != nil {
		s.log.Warn("Destination cache write failed", zap.Error(err))
	}
}

func (s *catalogService) invalidateDestinationCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, destinationCacheKey).Err(); err != nil {
		s.log.Warn("Destination cache invalidation failed", zap.Error(err))
	}
}
