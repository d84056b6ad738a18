package usecase

import (
	"context"
	"time"

	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/internal/dto/response"
	"safarsaga-backend/pkg/apperr"
	"safarsaga-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UpdateProfileInput struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*response.UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format %s", userID)
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user %s not found", userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(input); len(errs) > 0 {
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validationf("invalid user ID format %s", userID)
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFoundf("user %s not found", userID)
	}

	if input.FullName != nil {
		user.FullName = input.FullName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}
