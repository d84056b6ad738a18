package usecase

import (
	"context"
	"time"

	"safarsaga-backend/internal/data/entity"
	"safarsaga-backend/internal/data/repository"
	"safarsaga-backend/internal/dto/request"
	"safarsaga-backend/internal/dto/response"
	"safarsaga-backend/pkg/apperr"
	"safarsaga-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperr.Validation("email already registered")
	}

	existingUser, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperr.Validation("username already taken")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Dependency("process password", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		// Registration succeeded; the user can still log in.
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return s.convertAuthResponse(user, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation(utils.FormatValidationErrors(errs))
	}

	// The identifier may be an email or a username.
	user, err := s.repo.User.FindByEmail(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.repo.User.FindByUsername(ctx, req.Username)
		if err != nil {
			return nil, err
		}
	}

	if user == nil || !user.IsActive {
		s.log.Warn("Login rejected", zap.String("identifier", req.Username))
		return nil, apperr.Authorization("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login rejected, bad password", zap.String("user_id", user.ID.String()))
		return nil, apperr.Authorization("invalid credentials")
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.convertAuthResponse(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return err
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return apperr.Validationf("invalid user ID format %s", userID)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFoundf("user %s not found", userID)
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperr.Authorization("current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return apperr.Dependency("process password", err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return err
	}

	// Every session is revoked; the user signs in again with the new password.
	if err := s.repo.Session.RevokeAllUserSessions(ctx, id); err != nil {
		s.log.Warn("Failed to revoke sessions after password change",
			zap.Error(err),
			zap.String("user_id", userID),
		)
	}

	s.log.Info("Password changed", zap.String("user_id", userID))
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *authService) convertAuthResponse(user *entity.User, session *entity.Session) *response.AuthResponse {
	resp := &response.AuthResponse{
		User: response.UserToResponse(user),
	}
	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = &session.ExpiresAt
	}
	return resp
}
