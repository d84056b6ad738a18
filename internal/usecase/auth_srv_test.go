package usecase

import (
	"context"
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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newAuthTestService(users *MockUserRepository, sessions *MockSessionRepository) AuthService {
	repo := &repository.Repository{
		User:    users,
		Session: sessions,
	}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return NewAuthService(repo, config, zap.NewNop())
}

func activeUser(id uuid.UUID, password string) *entity.User {
	hash, _ := utils.HashPassword(password)
	return &entity.User{
		Base:         entity.Base{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username:     "wanderer",
		Email:        "wanderer@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
}

func TestRegister_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	service := newAuthTestService(mockUsers, mockSessions)

	mockUsers.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	mockUsers.On("FindByUsername", mock.Anything, "newcomer").Return(nil, nil)
	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	mockSessions.On("Create", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(nil)

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "newcomer",
		Email:    "new@example.com",
		Password: "a long password",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, "newcomer", resp.User.Username)
		assert.NotEmpty(t, resp.Token)
	}
	mockUsers.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	service := newAuthTestService(mockUsers, mockSessions)

	existing := activeUser(uuid.New(), "whatever else")
	mockUsers.On("FindByEmail", mock.Anything, "wanderer@example.com").Return(existing, nil)

	resp, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "someone",
		Email:    "wanderer@example.com",
		Password: "a long password",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	service := newAuthTestService(mockUsers, mockSessions)

	user := activeUser(uuid.New(), "right password")
	mockUsers.On("FindByEmail", mock.Anything, "wanderer").Return(nil, nil)
	mockUsers.On("FindByUsername", mock.Anything, "wanderer").Return(user, nil)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "wanderer",
		Password: "wrong password",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
}

func TestLogin_DeactivatedUser(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	service := newAuthTestService(mockUsers, mockSessions)

	user := activeUser(uuid.New(), "right password")
	user.IsActive = false
	mockUsers.On("FindByEmail", mock.Anything, "wanderer").Return(nil, nil)
	mockUsers.On("FindByUsername", mock.Anything, "wanderer").Return(user, nil)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Username: "wanderer",
		Password: "right password",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
}

func TestChangePassword_RevokesAllSessions(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	service := newAuthTestService(mockUsers, mockSessions)

	userID := uuid.New()
	user := activeUser(userID, "old password")

	mockUsers.On("FindByID", mock.Anything, userID).Return(user, nil)
	mockUsers.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	mockSessions.On("RevokeAllUserSessions", mock.Anything, userID).Return(nil)

	err := service.ChangePassword(context.Background(), userID.String(), &request.ChangePasswordRequest{
		OldPassword: "old password",
		NewPassword: "brand new password",
	})

	assert.NoError(t, err)
	mockSessions.AssertCalled(t, "RevokeAllUserSessions", mock.Anything, userID)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSessions := new(MockSessionRepository)
	service := newAuthTestService(mockUsers, mockSessions)

	userID := uuid.New()
	user := activeUser(userID, "old password")
	mockUsers.On("FindByID", mock.Anything, userID).Return(user, nil)

	err := service.ChangePassword(context.Background(), userID.String(), &request.ChangePasswordRequest{
		OldPassword: "not the old password",
		NewPassword: "brand new password",
	})

	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
	mockUsers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockSessions.AssertNotCalled(t, "RevokeAllUserSessions", mock.Anything, mock.Anything)
}
