package service_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"reviewhub/internal/api/apperr"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/service"
	"reviewhub/internal/config"
)

func newAuthService(userRepo *MockUserRepository, sender *MockCodeSender) service.AuthService {
	cfg := &config.Config{
		JWTSecret: "0123456789abcdef0123456789abcdef",
		TokenTTL:  time.Hour,
	}
	return service.NewAuthService(userRepo, sender, cfg, slog.Default())
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("NewUserGetsCode", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		userRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, apperr.ErrNotFound).Once()
		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, apperr.ErrNotFound).Once()
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()
		sender.On("SendConfirmationCode", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string")).
			Return(nil).Once()

		user, err := svc.Signup(context.Background(), "alice", "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.NotNil(t, user.ConfirmationCode)
		assert.Len(t, sender.LastCode, 6)
		userRepo.AssertExpectations(t)
	})

	t.Run("RepeatSignupReissuesCode", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		existing := &models.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(existing, nil).Once()
		userRepo.On("Update", mock.Anything, existing).Return(nil).Once()
		sender.On("SendConfirmationCode", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string")).
			Return(nil).Once()

		_, err := svc.Signup(context.Background(), "alice", "alice@example.com")
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("UsernameTakenByOtherEmail", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		existing := &models.User{Username: "alice", Email: "alice@example.com"}
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(existing, nil).Once()

		_, err := svc.Signup(context.Background(), "alice", "other@example.com")
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("EmailTakenByOtherUsername", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		userRepo.On("FindByUsername", mock.Anything, "bob").Return(nil, apperr.ErrNotFound).Once()
		userRepo.On("FindByEmail", mock.Anything, "alice@example.com").
			Return(&models.User{Username: "alice", Email: "alice@example.com"}, nil).Once()

		_, err := svc.Signup(context.Background(), "bob", "alice@example.com")
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("ReservedUsername", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		_, err := svc.Signup(context.Background(), "me", "me@example.com")
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("SenderFailureDoesNotFailSignup", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		existing := &models.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(existing, nil).Once()
		userRepo.On("Update", mock.Anything, existing).Return(nil).Once()
		sender.On("SendConfirmationCode", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string")).
			Return(assert.AnError).Once()

		_, err := svc.Signup(context.Background(), "alice", "alice@example.com")
		assert.NoError(t, err)
	})
}

func TestAuthService_IssueToken(t *testing.T) {
	t.Run("FullFlow", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		user := &models.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)
		sender.On("SendConfirmationCode", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string")).
			Return(nil).Once()

		_, err := svc.Signup(context.Background(), "alice", "alice@example.com")
		assert.NoError(t, err)

		token, err := svc.IssueToken(context.Background(), "alice", sender.LastCode)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Nil(t, user.ConfirmationCode, "code is single-use")

		claims, err := svc.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, models.RoleUser, claims.Role)
	})

	t.Run("WrongCode", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		user := &models.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)
		sender.On("SendConfirmationCode", mock.Anything, "alice", "alice@example.com", mock.AnythingOfType("string")).
			Return(nil).Once()

		_, err := svc.Signup(context.Background(), "alice", "alice@example.com")
		assert.NoError(t, err)

		_, err = svc.IssueToken(context.Background(), "alice", "000000")
		assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	})

	t.Run("NoOutstandingCode", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		user := &models.User{ID: "u1", Username: "alice"}
		userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil).Once()

		_, err := svc.IssueToken(context.Background(), "alice", "123456")
		assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, apperr.ErrNotFound).Once()

		_, err := svc.IssueToken(context.Background(), "ghost", "123456")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("StaffFlagGrantsAdminClaims", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sender := new(MockCodeSender)
		svc := newAuthService(userRepo, sender)

		user := &models.User{ID: "u2", Username: "root", Email: "root@example.com", Role: models.RoleUser, IsSuperuser: true}
		userRepo.On("FindByUsername", mock.Anything, "root").Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)
		sender.On("SendConfirmationCode", mock.Anything, "root", "root@example.com", mock.AnythingOfType("string")).
			Return(nil).Once()

		_, err := svc.Signup(context.Background(), "root", "root@example.com")
		assert.NoError(t, err)

		token, err := svc.IssueToken(context.Background(), "root", sender.LastCode)
		assert.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, claims.Role)
	})
}
