package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"reviewhub/internal/api/apperr"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
	"reviewhub/internal/auth"
	"reviewhub/internal/config"
)

// CodeSender delivers a freshly generated confirmation code to the user.
// Delivery is fire-and-forget: a failure is the sender's problem and must
// never undo the stored signup state.
type CodeSender interface {
	SendConfirmationCode(ctx context.Context, username, email, code string) error
}

// Claims is the token payload: identity plus effective role.
type Claims struct {
	UserID   string      `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// Signup creates or reuses the (username, email) account and issues a
	// new confirmation code. Each attempt regenerates the code.
	Signup(ctx context.Context, username, email string) (*models.User, error)
	// IssueToken exchanges a (username, code) pair for a signed JWT. The
	// code is single-use: a successful exchange clears it.
	IssueToken(ctx context.Context, username, code string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo  repository.UserRepository
	sender    CodeSender
	jwtSecret string
	tokenTTL  time.Duration
	logger    *slog.Logger
}

func NewAuthService(userRepo repository.UserRepository, sender CodeSender, cfg *config.Config, logger *slog.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		sender:    sender,
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  cfg.TokenTTL,
		logger:    logger,
	}
}

func (s *authService) Signup(ctx context.Context, username, email string) (*models.User, error) {
	if err := models.ValidateUsername(username); err != nil {
		return nil, &apperr.ValidationError{Msg: err.Error()}
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		// Existing account: the same (username, email) pair may request a
		// fresh code any number of times.
		if user.Email != email {
			return nil, apperr.Validationf("username %q is already registered with a different email", username)
		}
	case errors.Is(err, apperr.ErrNotFound):
		if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
			return nil, apperr.Validationf("email %q is already registered with a different username", email)
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		user = &models.User{
			Username: username,
			Email:    email,
			Role:     models.RoleUser,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	code, err := auth.GenerateCode()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashCode(code)
	if err != nil {
		return nil, err
	}
	user.ConfirmationCode = &hash
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	// Delivery failures are logged, not surfaced: the code is persisted and
	// the user can simply request another one.
	if err := s.sender.SendConfirmationCode(ctx, user.Username, user.Email, code); err != nil {
		s.logger.Error("failed to enqueue confirmation email",
			"username", user.Username, "error", err)
	}

	return user, nil
}

func (s *authService) IssueToken(ctx context.Context, username, code string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", fmt.Errorf("user %q: %w", username, apperr.ErrNotFound)
		}
		return "", err
	}

	if user.ConfirmationCode == nil {
		return "", apperr.ErrInvalidCredentials
	}
	if err := auth.VerifyCode(*user.ConfirmationCode, code); err != nil {
		return "", apperr.ErrInvalidCredentials
	}

	// Single-use: clear the code before handing out the token.
	user.ConfirmationCode = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	return s.generateToken(user)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.EffectiveRole(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
