package service

import (
	"todo-service/internal/model"
	"todo-service/internal/store"
	"todo-service/pkg/jwtutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates principals and verifies the access tokens it
// issues. Tokens are stateless: validity is signature plus expiry, re-checked
// against the live user row on every call.
type AuthService struct {
	store  store.Store
	tokens *jwtutil.JWTUtil
	logger *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(st store.Store, tokens *jwtutil.JWTUtil, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{store: st, tokens: tokens, logger: logger}
}

// Login authenticates a user by username and password and returns a signed
// access token. Unknown usernames and wrong passwords fail identically so the
// response never confirms whether a username exists. Deactivated users can
// still log in; every authenticated call rejects them at verify time instead.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.store.Users().GetByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil {
		s.logger.Info("login attempt with unknown username", zap.String("username", username))
		return "", ErrIncorrectCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		s.logger.Info("login failed with wrong password", zap.String("username", username))
		return "", ErrIncorrectCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.CompanyID, user.IsAdmin)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		return "", err
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("company_id", user.CompanyID.String()))
	return token, nil
}

// Verify validates a token and resolves it to a live, active user. It fails
// when the signature or expiry is bad, the subject is malformed, the user no
// longer exists, the user is inactive, or the token's company no longer
// matches the user's current company (a stale token after reassignment).
func (s *AuthService) Verify(tokenString string) (*model.User, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.store.Users().GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	if claims.CompanyID != "" && claims.CompanyID != user.CompanyID.String() {
		return nil, ErrInvalidToken
	}

	return user, nil
}

// HashPassword derives the stored one-way verifier for a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
