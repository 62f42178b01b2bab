package jwtutil

import (
	"errors"
	"fmt"
	"time"

	"todo-service/pkg/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// AccessClaims represents the JWT claims carried by an access token. The
// subject is the user id; company and admin flag are snapshotted at issue time
// and re-checked against the live user row on every verify.
type AccessClaims struct {
	CompanyID string `json:"company_id"`
	IsAdmin   bool   `json:"is_admin"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// JWTUtil signs and validates access tokens. The signing key and lifetime are
// fixed at construction.
type JWTUtil struct {
	config *config.JWTConfig
}

// NewJWTUtil creates a new JWT utility with the given configuration
func NewJWTUtil(cfg *config.JWTConfig) *JWTUtil {
	return &JWTUtil{config: cfg}
}

// GenerateToken creates a signed access token for the given user
func (j *JWTUtil) GenerateToken(userID uuid.UUID, companyID uuid.UUID, isAdmin bool) (string, error) {
	if j.config == nil {
		return "", errors.New("JWT configuration not provided")
	}

	now := time.Now()
	claims := AccessClaims{
		CompanyID: companyID.String(),
		IsAdmin:   isAdmin,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(j.config.ExpireMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.SigningKey))
}

// ValidateToken validates the signature and expiry and parses the claims
func (j *JWTUtil) ValidateToken(tokenString string) (*AccessClaims, error) {
	if j.config == nil {
		return nil, errors.New("JWT configuration not provided")
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&AccessClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(j.config.SigningKey), nil
		},
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AccessClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
