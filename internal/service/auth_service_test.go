package service

import (
	"testing"

	"todo-service/pkg/config"
	"todo-service/pkg/jwtutil"

	"github.com/google/uuid"
)

func newAuthService(m *memStore) *AuthService {
	tokens := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "test-secret", ExpireMinutes: 30})
	return NewAuthService(m, tokens, nil)
}

func TestLoginAndVerifyRoundtrip(t *testing.T) {
	m := newMemStore()
	companyID := uuid.New()
	alice := seedUser(m, "alice", "Password123", companyID, false)
	s := newAuthService(m)

	token, err := s.Login("alice", "Password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user, err := s.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if user.ID != alice.ID {
		t.Fatalf("verify resolved user %s, want %s", user.ID, alice.ID)
	}
	if user.CompanyID != companyID {
		t.Fatalf("verify resolved company %s, want %s", user.CompanyID, companyID)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	m := newMemStore()
	seedUser(m, "alice", "Password123", uuid.New(), false)
	s := newAuthService(m)

	_, unknownErr := s.Login("nobody", "Password123")
	_, wrongErr := s.Login("alice", "wrong")

	if unknownErr != ErrIncorrectCredentials {
		t.Fatalf("unknown username error = %v, want ErrIncorrectCredentials", unknownErr)
	}
	if wrongErr != ErrIncorrectCredentials {
		t.Fatalf("wrong password error = %v, want ErrIncorrectCredentials", wrongErr)
	}

	// Repeated failures stay identical; there is no lockout counter.
	for i := 0; i < 3; i++ {
		if _, err := s.Login("alice", "wrong"); err != ErrIncorrectCredentials {
			t.Fatalf("attempt %d error = %v, want ErrIncorrectCredentials", i+1, err)
		}
	}
}

func TestLoginDoesNotCheckActive(t *testing.T) {
	m := newMemStore()
	alice := seedUser(m, "alice", "Password123", uuid.New(), false)
	alice.IsActive = false
	s := newAuthService(m)

	// Inactive users can still obtain a token; every verify rejects it.
	token, err := s.Login("alice", "Password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := s.Verify(token); err != ErrInactiveUser {
		t.Fatalf("verify error = %v, want ErrInactiveUser", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := newMemStore()
	alice := seedUser(m, "alice", "Password123", uuid.New(), false)
	s := newAuthService(m)

	expired := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "test-secret", ExpireMinutes: -1})
	token, err := expired.GenerateToken(alice.ID, alice.CompanyID, alice.IsAdmin)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := s.Verify(token); err != ErrInvalidToken {
		t.Fatalf("verify error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbageAndWrongKey(t *testing.T) {
	m := newMemStore()
	alice := seedUser(m, "alice", "Password123", uuid.New(), false)
	s := newAuthService(m)

	if _, err := s.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("garbage token error = %v, want ErrInvalidToken", err)
	}

	forged := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "other-secret", ExpireMinutes: 30})
	token, err := forged.GenerateToken(alice.ID, alice.CompanyID, alice.IsAdmin)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := s.Verify(token); err != ErrInvalidToken {
		t.Fatalf("forged token error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsDeletedUser(t *testing.T) {
	m := newMemStore()
	alice := seedUser(m, "alice", "Password123", uuid.New(), false)
	s := newAuthService(m)

	token, err := s.Login("alice", "Password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := m.Users().Delete(alice); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Verify(token); err != ErrInvalidToken {
		t.Fatalf("verify error = %v, want ErrInvalidToken", err)
	}
}

func TestDeactivationLocksOutOutstandingToken(t *testing.T) {
	m := newMemStore()
	alice := seedUser(m, "alice", "Password123", uuid.New(), false)
	s := newAuthService(m)

	token, err := s.Login("alice", "Password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := s.Verify(token); err != nil {
		t.Fatalf("verify before deactivation failed: %v", err)
	}

	alice.IsActive = false
	if _, err := s.Verify(token); err != ErrInactiveUser {
		t.Fatalf("verify after deactivation error = %v, want ErrInactiveUser", err)
	}
}

func TestVerifyRejectsStaleCompanyClaim(t *testing.T) {
	m := newMemStore()
	alice := seedUser(m, "alice", "Password123", uuid.New(), false)
	s := newAuthService(m)

	token, err := s.Login("alice", "Password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Reassigning the user to another company invalidates the old token.
	alice.CompanyID = uuid.New()
	if _, err := s.Verify(token); err != ErrInvalidToken {
		t.Fatalf("verify error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenCarriesExpectedClaims(t *testing.T) {
	tokens := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "test-secret", ExpireMinutes: 30})
	userID := uuid.New()
	companyID := uuid.New()

	token, err := tokens.GenerateToken(userID, companyID, true)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := tokens.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Fatalf("sub = %q, want %q", claims.Subject, userID.String())
	}
	if claims.CompanyID != companyID.String() {
		t.Fatalf("company_id = %q, want %q", claims.CompanyID, companyID.String())
	}
	if !claims.IsAdmin {
		t.Fatalf("is_admin = false, want true")
	}
	if claims.TokenType != "access" {
		t.Fatalf("type = %q, want %q", claims.TokenType, "access")
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("exp claim missing")
	}
}
