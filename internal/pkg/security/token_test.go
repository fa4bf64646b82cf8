package security

import (
	"testing"
	"time"
)

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()

	m, err := NewTokenManager("test-secret", 30*time.Minute, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("failed to create token manager: %v", err)
	}
	return m
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenManager("", time.Minute, time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	token, err := m.CreateAccessToken(42, "admin")
	if err != nil {
		t.Fatalf("failed to create access token: %v", err)
	}

	claims, err := m.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("failed to verify access token: %v", err)
	}
	userID, err := claims.UserID()
	if err != nil {
		t.Fatalf("failed to parse user id: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id = %d, want 42", userID)
	}
	if claims.Role != "admin" {
		t.Fatalf("role = %q, want admin", claims.Role)
	}
}

func TestRefreshToken_RoundTripAndUniqueness(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	first, err := m.CreateRefreshToken(7)
	if err != nil {
		t.Fatalf("failed to create refresh token: %v", err)
	}
	second, err := m.CreateRefreshToken(7)
	if err != nil {
		t.Fatalf("failed to create refresh token: %v", err)
	}

	// Each issued token carries a fresh jti so the stored hashes differ even
	// for the same user within the same second.
	if first == second {
		t.Fatalf("two refresh tokens for the same user must differ")
	}

	claims, err := m.VerifyRefreshToken(first)
	if err != nil {
		t.Fatalf("failed to verify refresh token: %v", err)
	}
	userID, err := claims.UserID()
	if err != nil {
		t.Fatalf("failed to parse user id: %v", err)
	}
	if userID != 7 {
		t.Fatalf("user id = %d, want 7", userID)
	}
}

func TestVerify_RejectsWrongTokenType(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	access, err := m.CreateAccessToken(1, "user")
	if err != nil {
		t.Fatalf("failed to create access token: %v", err)
	}
	refresh, err := m.CreateRefreshToken(1)
	if err != nil {
		t.Fatalf("failed to create refresh token: %v", err)
	}

	if _, err := m.VerifyRefreshToken(access); err != ErrInvalidToken {
		t.Fatalf("access token must not pass refresh verification, got %v", err)
	}
	if _, err := m.VerifyAccessToken(refresh); err != ErrInvalidToken {
		t.Fatalf("refresh token must not pass access verification, got %v", err)
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	other, err := NewTokenManager("other-secret", 30*time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("failed to create token manager: %v", err)
	}

	token, err := m.CreateAccessToken(1, "user")
	if err != nil {
		t.Fatalf("failed to create access token: %v", err)
	}
	if _, err := other.VerifyAccessToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	m, err := NewTokenManager("test-secret", -time.Minute, -time.Minute)
	if err != nil {
		t.Fatalf("failed to create token manager: %v", err)
	}

	token, err := m.CreateAccessToken(1, "user")
	if err != nil {
		t.Fatalf("failed to create access token: %v", err)
	}
	if _, err := m.VerifyAccessToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_RejectsGarbage(t *testing.T) {
	t.Parallel()

	m := newTestManager(t)
	if _, err := m.VerifyAccessToken("not-a-jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage input, got %v", err)
	}
}

func TestClaims_UserIDRejectsInvalidSubject(t *testing.T) {
	t.Parallel()

	for _, subject := range []string{"", "0", "abc", "-1"} {
		claims := &Claims{}
		claims.Subject = subject
		if _, err := claims.UserID(); err != ErrInvalidToken {
			t.Fatalf("subject %q: expected ErrInvalidToken, got %v", subject, err)
		}
	}
}
