package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sahanperera/lankatrails/internal/pkg/env"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by access and refresh tokens.
type Claims struct {
	Role      string `json:"role,omitempty"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into a user id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// TokenManager creates and validates the HS256-signed access and refresh
// tokens used by the API.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager builds a manager from the given secret and lifetimes.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// RefreshTTL returns the refresh token lifetime, used for cookie max age and
// the stored expiry.
func (m *TokenManager) RefreshTTL() time.Duration {
	return m.refreshTTL
}

// CreateAccessToken issues a short-lived access token carrying the user's
// id and role.
func (m *TokenManager) CreateAccessToken(userID uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:      role,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// CreateRefreshToken issues a long-lived refresh token. The jti makes every
// issued token unique so its hash can be stored and revoked individually.
func (m *TokenManager) CreateRefreshToken(userID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.refreshTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// VerifyAccessToken validates signature, expiry and token type.
func (m *TokenManager) VerifyAccessToken(token string) (*Claims, error) {
	return m.verify(token, TokenTypeAccess)
}

// VerifyRefreshToken validates signature, expiry and token type.
func (m *TokenManager) VerifyRefreshToken(token string) (*Claims, error) {
	return m.verify(token, TokenTypeRefresh)
}

func (m *TokenManager) verify(token, tokenType string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

var tokenManager *TokenManager

// SetupTokenManager initializes the shared token manager from the environment.
func SetupTokenManager() {
	accessMinutes := env.GetEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	refreshDays := env.GetEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 30)

	manager, err := NewTokenManager(
		env.GetEnv("JWT_SECRET", ""),
		time.Duration(accessMinutes)*time.Minute,
		time.Duration(refreshDays)*24*time.Hour,
	)
	if err != nil {
		panic(err)
	}
	tokenManager = manager
}

// GetTokenManager returns the shared token manager instance.
func GetTokenManager() *TokenManager {
	if tokenManager == nil {
		SetupTokenManager()
	}
	return tokenManager
}
