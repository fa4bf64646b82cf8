package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// RefreshToken stores one issued refresh token per device/session.
// Only the SHA-256 hash of the token ever reaches the database.
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"uniqueIndex;type:varchar(64);not null" json:"-"`
	ExpiresAt time.Time  `gorm:"index;not null" json:"expires_at"`
	Revoked   bool       `gorm:"default:false" json:"revoked"`
	RevokedAt *time.Time `gorm:"type:timestamp;default:null" json:"revoked_at"`
	UserAgent string     `gorm:"type:varchar(500);default:null" json:"-"`
	IPAddress string     `gorm:"type:varchar(45);default:null" json:"-"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// HashRefreshToken derives the storage hash for a raw refresh token.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// IsValid reports whether the token is neither revoked nor expired.
func (t *RefreshToken) IsValid() bool {
	return !t.Revoked && time.Now().Before(t.ExpiresAt)
}
