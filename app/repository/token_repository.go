package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/sahanperera/lankatrails/app/models"
)

// tokenRepository implements the TokenRepository interface
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new refresh token repository instance
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Create stores a new refresh token record
func (r *tokenRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// GetValid returns the token for the user if it exists, is not revoked and
// has not expired yet.
func (r *tokenRepository) GetValid(userID uint, tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.
		Where("user_id = ? AND token_hash = ? AND revoked = ? AND expires_at > ?",
			userID, tokenHash, false, time.Now()).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Revoke marks a single token as revoked
func (r *tokenRepository) Revoke(id uint) error {
	now := time.Now()
	return r.db.Model(&models.RefreshToken{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"revoked": true, "revoked_at": now}).Error
}

// RevokeAllForUser revokes every live token of a user and returns the count
func (r *tokenRepository) RevokeAllForUser(userID uint) (int64, error) {
	now := time.Now()
	result := r.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Updates(map[string]interface{}{"revoked": true, "revoked_at": now})
	return result.RowsAffected, result.Error
}

// DeleteExpired removes tokens whose expiry has passed
func (r *tokenRepository) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}
