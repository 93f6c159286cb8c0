package repository

import (
	"time"

	"nuvita/internal/models"

	"gorm.io/gorm"
)

// SessionRepository is the server-side session store: opaque token in,
// session row out. Injected into the auth middleware instead of living as
// ambient state.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(s *models.AdminSession) error {
	return r.db.Create(s).Error
}

// GetByToken resolves a token to a live session. Expired rows are deleted
// on sight and reported as not found.
func (r *SessionRepository) GetByToken(token string) (*models.AdminSession, error) {
	var s models.AdminSession
	if err := r.db.Where("token = ?", token).First(&s).Error; err != nil {
		return nil, err
	}
	if s.Expired(time.Now()) {
		_ = r.db.Delete(&models.AdminSession{}, s.ID).Error
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *SessionRepository) DeleteByToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.AdminSession{}).Error
}

// DeleteByAdmin revokes every session of one admin (used when the account
// is deleted or its password changes).
func (r *SessionRepository) DeleteByAdmin(adminID uint) error {
	return r.db.Where("admin_id = ?", adminID).Delete(&models.AdminSession{}).Error
}

// DeleteExpired prunes stale rows; callable from a maintenance path.
func (r *SessionRepository) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.AdminSession{}).Error
}
