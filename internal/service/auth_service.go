package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"nuvita/config"
	"nuvita/internal/models"
	"nuvita/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCreds      = errors.New("invalid email or password")
	ErrEmailExists       = errors.New("email already registered")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrSuperAdminOnly    = errors.New("super admin privileges required")
	ErrCannotDeleteSuper = errors.New("super admin account cannot be deleted")
)

type AuthService struct {
	cfg         *config.Config
	adminRepo   *repository.AdminRepository
	sessionRepo *repository.SessionRepository
}

func NewAuthService(cfg *config.Config, adminRepo *repository.AdminRepository, sessionRepo *repository.SessionRepository) *AuthService {
	return &AuthService{cfg: cfg, adminRepo: adminRepo, sessionRepo: sessionRepo}
}

// Login verifies credentials and mints a server-side session valid for the
// configured TTL. The returned token goes into the browser cookie.
func (s *AuthService) Login(email, password string) (*models.Admin, string, error) {
	a, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := newSessionToken()
	if err != nil {
		return nil, "", err
	}
	sess := &models.AdminSession{
		Token:      token,
		AdminID:    a.ID,
		AdminEmail: a.Email,
		ExpiresAt:  time.Now().Add(s.cfg.Session.TTL),
	}
	if err := s.sessionRepo.Create(sess); err != nil {
		return nil, "", err
	}
	return a, token, nil
}

// Authenticate resolves a cookie token to a live session. Expired or
// unknown tokens come back as gorm.ErrRecordNotFound.
func (s *AuthService) Authenticate(token string) (*models.AdminSession, error) {
	return s.sessionRepo.GetByToken(token)
}

// Logout destroys the session so a stolen cookie is useless afterwards.
func (s *AuthService) Logout(token string) error {
	return s.sessionRepo.DeleteByToken(token)
}

func (s *AuthService) IsSuperAdmin(email string) bool {
	return email == s.cfg.Admin.SuperAdminEmail
}

func (s *AuthService) ListAdmins() ([]models.Admin, error) {
	return s.adminRepo.List()
}

// CreateAdmin registers a new CMS account. Email uniqueness is enforced by
// the unique index; the pre-check only produces the friendly error.
func (s *AuthService) CreateAdmin(email, name, password string) (*models.Admin, error) {
	if _, err := s.adminRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	a := &models.Admin{Email: email, Name: name, PasswordHash: string(hash)}
	if err := s.adminRepo.Create(a); err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return a, nil
}

// ChangePassword verifies the current password before setting the new one,
// then revokes the admin's other sessions.
func (s *AuthService) ChangePassword(email, current, newPassword string) error {
	a, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(current)); err != nil {
		return ErrInvalidCreds
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.adminRepo.UpdatePassword(email, string(hash)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	return s.sessionRepo.DeleteByAdmin(a.ID)
}

// DeleteAdmin removes an admin account. Caller must be the super admin, and
// the super admin row itself is immortal.
func (s *AuthService) DeleteAdmin(callerEmail string, targetID uint) error {
	if !s.IsSuperAdmin(callerEmail) {
		return ErrSuperAdminOnly
	}
	target, err := s.adminRepo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	if s.IsSuperAdmin(target.Email) {
		return ErrCannotDeleteSuper
	}
	if err := s.adminRepo.Delete(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}
	return s.sessionRepo.DeleteByAdmin(targetID)
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
