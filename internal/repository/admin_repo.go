package repository

import (
	"nuvita/internal/models"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(a *models.Admin) error {
	return r.db.Create(a).Error
}

func (r *AdminRepository) GetByID(id uint) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns admins in creation order.
func (r *AdminRepository) List() ([]models.Admin, error) {
	var list []models.Admin
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *AdminRepository) Update(a *models.Admin) error {
	return r.db.Save(a).Error
}

// UpdatePassword sets a new hash by email. Returns gorm.ErrRecordNotFound
// when no admin matches.
func (r *AdminRepository) UpdatePassword(email, newHash string) error {
	res := r.db.Model(&models.Admin{}).Where("email = ?", email).Update("password_hash", newHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AdminRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Admin{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
