package repository

import (
	"nuvita/internal/models"

	"gorm.io/gorm"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(p *models.Package) error {
	return r.db.Create(p).Error
}

func (r *PackageRepository) GetByID(id uint) (*models.Package, error) {
	var p models.Package
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PackageRepository) GetByThemeAndType(theme, pkgType string) (*models.Package, error) {
	var p models.Package
	err := r.db.Where("theme = ? AND type = ?", theme, pkgType).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all packages in insertion order.
func (r *PackageRepository) List() ([]models.Package, error) {
	var list []models.Package
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *PackageRepository) ListByTheme(theme string) ([]models.Package, error) {
	var list []models.Package
	err := r.db.Where("theme = ?", theme).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *PackageRepository) Update(p *models.Package) error {
	return r.db.Save(p).Error
}

// DeleteCascade removes the package and its products in one transaction.
func (r *PackageRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", id).Delete(&models.PackageProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Package{}, id).Error
	})
}
