package repository

import (
	"nuvita/internal/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(p *models.PackageProduct) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) GetByID(id uint) (*models.PackageProduct, error) {
	var p models.PackageProduct
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByPackage returns a package's products ordered by sort_order, ties
// broken by id.
func (r *ProductRepository) ListByPackage(packageID uint) ([]models.PackageProduct, error) {
	var list []models.PackageProduct
	err := r.db.Where("package_id = ?", packageID).
		Order("sort_order ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *ProductRepository) Update(p *models.PackageProduct) error {
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.PackageProduct{}, id).Error
}
