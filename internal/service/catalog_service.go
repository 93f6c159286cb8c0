package service

import (
	"errors"
	"strings"

	"nuvita/internal/models"
	"nuvita/internal/repository"
	"nuvita/pkg/pricing"

	"gorm.io/gorm"
)

var (
	ErrPackageExists   = errors.New("package for this theme and type already exists")
	ErrPackageNotFound = errors.New("package not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type CatalogService struct {
	packageRepo *repository.PackageRepository
	productRepo *repository.ProductRepository
}

func NewCatalogService(packageRepo *repository.PackageRepository, productRepo *repository.ProductRepository) *CatalogService {
	return &CatalogService{packageRepo: packageRepo, productRepo: productRepo}
}

func (s *CatalogService) ListPackages() ([]models.Package, error) {
	return s.packageRepo.List()
}

func (s *CatalogService) ListPackagesByTheme(theme string) ([]models.Package, error) {
	return s.packageRepo.ListByTheme(theme)
}

func (s *CatalogService) GetPackage(id uint) (*models.Package, error) {
	p, err := s.packageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return p, nil
}

// CreatePackage inserts a new catalog entry. The composite unique index on
// (theme, type) is the authority; the pre-check only exists so the common
// case gets a friendly message instead of a driver error. A duplicate-key
// error from the race window still maps to ErrPackageExists.
func (s *CatalogService) CreatePackage(p *models.Package) error {
	if _, err := s.packageRepo.GetByThemeAndType(p.Theme, p.Type); err == nil {
		return ErrPackageExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := s.packageRepo.Create(p); err != nil {
		if isDuplicateKeyErr(err) {
			return ErrPackageExists
		}
		return err
	}
	return nil
}

// PackageUpdate carries the partial-update fields; nil means unchanged.
type PackageUpdate struct {
	Theme       *string
	Type        *string
	Name        *string
	Description *string
	ImageURL    *string
}

func (s *CatalogService) UpdatePackage(id uint, upd PackageUpdate) (*models.Package, error) {
	p, err := s.GetPackage(id)
	if err != nil {
		return nil, err
	}
	if upd.Theme != nil {
		p.Theme = *upd.Theme
	}
	if upd.Type != nil {
		p.Type = *upd.Type
	}
	if upd.Theme != nil || upd.Type != nil {
		if existing, err := s.packageRepo.GetByThemeAndType(p.Theme, p.Type); err == nil && existing.ID != p.ID {
			return nil, ErrPackageExists
		}
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		p.ImageURL = *upd.ImageURL
	}
	if err := s.packageRepo.Update(p); err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrPackageExists
		}
		return nil, err
	}
	return p, nil
}

// DeletePackage cascades: the package and all its products go together.
func (s *CatalogService) DeletePackage(id uint) error {
	if _, err := s.GetPackage(id); err != nil {
		return err
	}
	return s.packageRepo.DeleteCascade(id)
}

// ListProducts returns a package's products in display order.
func (s *CatalogService) ListProducts(packageID uint) ([]models.PackageProduct, error) {
	if _, err := s.GetPackage(packageID); err != nil {
		return nil, err
	}
	return s.productRepo.ListByPackage(packageID)
}

func (s *CatalogService) CreateProduct(p *models.PackageProduct) error {
	if _, err := s.GetPackage(p.PackageID); err != nil {
		return err
	}
	if p.Quantity < 1 {
		p.Quantity = 1
	}
	if err := s.productRepo.Create(p); err != nil {
		return err
	}
	return s.recomputeTotals(p.PackageID)
}

// ProductUpdate carries the partial-update fields; nil means unchanged.
type ProductUpdate struct {
	ProductName        *string
	ProductDescription *string
	Price              *string
	PointValue         *int
	Quantity           *int
	SortOrder          *int
}

func (s *CatalogService) UpdateProduct(id uint, upd ProductUpdate) (*models.PackageProduct, error) {
	p, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if upd.Quantity != nil && *upd.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if upd.ProductName != nil {
		p.ProductName = *upd.ProductName
	}
	if upd.ProductDescription != nil {
		p.ProductDescription = *upd.ProductDescription
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.PointValue != nil {
		p.PointValue = *upd.PointValue
	}
	if upd.Quantity != nil {
		p.Quantity = *upd.Quantity
	}
	if upd.SortOrder != nil {
		p.SortOrder = *upd.SortOrder
	}
	if err := s.productRepo.Update(p); err != nil {
		return nil, err
	}
	if err := s.recomputeTotals(p.PackageID); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProductQuantity sets an explicit quantity. Values below 1 are a
// validation error, never a silent clamp.
func (s *CatalogService) UpdateProductQuantity(id uint, quantity int) (*models.PackageProduct, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return s.UpdateProduct(id, ProductUpdate{Quantity: &quantity})
}

func (s *CatalogService) DeleteProduct(id uint) error {
	p, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	return s.recomputeTotals(p.PackageID)
}

// Totals returns the live computed totals for a package's product list.
func (s *CatalogService) Totals(packageID uint) (pricing.Totals, error) {
	products, err := s.ListProducts(packageID)
	if err != nil {
		return pricing.Totals{}, err
	}
	return pricing.Calculate(toItems(products)), nil
}

// recomputeTotals refreshes the cached display total and point sum on the
// owning package after any product mutation.
func (s *CatalogService) recomputeTotals(packageID uint) error {
	p, err := s.packageRepo.GetByID(packageID)
	if err != nil {
		return err
	}
	products, err := s.productRepo.ListByPackage(packageID)
	if err != nil {
		return err
	}
	totals := pricing.Calculate(toItems(products))
	p.TotalPrice = pricing.FormatPrice(totals.TotalPrice)
	p.TotalPoints = totals.TotalPoints
	return s.packageRepo.Update(p)
}

func toItems(products []models.PackageProduct) []pricing.Item {
	items := make([]pricing.Item, 0, len(products))
	for _, p := range products {
		items = append(items, pricing.Item{Price: p.Price, PointValue: p.PointValue, Quantity: p.Quantity})
	}
	return items
}

// isDuplicateKeyErr detects a unique-index violation across drivers
// (MySQL 1062 in production, sqlite in tests).
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
