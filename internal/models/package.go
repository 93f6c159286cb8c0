package models

import "time"

// Package is a themed subscription tier (theme x standard/premium) holding
// an ordered list of products. The (theme, type) pair is unique per catalog
// entry; the composite unique index is what actually enforces it, so two
// racing creates cannot both commit.
type Package struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Theme       string    `gorm:"size:100;not null;uniqueIndex:idx_packages_theme_type" json:"theme"`
	Type        string    `gorm:"size:20;not null;uniqueIndex:idx_packages_theme_type" json:"type"` // standard | premium
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"size:1000" json:"description"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	// TotalPrice is the cached display total, e.g. "118,000원"; TotalPoints
	// the cached point sum. Both refreshed on every product mutation.
	TotalPrice  string    `gorm:"size:50" json:"total_price"`
	TotalPoints int       `gorm:"default:0" json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Products []PackageProduct `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}

func (Package) TableName() string { return "packages" }

// PackageProduct is one line item inside a package. Listing order is
// SortOrder ascending, ties broken by ID ascending.
type PackageProduct struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	PackageID          uint      `gorm:"not null;index" json:"package_id"`
	ProductName        string    `gorm:"size:200;not null" json:"product_name"`
	ProductDescription string    `gorm:"size:1000" json:"product_description"`
	Price              string    `gorm:"size:50" json:"price"` // display string, e.g. "25,000원"
	PointValue         int       `gorm:"default:0" json:"point_value"`
	Quantity           int       `gorm:"default:1" json:"quantity"`
	SortOrder          int       `gorm:"default:0" json:"sort_order"`
	CreatedAt          time.Time `json:"created_at"`
}

func (PackageProduct) TableName() string { return "package_products" }
