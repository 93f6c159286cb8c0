package repository

import (
	"nuvita/internal/models"

	"gorm.io/gorm"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(i *models.Inquiry) error {
	return r.db.Create(i).Error
}

// List returns inquiries newest first, optionally filtered to unhandled.
func (r *InquiryRepository) List(unhandledOnly bool, page, limit int) ([]models.Inquiry, int64, error) {
	q := r.db.Model(&models.Inquiry{})
	if unhandledOnly {
		q = q.Where("handled = ?", false)
	}
	var total int64
	q.Count(&total)
	var list []models.Inquiry
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&list).Error
	return list, total, err
}

func (r *InquiryRepository) MarkHandled(id uint, handled bool) error {
	res := r.db.Model(&models.Inquiry{}).Where("id = ?", id).Update("handled", handled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
