package services

import (
	"errors"
	"time"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"

	"gorm.io/gorm"
)

var ErrSupplierNotFound = errors.New("supplier not found")

type SupplierService struct {
	db *gorm.DB
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db}
}

func (s *SupplierService) Create(sp *models.Supplier) error {
	return s.db.Create(sp).Error
}

func (s *SupplierService) Get(id uint) (*models.Supplier, error) {
	var sp models.Supplier
	if err := s.db.First(&sp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	return &sp, nil
}

func (s *SupplierService) List(page, limit int, search string) ([]models.Supplier, int64, error) {
	q := s.db.Model(&models.Supplier{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(tax_id) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var suppliers []models.Supplier
	err := q.Order("name ASC").Offset((page - 1) * limit).Limit(limit).Find(&suppliers).Error
	return suppliers, total, err
}

func (s *SupplierService) Update(sp *models.Supplier) error {
	res := s.db.Model(&models.Supplier{}).Where("id = ?", sp.ID).Select("*").Omit("id", "created_at").Updates(sp)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

func (s *SupplierService) Delete(id uint) error {
	res := s.db.Delete(&models.Supplier{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

func (s *SupplierService) ListCertificationExpiring(from, to time.Time) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := s.db.
		Where("active = ? AND certification_expires_at IS NOT NULL AND certification_expires_at >= ? AND certification_expires_at <= ?",
			true, from, to).
		Find(&suppliers).Error
	return suppliers, err
}
