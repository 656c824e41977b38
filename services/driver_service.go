package services

import (
	"errors"
	"time"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"

	"gorm.io/gorm"
)

var ErrDriverNotFound = errors.New("driver not found")

type DriverService struct {
	db *gorm.DB
}

func NewDriverService(db *gorm.DB) *DriverService {
	return &DriverService{db: db}
}

func (s *DriverService) Create(d *models.Driver) error {
	return s.db.Create(d).Error
}

func (s *DriverService) Get(id uint) (*models.Driver, error) {
	var d models.Driver
	if err := s.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *DriverService) List(page, limit int, search string) ([]models.Driver, int64, error) {
	q := s.db.Model(&models.Driver{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(full_name) LIKE LOWER(?) OR LOWER(employee_code) LIKE LOWER(?)", pattern, pattern)
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

	var drivers []models.Driver
	err := q.Order("full_name ASC").Offset((page - 1) * limit).Limit(limit).Find(&drivers).Error
	return drivers, total, err
}

func (s *DriverService) Update(d *models.Driver) error {
	res := s.db.Model(&models.Driver{}).Where("id = ?", d.ID).Select("*").Omit("id", "created_at").Updates(d)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDriverNotFound
	}
	return nil
}

func (s *DriverService) Delete(id uint) error {
	res := s.db.Delete(&models.Driver{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDriverNotFound
	}
	return nil
}

func (s *DriverService) ListLicenseExpiring(from, to time.Time) ([]models.Driver, error) {
	var drivers []models.Driver
	err := s.db.
		Where("active = ? AND license_expires_at IS NOT NULL AND license_expires_at >= ? AND license_expires_at <= ?",
			true, from, to).
		Find(&drivers).Error
	return drivers, err
}

func (s *DriverService) ListHazmatPermitExpiring(from, to time.Time) ([]models.Driver, error) {
	var drivers []models.Driver
	err := s.db.
		Where("active = ? AND hazmat_permit_expires_at IS NOT NULL AND hazmat_permit_expires_at >= ? AND hazmat_permit_expires_at <= ?",
			true, from, to).
		Find(&drivers).Error
	return drivers, err
}
