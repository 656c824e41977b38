package services

import (
	"errors"
	"time"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"

	"gorm.io/gorm"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

func (s *VehicleService) Create(v *models.Vehicle) error {
	return s.db.Create(v).Error
}

func (s *VehicleService) Get(id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s *VehicleService) List(page, limit int, search string) ([]models.Vehicle, int64, error) {
	q := s.db.Model(&models.Vehicle{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(plate) LIKE LOWER(?) OR LOWER(make) LIKE LOWER(?) OR LOWER(model) LIKE LOWER(?)",
			pattern, pattern, pattern)
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

	var vehicles []models.Vehicle
	err := q.Order("plate ASC").Offset((page - 1) * limit).Limit(limit).Find(&vehicles).Error
	return vehicles, total, err
}

func (s *VehicleService) Update(v *models.Vehicle) error {
	res := s.db.Model(&models.Vehicle{}).Where("id = ?", v.ID).Select("*").Omit("id", "created_at").Updates(v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

func (s *VehicleService) Delete(id uint) error {
	res := s.db.Delete(&models.Vehicle{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVehicleNotFound
	}
	return nil
}

// UpsertByPlate creates or refreshes a vehicle keyed on its plate. Used by
// the spreadsheet import.
func (s *VehicleService) UpsertByPlate(v *models.Vehicle) error {
	return s.db.
		Where("plate = ?", v.Plate).
		Assign(map[string]interface{}{
			"make":                  v.Make,
			"model":                 v.Model,
			"year":                  v.Year,
			"active":                v.Active,
			"insurance_expires_at":  v.InsuranceExpiresAt,
			"inspection_expires_at": v.InspectionExpiresAt,
		}).
		FirstOrCreate(v).Error
}

// ListInsuranceExpiring returns active vehicles whose insurance expires in
// [from, to]. The sweep consumes this as its candidate feed.
func (s *VehicleService) ListInsuranceExpiring(from, to time.Time) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := s.db.
		Where("active = ? AND insurance_expires_at IS NOT NULL AND insurance_expires_at >= ? AND insurance_expires_at <= ?",
			true, from, to).
		Find(&vehicles).Error
	return vehicles, err
}

// ListInspectionExpiring is the technical-inspection counterpart.
func (s *VehicleService) ListInspectionExpiring(from, to time.Time) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := s.db.
		Where("active = ? AND inspection_expires_at IS NOT NULL AND inspection_expires_at >= ? AND inspection_expires_at <= ?",
			true, from, to).
		Find(&vehicles).Error
	return vehicles, err
}
