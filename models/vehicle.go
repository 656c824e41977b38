package models

import "time"

// Vehicle is a fleet unit. The two *ExpiresAt dates are the compliance
// attributes the expiration sweep monitors.
type Vehicle struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Plate               string     `gorm:"size:20;uniqueIndex;not null" json:"plate"`
	Make                string     `gorm:"size:60" json:"make"`
	Model               string     `gorm:"size:60" json:"model"`
	Year                int        `json:"year"`
	Active              bool       `gorm:"default:true" json:"active"`
	InsuranceExpiresAt  *time.Time `json:"insurance_expires_at"`
	InspectionExpiresAt *time.Time `json:"inspection_expires_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (v *Vehicle) Label() string {
	if v.Make == "" {
		return v.Plate
	}
	return v.Plate + " (" + v.Make + " " + v.Model + ")"
}
