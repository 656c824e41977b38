package models

import "time"

// Driver is a personnel record with monitored license and hazmat-permit
// expirations.
type Driver struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	EmployeeCode          string     `gorm:"size:20;uniqueIndex;not null" json:"employee_code"`
	FullName              string     `gorm:"size:120;not null" json:"full_name"`
	Active                bool       `gorm:"default:true" json:"active"`
	LicenseExpiresAt      *time.Time `json:"license_expires_at"`
	HazmatPermitExpiresAt *time.Time `json:"hazmat_permit_expires_at"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (d *Driver) Label() string {
	return d.FullName + " (" + d.EmployeeCode + ")"
}
