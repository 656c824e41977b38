package models

import "time"

// Supplier is an external provider whose quality certification expiration
// is monitored.
type Supplier struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	TaxID                  string     `gorm:"size:20;uniqueIndex;not null" json:"tax_id"`
	Name                   string     `gorm:"size:120;not null" json:"name"`
	Active                 bool       `gorm:"default:true" json:"active"`
	CertificationExpiresAt *time.Time `json:"certification_expires_at"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func (s *Supplier) Label() string {
	return s.Name
}
