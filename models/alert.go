package models

import "time"

// Alert priorities, in display order.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Alert statuses. Resolved is terminal.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// Alert categories used by the generator.
const (
	CategoryDocumentation = "Documentation"
	CategoryMaintenance   = "Maintenance"
	CategoryPersonnel     = "Personnel"
	CategorySuppliers     = "Suppliers"
)

// Alert is an action item raised against a monitored entity when one of its
// compliance documents is near or past expiration. The subject_* fields are a
// weak reference: deleting the subject leaves a stale label behind, it never
// cascades into the alert.
//
// idx_alerts_open_key is a partial unique index: at most one open alert per
// (subject_kind, subject_id, kind). The index is the enforcement point for
// the dedup invariant no matter which caller inserts.
type Alert struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Kind         string     `gorm:"size:40;not null;uniqueIndex:idx_alerts_open_key,where:status = 'open'" json:"kind"`
	Category     string     `gorm:"size:60" json:"category"`
	Priority     string     `gorm:"size:10;not null" json:"priority"`
	Title        string     `gorm:"size:200" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	SubjectKind  string     `gorm:"size:20;not null;uniqueIndex:idx_alerts_open_key" json:"subject_kind"`
	SubjectID    string     `gorm:"size:40;not null;uniqueIndex:idx_alerts_open_key" json:"subject_id"`
	SubjectLabel string     `gorm:"size:120" json:"subject_label"`
	GeneratedAt  time.Time  `json:"generated_at"`
	DueAt        *time.Time `json:"due_at"`
	Status       string     `gorm:"size:15;not null;default:open;index" json:"status"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PriorityRank maps a priority to its sort position (critical first).
// Unknown values sort last.
func PriorityRank(p string) int {
	switch p {
	case PriorityCritical:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 4
	default:
		return 5
	}
}

func ValidPriority(p string) bool {
	return PriorityRank(p) <= 4
}

func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}
