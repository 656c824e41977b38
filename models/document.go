package models

import "time"

// Document is the metadata row for a compliance file stored in S3
// (insurance policy, inspection certificate, ...). Like an alert subject,
// the owner reference is weak.
type Document struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubjectKind  string    `gorm:"size:20;index:idx_documents_subject;not null" json:"subject_kind"`
	SubjectID    string    `gorm:"size:40;index:idx_documents_subject;not null" json:"subject_id"`
	Kind         string    `gorm:"size:40" json:"kind"`
	OriginalName string    `gorm:"size:200" json:"original_name"`
	ContentType  string    `gorm:"size:80" json:"content_type"`
	URL          string    `gorm:"size:400" json:"url"`
	UploadedBy   string    `gorm:"size:120" json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}
