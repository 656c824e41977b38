package services

import (
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/utils"

	"gorm.io/gorm"
)

type DocumentService struct {
	db *gorm.DB
	// upload is swappable so tests never touch S3
	upload func(base64Data, keyPrefix string) (url, contentType string, err error)
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{db: db, upload: utils.UploadBase64ToS3}
}

// Upload stores the file in S3 under documents/<subject_kind> and persists
// the metadata row.
func (s *DocumentService) Upload(subjectKind, subjectID, kind, originalName, base64Data, uploadedBy string) (*models.Document, error) {
	if subjectKind == "" {
		return nil, &ValidationError{Field: "subject_kind", Reason: "required"}
	}
	if subjectID == "" {
		return nil, &ValidationError{Field: "subject_id", Reason: "required"}
	}
	if base64Data == "" {
		return nil, &ValidationError{Field: "data", Reason: "required"}
	}

	url, contentType, err := s.upload(base64Data, "documents/"+subjectKind)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		SubjectKind:  subjectKind,
		SubjectID:    subjectID,
		Kind:         kind,
		OriginalName: originalName,
		ContentType:  contentType,
		URL:          url,
		UploadedBy:   uploadedBy,
	}
	if err := s.db.Create(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// ListBySubject returns the documents attached to one monitored entity,
// newest first.
func (s *DocumentService) ListBySubject(subjectKind, subjectID string) ([]models.Document, error) {
	var docs []models.Document
	err := s.db.
		Where("subject_kind = ? AND subject_id = ?", subjectKind, subjectID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}
