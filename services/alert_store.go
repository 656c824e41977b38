package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"

	"gorm.io/gorm"
)

var (
	ErrAlertNotFound      = errors.New("alert not found")
	ErrDuplicateOpenAlert = errors.New("an open alert already exists for this subject and kind")
)

// ValidationError reports a missing or malformed field before anything
// reaches the database.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Expression ordering open→…→low first, newest first within a rank. Works
// identically on postgres and sqlite.
const priorityRankExpr = "CASE priority WHEN 'critical' THEN 1 WHEN 'high' THEN 2 WHEN 'medium' THEN 3 WHEN 'low' THEN 4 ELSE 5 END"

type AlertService struct {
	db *gorm.DB
}

func NewAlertService(db *gorm.DB) *AlertService {
	return &AlertService{db: db}
}

// AlertFilter narrows List. Zero values mean "no filter". Search matches
// title and description, case-insensitive.
type AlertFilter struct {
	Kind     string
	Category string
	Priority string
	Status   string
	Search   string
	Page     int
	Limit    int
}

// AlertStats are aggregate counts computed at read time.
type AlertStats struct {
	Total        int64 `json:"total"`
	Open         int64 `json:"open"`
	InProgress   int64 `json:"in_progress"`
	Resolved     int64 `json:"resolved"`
	CriticalOpen int64 `json:"critical_open"`
	HighOpen     int64 `json:"high_open"`
}

// Create validates and inserts a new alert. Returns ErrDuplicateOpenAlert
// when an open alert already exists for the same (subject_kind, subject_id,
// kind); the partial unique index makes the check atomic under concurrent
// creators, so there is no check-then-insert window.
func (s *AlertService) Create(a *models.Alert) error {
	if a.Kind == "" {
		return &ValidationError{Field: "kind", Reason: "required"}
	}
	if a.SubjectKind == "" {
		return &ValidationError{Field: "subject_kind", Reason: "required"}
	}
	if a.SubjectID == "" {
		return &ValidationError{Field: "subject_id", Reason: "required"}
	}
	if a.Title == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if a.Priority == "" {
		a.Priority = models.PriorityMedium
	}
	if !models.ValidPriority(a.Priority) {
		return &ValidationError{Field: "priority", Reason: "must be one of critical, high, medium, low"}
	}
	if a.Status == "" {
		a.Status = models.StatusOpen
	}
	if !models.ValidStatus(a.Status) {
		return &ValidationError{Field: "status", Reason: "must be one of open, in_progress, resolved"}
	}
	if a.GeneratedAt.IsZero() {
		a.GeneratedAt = models.DayStart(time.Now())
	}

	if err := s.db.Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateOpenAlert
		}
		return err
	}
	return nil
}

func (s *AlertService) Get(id uint) (*models.Alert, error) {
	var a models.Alert
	if err := s.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns a page of alerts plus the total match count. Default order:
// priority rank (critical first), then generated_at descending, so an
// unsorted listing always reads "most urgent first".
func (s *AlertService) List(f AlertFilter) ([]models.Alert, int64, error) {
	q := s.db.Model(&models.Alert{})
	if f.Kind != "" {
		q = q.Where("kind = ?", f.Kind)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 20
	}

	var alerts []models.Alert
	err := q.Order(priorityRankExpr).
		Order("generated_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}

// Update persists a full row by ID.
func (s *AlertService) Update(a *models.Alert) error {
	if a.ID == 0 {
		return ErrAlertNotFound
	}
	res := s.db.Model(&models.Alert{}).Where("id = ?", a.ID).Select("*").Omit("id", "created_at").Updates(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

// SetStatus is a targeted status update.
func (s *AlertService) SetStatus(id uint, status string) error {
	if !models.ValidStatus(status) {
		return &ValidationError{Field: "status", Reason: "must be one of open, in_progress, resolved"}
	}
	res := s.db.Model(&models.Alert{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

// HasOpen reports whether an open alert exists for the dedup key.
func (s *AlertService) HasOpen(subjectKind, subjectID, kind string) (bool, error) {
	var n int64
	err := s.db.Model(&models.Alert{}).
		Where("subject_kind = ? AND subject_id = ? AND kind = ? AND status = ?",
			subjectKind, subjectID, kind, models.StatusOpen).
		Count(&n).Error
	return n > 0, err
}

func (s *AlertService) Stats() (*AlertStats, error) {
	var st AlertStats
	type countQuery struct {
		dst  *int64
		cond []interface{}
	}
	queries := []countQuery{
		{&st.Total, nil},
		{&st.Open, []interface{}{"status = ?", models.StatusOpen}},
		{&st.InProgress, []interface{}{"status = ?", models.StatusInProgress}},
		{&st.Resolved, []interface{}{"status = ?", models.StatusResolved}},
		{&st.CriticalOpen, []interface{}{"status = ? AND priority = ?", models.StatusOpen, models.PriorityCritical}},
		{&st.HighOpen, []interface{}{"status = ? AND priority = ?", models.StatusOpen, models.PriorityHigh}},
	}
	for _, cq := range queries {
		q := s.db.Model(&models.Alert{})
		if len(cq.cond) > 0 {
			q = q.Where(cq.cond[0], cq.cond[1:]...)
		}
		if err := q.Count(cq.dst).Error; err != nil {
			return nil, err
		}
	}
	return &st, nil
}

// Upcoming lists open alerts whose due date falls within the next `days`
// days, soonest first.
func (s *AlertService) Upcoming(days int) ([]models.Alert, error) {
	from := models.DayStart(time.Now())
	to := from.AddDate(0, 0, days)

	var alerts []models.Alert
	err := s.db.
		Where("status = ? AND due_at IS NOT NULL AND due_at >= ? AND due_at <= ?",
			models.StatusOpen, from, to).
		Order("due_at ASC").
		Find(&alerts).Error
	return alerts, err
}
