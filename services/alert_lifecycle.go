package services

import (
	"fmt"
	"time"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"
)

// Lifecycle transitions. Notes are an append-only audit channel: every
// transition that carries a note appends it, nothing ever overwrites.

// Resolve moves an alert to resolved. Resolving an already-resolved alert
// is a no-op success; the transition is terminal and idempotent.
func (s *AlertService) Resolve(id uint, resolvedBy, notes string) (*models.Alert, error) {
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if a.Status == models.StatusResolved {
		return a, nil
	}

	a.Status = models.StatusResolved
	entry := fmt.Sprintf("[Resolved on %s by %s]", time.Now().Format("2006-01-02"), resolvedBy)
	if notes != "" {
		entry += ": " + notes
	}
	a.Notes = appendNote(a.Notes, entry)

	if err := s.db.Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// Postpone moves the due date and forces the alert back to open, covering
// the case where it had drifted to in_progress. The postponement reason is
// appended so the notes field keeps the full history.
func (s *AlertService) Postpone(id uint, newDueAt time.Time, postponedBy, notes string) (*models.Alert, error) {
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	due := newDueAt
	a.DueAt = &due
	a.Status = models.StatusOpen

	entry := fmt.Sprintf("[Postponed on %s]: %s", time.Now().Format("2006-01-02"), notes)
	if postponedBy != "" {
		entry += " (" + postponedBy + ")"
	}
	a.Notes = appendNote(a.Notes, entry)

	if err := s.db.Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func appendNote(existing, entry string) string {
	if existing == "" {
		return entry
	}
	return existing + "\n" + entry
}
