package services_test

import (
	"strings"
	"testing"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_TransitionsAndRecordsNote(t *testing.T) {
	svc := services.NewAlertService(newTestDB(t))

	a := newAlert("insurance", "V1")
	require.NoError(t, svc.Create(a))

	resolved, err := svc.Resolve(a.ID, "m.garcia", "renewed policy")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, resolved.Status)
	assert.Contains(t, resolved.Notes, "Resolved on")
	assert.Contains(t, resolved.Notes, "m.garcia")
	assert.Contains(t, resolved.Notes, "renewed policy")
}

func TestResolve_Idempotent(t *testing.T) {
	svc := services.NewAlertService(newTestDB(t))

	a := newAlert("insurance", "V1")
	require.NoError(t, svc.Create(a))

	first, err := svc.Resolve(a.ID, "m.garcia", "done")
	require.NoError(t, err)

	// Second resolve succeeds and changes nothing.
	second, err := svc.Resolve(a.ID, "someone.else", "again")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, second.Status)
	assert.Equal(t, first.Notes, second.Notes)
}

func TestResolve_NotFound(t *testing.T) {
	svc := services.NewAlertService(newTestDB(t))
	_, err := svc.Resolve(4242, "x", "")
	assert.ErrorIs(t, err, services.ErrAlertNotFound)
}

func TestPostpone_MovesDueDateAndReopens(t *testing.T) {
	svc := services.NewAlertService(newTestDB(t))

	a := newAlert("insurance", "V1")
	a.DueAt = datePtr(day(2024, 6, 10))
	require.NoError(t, svc.Create(a))

	// Drift into in_progress first; postponing must force it back to open.
	require.NoError(t, svc.SetStatus(a.ID, models.StatusInProgress))

	newDue := day(2024, 7, 1)
	postponed, err := svc.Postpone(a.ID, newDue, "m.garcia", "waiting for insurer")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOpen, postponed.Status)
	require.NotNil(t, postponed.DueAt)
	assert.True(t, postponed.DueAt.Equal(newDue))
	assert.Contains(t, postponed.Notes, "[Postponed on ")
	assert.Contains(t, postponed.Notes, "waiting for insurer")
}

func TestPostpone_PreservesHistory(t *testing.T) {
	svc := services.NewAlertService(newTestDB(t))

	a := newAlert("insurance", "V1")
	a.Notes = "created by sweep"
	require.NoError(t, svc.Create(a))

	_, err := svc.Postpone(a.ID, day(2024, 7, 1), "m.garcia", "first delay")
	require.NoError(t, err)

	final, err := svc.Postpone(a.ID, day(2024, 8, 1), "m.garcia", "second delay")
	require.NoError(t, err)

	assert.Contains(t, final.Notes, "created by sweep")
	assert.Contains(t, final.Notes, "first delay")
	assert.Contains(t, final.Notes, "second delay")

	// Chronological order: first entry before the second.
	assert.Less(t,
		strings.Index(final.Notes, "first delay"),
		strings.Index(final.Notes, "second delay"))
	assert.Equal(t, models.StatusOpen, final.Status)
}

func TestPostpone_NotFound(t *testing.T) {
	svc := services.NewAlertService(newTestDB(t))
	_, err := svc.Postpone(4242, day(2024, 7, 1), "x", "")
	assert.ErrorIs(t, err, services.ErrAlertNotFound)
}
