package services_test

import (
	"strconv"
	"testing"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newGenerator(t *testing.T) (*services.AlertGenerator, *services.AlertService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	alerts := services.NewAlertService(db)
	gen := services.NewAlertGenerator(
		alerts,
		services.NewVehicleService(db),
		services.NewDriverService(db),
		services.NewSupplierService(db),
		nil,
		zap.NewNop().Sugar(),
	)
	return gen, alerts, db
}

func TestRunSweep_CreatesAlertForExpiringInsurance(t *testing.T) {
	gen, alerts, db := newGenerator(t)

	v := &models.Vehicle{
		Plate:              "1234-ABC",
		Make:               "Iveco",
		Model:              "Daily",
		Active:             true,
		InsuranceExpiresAt: datePtr(day(2024, 6, 10)),
	}
	require.NoError(t, db.Create(v).Error)

	created, err := gen.RunSweep(day(2024, 5, 20))
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	list, _, err := alerts.List(services.AlertFilter{Kind: "insurance"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	a := list[0]
	assert.Equal(t, "vehicle", a.SubjectKind)
	assert.Equal(t, strconv.FormatUint(uint64(v.ID), 10), a.SubjectID)
	assert.Equal(t, models.PriorityMedium, a.Priority)
	assert.Equal(t, models.StatusOpen, a.Status)
	assert.True(t, a.GeneratedAt.Equal(day(2024, 5, 20)))
	require.NotNil(t, a.DueAt)
	assert.True(t, a.DueAt.Equal(day(2024, 6, 10)))
}

func TestRunSweep_Idempotent(t *testing.T) {
	gen, _, db := newGenerator(t)

	require.NoError(t, db.Create(&models.Vehicle{
		Plate:              "1234-ABC",
		Active:             true,
		InsuranceExpiresAt: datePtr(day(2024, 6, 10)),
	}).Error)

	created, err := gen.RunSweep(day(2024, 5, 20))
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	// Same reference date, nothing changed: no new alerts.
	created, err = gen.RunSweep(day(2024, 5, 20))
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	// Next day, alert still open: still covered.
	created, err = gen.RunSweep(day(2024, 5, 21))
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestRunSweep_OutsideHorizonIgnored(t *testing.T) {
	gen, _, db := newGenerator(t)

	// 46 days out: beyond the 45-day insurance horizon.
	require.NoError(t, db.Create(&models.Vehicle{
		Plate:              "1234-ABC",
		Active:             true,
		InsuranceExpiresAt: datePtr(day(2024, 7, 5)),
	}).Error)

	created, err := gen.RunSweep(day(2024, 5, 20))
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	// A day later it enters the window.
	created, err = gen.RunSweep(day(2024, 5, 21))
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestRunSweep_InactiveEntitiesIgnored(t *testing.T) {
	gen, _, db := newGenerator(t)

	require.NoError(t, db.Create(&models.Vehicle{
		Plate:              "1234-ABC",
		Active:             false,
		InsuranceExpiresAt: datePtr(day(2024, 6, 10)),
	}).Error)

	created, err := gen.RunSweep(day(2024, 5, 20))
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestRunSweep_AllSourceTypes(t *testing.T) {
	gen, alerts, db := newGenerator(t)

	ref := day(2024, 5, 20)
	require.NoError(t, db.Create(&models.Vehicle{
		Plate:               "1234-ABC",
		Active:              true,
		InsuranceExpiresAt:  datePtr(day(2024, 6, 10)),
		InspectionExpiresAt: datePtr(day(2024, 6, 1)),
	}).Error)
	require.NoError(t, db.Create(&models.Driver{
		EmployeeCode:          "E042",
		FullName:              "Marta Ojeda",
		Active:                true,
		LicenseExpiresAt:      datePtr(day(2024, 6, 5)),
		HazmatPermitExpiresAt: datePtr(day(2024, 6, 7)),
	}).Error)
	require.NoError(t, db.Create(&models.Supplier{
		TaxID:                  "B12345678",
		Name:                   "Talleres Ruiz",
		Active:                 true,
		CertificationExpiresAt: datePtr(day(2024, 6, 3)),
	}).Error)

	created, err := gen.RunSweep(ref)
	require.NoError(t, err)
	assert.Equal(t, 5, created)

	stats, err := alerts.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.Open)

	for _, kind := range []string{"insurance", "technical-inspection", "license", "hazmat-permit", "certification"} {
		list, _, err := alerts.List(services.AlertFilter{Kind: kind})
		require.NoError(t, err)
		assert.Len(t, list, 1, "kind %s", kind)
	}
}

func TestRunSweep_ManualAlertBlocksGeneration(t *testing.T) {
	gen, alerts, db := newGenerator(t)

	v := &models.Vehicle{
		Plate:              "1234-ABC",
		Active:             true,
		InsuranceExpiresAt: datePtr(day(2024, 6, 10)),
	}
	require.NoError(t, db.Create(v).Error)

	// Manually created alert for the same key pre-empts the sweep.
	manual := &models.Alert{
		Kind:        "insurance",
		Title:       "Chase the insurer",
		SubjectKind: "vehicle",
		SubjectID:   strconv.FormatUint(uint64(v.ID), 10),
	}
	require.NoError(t, alerts.Create(manual))

	created, err := gen.RunSweep(day(2024, 5, 20))
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

// End-to-end: create, dedup on re-run, resolve, then re-create on the next
// sweep because the resolved row no longer blocks the key.
func TestRunSweep_ResolveThenRegenerate(t *testing.T) {
	gen, alerts, db := newGenerator(t)

	require.NoError(t, db.Create(&models.Vehicle{
		Plate:              "V1",
		Active:             true,
		InsuranceExpiresAt: datePtr(day(2024, 6, 10)),
	}).Error)

	created, err := gen.RunSweep(day(2024, 5, 20))
	require.NoError(t, err)
	require.Equal(t, 1, created)

	created, err = gen.RunSweep(day(2024, 5, 21))
	require.NoError(t, err)
	require.Equal(t, 0, created)

	open, _, err := alerts.List(services.AlertFilter{Status: models.StatusOpen, Kind: "insurance"})
	require.NoError(t, err)
	require.Len(t, open, 1)

	_, err = alerts.Resolve(open[0].ID, "m.garcia", "policy renewed early")
	require.NoError(t, err)

	created, err = gen.RunSweep(day(2024, 5, 22))
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	stats, err := alerts.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Open)
	assert.EqualValues(t, 1, stats.Resolved)
}
