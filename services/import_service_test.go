package services_test

import (
	"bytes"
	"testing"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

var importHeader = []string{"plate", "make", "model", "year", "insurance_expires_at", "inspection_expires_at"}

func TestImportVehicles_CreatesRows(t *testing.T) {
	db := newTestDB(t)
	vehicles := services.NewVehicleService(db)
	importer := services.NewImportService(vehicles)

	wb := buildWorkbook(t, [][]string{
		importHeader,
		{"1234-abc", "Iveco", "Daily", "2019", "2024-06-10", "2024-09-01"},
		{"5678-DEF", "Renault", "Master", "2021", "", "2024-07-15"},
	})

	res, err := importer.ImportVehicles(wb)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Empty(t, res.Skipped)

	var v models.Vehicle
	require.NoError(t, db.Where("plate = ?", "1234-ABC").First(&v).Error)
	assert.Equal(t, "Iveco", v.Make)
	assert.Equal(t, 2019, v.Year)
	require.NotNil(t, v.InsuranceExpiresAt)
	assert.True(t, v.InsuranceExpiresAt.Equal(day(2024, 6, 10)))

	v = models.Vehicle{}
	require.NoError(t, db.Where("plate = ?", "5678-DEF").First(&v).Error)
	assert.Nil(t, v.InsuranceExpiresAt)
}

func TestImportVehicles_SkipsBadRows(t *testing.T) {
	db := newTestDB(t)
	importer := services.NewImportService(services.NewVehicleService(db))

	wb := buildWorkbook(t, [][]string{
		importHeader,
		{"", "Iveco", "Daily", "2019", "", ""},
		{"1111-AAA", "Iveco", "Daily", "notayear", "", ""},
		{"2222-BBB", "Iveco", "Daily", "2020", "10/06/2024", ""},
		{"3333-CCC", "Iveco", "Daily", "2020", "2024-06-10", ""},
	})

	res, err := importer.ImportVehicles(wb)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Len(t, res.Skipped, 3)
}

func TestImportVehicles_UpsertByPlate(t *testing.T) {
	db := newTestDB(t)
	vehicles := services.NewVehicleService(db)
	importer := services.NewImportService(vehicles)

	first := buildWorkbook(t, [][]string{
		importHeader,
		{"1234-ABC", "Iveco", "Daily", "2019", "2024-06-10", ""},
	})
	_, err := importer.ImportVehicles(first)
	require.NoError(t, err)

	// Re-import with a refreshed insurance date: same row, updated fields.
	second := buildWorkbook(t, [][]string{
		importHeader,
		{"1234-ABC", "Iveco", "Daily", "2019", "2025-06-10", ""},
	})
	res, err := importer.ImportVehicles(second)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)

	var count int64
	require.NoError(t, db.Model(&models.Vehicle{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var v models.Vehicle
	require.NoError(t, db.Where("plate = ?", "1234-ABC").First(&v).Error)
	require.NotNil(t, v.InsuranceExpiresAt)
	assert.True(t, v.InsuranceExpiresAt.Equal(day(2025, 6, 10)))
}

func TestImportVehicles_RejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	importer := services.NewImportService(services.NewVehicleService(db))

	_, err := importer.ImportVehicles(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}
