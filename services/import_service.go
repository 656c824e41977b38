package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"
	"github.com/sabrinaAojeda/GESCOP-v2-sub000/utils"

	"github.com/xuri/excelize/v2"
)

// ImportService loads vehicles in bulk from an uploaded .xlsx workbook.
// Expected columns on the first sheet, header row included:
//
//	plate | make | model | year | insurance_expires_at | inspection_expires_at
//
// Dates are YYYY-MM-DD; empty cells leave the field unset. Rows are
// upserted by plate so re-importing the same workbook is harmless.
type ImportService struct {
	vehicles *VehicleService
}

func NewImportService(vehicles *VehicleService) *ImportService {
	return &ImportService{vehicles: vehicles}
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped"`
}

func (s *ImportService) ImportVehicles(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	res := &ImportResult{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNum := i + 1

		plate := utils.NormalizeCode(cell(row, 0))
		if plate == "" {
			res.Skipped = append(res.Skipped, fmt.Sprintf("row %d: missing plate", rowNum))
			continue
		}

		year := 0
		if y := cell(row, 3); y != "" {
			year, err = strconv.Atoi(y)
			if err != nil {
				res.Skipped = append(res.Skipped, fmt.Sprintf("row %d: bad year %q", rowNum, y))
				continue
			}
		}

		insurance, err := cellDate(row, 4)
		if err != nil {
			res.Skipped = append(res.Skipped, fmt.Sprintf("row %d: bad insurance date", rowNum))
			continue
		}
		inspection, err := cellDate(row, 5)
		if err != nil {
			res.Skipped = append(res.Skipped, fmt.Sprintf("row %d: bad inspection date", rowNum))
			continue
		}

		v := &models.Vehicle{
			Plate:               plate,
			Make:                utils.NormalizeText(cell(row, 1)),
			Model:               utils.NormalizeText(cell(row, 2)),
			Year:                year,
			Active:              true,
			InsuranceExpiresAt:  insurance,
			InspectionExpiresAt: inspection,
		}
		if err := s.vehicles.UpsertByPlate(v); err != nil {
			res.Skipped = append(res.Skipped, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		res.Imported++
	}
	return res, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellDate(row []string, i int) (*time.Time, error) {
	raw := cell(row, i)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
