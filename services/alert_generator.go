package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"

	"go.uber.org/zap"
)

// AlertGenerator runs the expiration sweep: it scans the monitored entities
// for compliance dates inside each attribute's warning window and raises an
// open alert per uncovered (subject, kind) pair. It never updates an alert
// that is already open, so re-running a sweep is free.
type AlertGenerator struct {
	alerts    *AlertService
	vehicles  *VehicleService
	drivers   *DriverService
	suppliers *SupplierService
	hub       *RealtimeHub
	log       *zap.SugaredLogger
}

func NewAlertGenerator(
	alerts *AlertService,
	vehicles *VehicleService,
	drivers *DriverService,
	suppliers *SupplierService,
	hub *RealtimeHub,
	log *zap.SugaredLogger,
) *AlertGenerator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &AlertGenerator{
		alerts:    alerts,
		vehicles:  vehicles,
		drivers:   drivers,
		suppliers: suppliers,
		hub:       hub,
		log:       log,
	}
}

type sweepCandidate struct {
	subjectID    string
	subjectLabel string
	dueAt        time.Time
}

// sweepSource describes one monitored attribute type: how far ahead to look
// and how to fetch entities whose date falls inside that horizon.
type sweepSource struct {
	kind        string
	category    string
	subjectKind string
	noun        string // goes into the alert title, e.g. "insurance"
	windowDays  int
	fetch       func(from, to time.Time) ([]sweepCandidate, error)
}

func (g *AlertGenerator) sources() []sweepSource {
	return []sweepSource{
		{
			kind:        "insurance",
			category:    models.CategoryDocumentation,
			subjectKind: "vehicle",
			noun:        "insurance policy",
			windowDays:  models.WindowInsuranceDays,
			fetch: func(from, to time.Time) ([]sweepCandidate, error) {
				vehicles, err := g.vehicles.ListInsuranceExpiring(from, to)
				if err != nil {
					return nil, err
				}
				out := make([]sweepCandidate, 0, len(vehicles))
				for i := range vehicles {
					v := &vehicles[i]
					out = append(out, sweepCandidate{
						subjectID:    strconv.FormatUint(uint64(v.ID), 10),
						subjectLabel: v.Label(),
						dueAt:        *v.InsuranceExpiresAt,
					})
				}
				return out, nil
			},
		},
		{
			kind:        "technical-inspection",
			category:    models.CategoryMaintenance,
			subjectKind: "vehicle",
			noun:        "technical inspection",
			windowDays:  models.WindowInspectionDays,
			fetch: func(from, to time.Time) ([]sweepCandidate, error) {
				vehicles, err := g.vehicles.ListInspectionExpiring(from, to)
				if err != nil {
					return nil, err
				}
				out := make([]sweepCandidate, 0, len(vehicles))
				for i := range vehicles {
					v := &vehicles[i]
					out = append(out, sweepCandidate{
						subjectID:    strconv.FormatUint(uint64(v.ID), 10),
						subjectLabel: v.Label(),
						dueAt:        *v.InspectionExpiresAt,
					})
				}
				return out, nil
			},
		},
		{
			kind:        "license",
			category:    models.CategoryPersonnel,
			subjectKind: "driver",
			noun:        "driving license",
			windowDays:  models.WindowLicenseDays,
			fetch: func(from, to time.Time) ([]sweepCandidate, error) {
				drivers, err := g.drivers.ListLicenseExpiring(from, to)
				if err != nil {
					return nil, err
				}
				out := make([]sweepCandidate, 0, len(drivers))
				for i := range drivers {
					d := &drivers[i]
					out = append(out, sweepCandidate{
						subjectID:    strconv.FormatUint(uint64(d.ID), 10),
						subjectLabel: d.Label(),
						dueAt:        *d.LicenseExpiresAt,
					})
				}
				return out, nil
			},
		},
		{
			kind:        "hazmat-permit",
			category:    models.CategoryPersonnel,
			subjectKind: "driver",
			noun:        "hazmat permit",
			windowDays:  models.WindowPermitDays,
			fetch: func(from, to time.Time) ([]sweepCandidate, error) {
				drivers, err := g.drivers.ListHazmatPermitExpiring(from, to)
				if err != nil {
					return nil, err
				}
				out := make([]sweepCandidate, 0, len(drivers))
				for i := range drivers {
					d := &drivers[i]
					out = append(out, sweepCandidate{
						subjectID:    strconv.FormatUint(uint64(d.ID), 10),
						subjectLabel: d.Label(),
						dueAt:        *d.HazmatPermitExpiresAt,
					})
				}
				return out, nil
			},
		},
		{
			kind:        "certification",
			category:    models.CategorySuppliers,
			subjectKind: "supplier",
			noun:        "quality certification",
			windowDays:  models.WindowCertificationDays,
			fetch: func(from, to time.Time) ([]sweepCandidate, error) {
				suppliers, err := g.suppliers.ListCertificationExpiring(from, to)
				if err != nil {
					return nil, err
				}
				out := make([]sweepCandidate, 0, len(suppliers))
				for i := range suppliers {
					sp := &suppliers[i]
					out = append(out, sweepCandidate{
						subjectID:    strconv.FormatUint(uint64(sp.ID), 10),
						subjectLabel: sp.Label(),
						dueAt:        *sp.CertificationExpiresAt,
					})
				}
				return out, nil
			},
		},
	}
}

// RunSweep processes every source for the given reference date and returns
// the number of alerts created. Sources run independently and additively:
// a failure fetching or persisting one candidate is logged and the sweep
// moves on. The returned error aggregates source-level fetch failures; a
// non-nil error still comes with the count of what did get created.
func (g *AlertGenerator) RunSweep(ref time.Time) (int, error) {
	refDay := models.DayStart(ref)
	created := 0
	var errs []error

	for _, src := range g.sources() {
		to := refDay.AddDate(0, 0, src.windowDays)
		candidates, err := src.fetch(refDay, to)
		if err != nil {
			g.log.Errorw("sweep source fetch failed", "kind", src.kind, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", src.kind, err))
			continue
		}

		for _, c := range candidates {
			state := models.ClassifyFreshness(&c.dueAt, src.windowDays, refDay)
			if state != models.FreshnessWarning && state != models.FreshnessExpired {
				continue
			}

			// Cheap pre-check; the unique index is still the authority
			// if a concurrent creator wins the race below.
			covered, err := g.alerts.HasOpen(src.subjectKind, c.subjectID, src.kind)
			if err != nil {
				g.log.Errorw("sweep dedup check failed",
					"kind", src.kind, "subject_id", c.subjectID, "error", err)
				continue
			}
			if covered {
				continue
			}

			due := c.dueAt
			alert := &models.Alert{
				Kind:         src.kind,
				Category:     src.category,
				Priority:     models.PriorityMedium,
				Title:        fmt.Sprintf("%s: %s expires on %s", c.subjectLabel, src.noun, due.Format("2006-01-02")),
				Description:  fmt.Sprintf("The %s for %s expires on %s. Renew before the due date.", src.noun, c.subjectLabel, due.Format("2006-01-02")),
				SubjectKind:  src.subjectKind,
				SubjectID:    c.subjectID,
				SubjectLabel: c.subjectLabel,
				GeneratedAt:  refDay,
				DueAt:        &due,
				Status:       models.StatusOpen,
			}

			err = g.alerts.Create(alert)
			if errors.Is(err, ErrDuplicateOpenAlert) {
				// Lost a race with another creator; already covered.
				continue
			}
			if err != nil {
				g.log.Errorw("sweep alert create failed",
					"kind", src.kind, "subject_id", c.subjectID, "error", err)
				continue
			}

			created++
			if g.hub != nil {
				g.hub.Broadcast("alert.created", alert)
			}
		}
	}

	g.log.Infow("sweep finished", "reference_date", refDay.Format("2006-01-02"), "created", created)
	if len(errs) > 0 {
		return created, errors.Join(errs...)
	}
	return created, nil
}
