package models

import "time"

// Freshness is the state of a date-bearing compliance attribute relative to
// a reference date.
type Freshness string

const (
	FreshnessCurrent       Freshness = "current"
	FreshnessWarning       Freshness = "warning"
	FreshnessExpired       Freshness = "expired"
	FreshnessNotApplicable Freshness = "not_applicable"
)

// Warning windows (days before expiration) per compliance document type.
const (
	WindowInsuranceDays     = 45
	WindowInspectionDays    = 30
	WindowLicenseDays       = 30
	WindowPermitDays        = 30
	WindowCertificationDays = 30
)

// DayStart truncates a time to midnight UTC. All freshness arithmetic is
// day-granular; wall-clock components never influence the outcome.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ClassifyFreshness maps an expiration date and a warning window onto a
// freshness state. Pure: same inputs, same answer.
//
//	due == nil                  -> not_applicable
//	ref day after due day       -> expired
//	0 <= due-ref <= windowDays  -> warning (inclusive at the window edge)
//	otherwise                   -> current
func ClassifyFreshness(due *time.Time, windowDays int, ref time.Time) Freshness {
	if due == nil {
		return FreshnessNotApplicable
	}
	d := DayStart(*due)
	r := DayStart(ref)
	if r.After(d) {
		return FreshnessExpired
	}
	if int(d.Sub(r)/(24*time.Hour)) <= windowDays {
		return FreshnessWarning
	}
	return FreshnessCurrent
}
