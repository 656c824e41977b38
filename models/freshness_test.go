package models_test

import (
	"testing"
	"time"

	"github.com/sabrinaAojeda/GESCOP-v2-sub000/models"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyFreshness_WindowBoundaries(t *testing.T) {
	ref := date(2024, 5, 20)

	cases := []struct {
		name   string
		due    time.Time
		window int
		want   models.Freshness
	}{
		{"at window edge is warning", date(2024, 6, 19), 30, models.FreshnessWarning},
		{"one past the edge is current", date(2024, 6, 20), 30, models.FreshnessCurrent},
		{"same day is warning", date(2024, 5, 20), 30, models.FreshnessWarning},
		{"yesterday is expired", date(2024, 5, 19), 30, models.FreshnessExpired},
		{"insurance edge at 45 days", date(2024, 7, 4), 45, models.FreshnessWarning},
		{"insurance one past 45 days", date(2024, 7, 5), 45, models.FreshnessCurrent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			due := tc.due
			assert.Equal(t, tc.want, models.ClassifyFreshness(&due, tc.window, ref))
		})
	}
}

func TestClassifyFreshness_NilDue(t *testing.T) {
	got := models.ClassifyFreshness(nil, 30, date(2024, 5, 20))
	assert.Equal(t, models.FreshnessNotApplicable, got)
}

func TestClassifyFreshness_IgnoresTimeOfDay(t *testing.T) {
	// Late-evening reference against an early-morning due date on the same
	// day must still be warning, never expired.
	ref := time.Date(2024, 5, 20, 23, 45, 0, 0, time.UTC)
	due := time.Date(2024, 5, 20, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, models.FreshnessWarning, models.ClassifyFreshness(&due, 30, ref))
}

func TestPriorityRank_Order(t *testing.T) {
	assert.Less(t, models.PriorityRank(models.PriorityCritical), models.PriorityRank(models.PriorityHigh))
	assert.Less(t, models.PriorityRank(models.PriorityHigh), models.PriorityRank(models.PriorityMedium))
	assert.Less(t, models.PriorityRank(models.PriorityMedium), models.PriorityRank(models.PriorityLow))
	assert.Equal(t, 5, models.PriorityRank("bogus"))
}
