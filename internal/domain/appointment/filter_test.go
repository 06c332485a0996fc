package appointment

import (
	"testing"
	"time"

	"github.com/thierrygoms/barberapp-server/internal/models"
)

func TestUpcomingFilter(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	f := Upcoming(now)

	cases := []struct {
		name   string
		status Status
		at     time.Time
		want   bool
	}{
		{"future pending", StatusPending, now.Add(24 * time.Hour), true},
		{"future scheduled", StatusScheduled, now.Add(time.Hour), true},
		{"future cancelled", StatusCancelled, now.Add(time.Hour), false},
		{"past pending", StatusPending, now.Add(-time.Hour), false},
		{"exactly now", StatusPending, now, true},
	}

	for _, tc := range cases {
		ap := &models.Appointment{
			Status:      string(tc.status),
			ScheduledAt: tc.at,
		}
		if got := f.Matches(ap); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHistoryFilter(t *testing.T) {
	f := History()

	if !f.Newest {
		t.Error("history should order newest first")
	}

	at := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		status Status
		want   bool
	}{
		{StatusCompleted, true},
		{StatusCancelled, true},
		{StatusPending, false},
		{StatusScheduled, false},
	}

	for _, tc := range cases {
		ap := &models.Appointment{Status: string(tc.status), ScheduledAt: at}
		if got := f.Matches(ap); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestZeroFilterMatchesEverything(t *testing.T) {
	var f ListFilter

	ap := &models.Appointment{
		Status:      string(StatusCancelled),
		ScheduledAt: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	if !f.Matches(ap) {
		t.Error("zero filter should match any record")
	}
}
