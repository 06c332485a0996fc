package appointment

import (
	"time"

	"github.com/thierrygoms/barberapp-server/internal/models"
)

// ListFilter narrows an owner's appointment listing. Zero value matches
// everything in ascending order.
type ListFilter struct {
	Statuses []Status // empty = any
	Exclude  []Status
	After    *time.Time // scheduled_at >= After
	Before   *time.Time // scheduled_at < Before
	Newest   bool       // descending order (history view)
}

// Upcoming is the home-screen view: not cancelled and not in the past.
func Upcoming(now time.Time) ListFilter {
	return ListFilter{
		Exclude: []Status{StatusCancelled},
		After:   &now,
	}
}

// History is the completed-or-cancelled view, newest first.
func History() ListFilter {
	return ListFilter{
		Statuses: []Status{StatusCompleted, StatusCancelled},
		Newest:   true,
	}
}

// Matches applies the filter to a single record. The GORM repository builds
// the equivalent WHERE clause; this predicate is the reference behavior.
func (f ListFilter) Matches(ap *models.Appointment) bool {
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if ap.Status == string(s) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, s := range f.Exclude {
		if ap.Status == string(s) {
			return false
		}
	}

	if f.After != nil && ap.ScheduledAt.Before(*f.After) {
		return false
	}
	if f.Before != nil && !ap.ScheduledAt.Before(*f.Before) {
		return false
	}

	return true
}
