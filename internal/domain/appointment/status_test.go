package appointment

import (
	"testing"
	"time"

	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/models"
)

func TestStatusValid(t *testing.T) {
	valid := []Status{StatusPending, StatusScheduled, StatusCompleted, StatusCancelled}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []Status{"", "pendente", "Done", "CANCELADO"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestApplyStatusOverwritesFreely(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusCompleted)}

	// Admin overrides go backward too.
	if err := ApplyStatus(ap, StatusPending, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusPending) {
		t.Errorf("expected Pendente, got %q", ap.Status)
	}
	if !ap.UpdatedAt.Equal(now) {
		t.Errorf("expected UpdatedAt %v, got %v", now, ap.UpdatedAt)
	}
}

func TestApplyStatusRepeatable(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusCancelled)}

	if err := ApplyStatus(ap, StatusCancelled, now); err != nil {
		t.Fatalf("cancelling a cancelled booking should succeed: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Errorf("expected Cancelado, got %q", ap.Status)
	}
}

func TestApplyStatusRejectsUnknown(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}

	err := ApplyStatus(ap, "Finalizado", time.Now())
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
	if ap.Status != string(StatusPending) {
		t.Errorf("status should be untouched, got %q", ap.Status)
	}
}
