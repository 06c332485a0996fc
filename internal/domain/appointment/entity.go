package appointment

import (
	"time"

	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus writes the new status unconditionally. Re-applying the current
// status is not an error (cancelling twice leaves the row cancelled).
func ApplyStatus(ap *models.Appointment, next Status, now time.Time) error {
	if !next.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}

	ap.Status = string(next)
	ap.UpdatedAt = now
	return nil
}
