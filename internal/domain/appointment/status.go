package appointment

// ===============================
// Appointment Status
// ===============================

// Status values are the Portuguese labels the mobile app renders as-is.
type Status string

const (
	StatusPending   Status = "Pendente"
	StatusScheduled Status = "Agendado"
	StatusCompleted Status = "Concluido"
	StatusCancelled Status = "Cancelado"
)

// Valid reports membership in the closed four-value set. There is no
// transition table: any valid status may overwrite any other, which keeps
// manual admin overrides possible.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}
