package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentListDTO struct {
	ID          uuid.UUID `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Value       float64   `json:"value"`
	BarberName  string    `json:"barber_name"`
	ServiceName string    `json:"service_name"`
}

// AdminAppointmentDTO is the confirmation-screen row: every booking in the
// shop with the owner resolved.
type AdminAppointmentDTO struct {
	ID          uuid.UUID `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Value       float64   `json:"value"`
	ClientName  string    `json:"client_name"`
	BarberName  string    `json:"barber_name"`
	ServiceName string    `json:"service_name"`
}
