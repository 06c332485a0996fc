package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/thierrygoms/barberapp-server/internal/domain/appointment"
	"github.com/thierrygoms/barberapp-server/internal/dto"
	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/httpresp"
	"github.com/thierrygoms/barberapp-server/internal/middleware"
	"github.com/thierrygoms/barberapp-server/internal/timezone"
	usecase "github.com/thierrygoms/barberapp-server/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC    *usecase.CreateAppointment
	listUC      *usecase.ListForOwner
	setStatusUC *usecase.SetStatus
	repo        domain.Repository
	tz          string
}

func NewAppointmentHandler(
	createUC *usecase.CreateAppointment,
	listUC *usecase.ListForOwner,
	setStatusUC *usecase.SetStatus,
	repo domain.Repository,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:    createUC,
		listUC:      listUC,
		setStatusUC: setStatusUC,
		repo:        repo,
		tz:          tz,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	BarberName  string `json:"barber_name" binding:"required"`
	ServiceName string `json:"service_name" binding:"required"`
	Date        string `json:"date" binding:"required"` // 2006-01-02
	Time        string `json:"time" binding:"required"` // 15:04
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Client handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		UserID:      userID,
		BarberName:  req.BarberName,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": ap})
}

// List is the home-screen listing: upcoming bookings by default, or a
// filtered view via status / after / before query parameters.
func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	filter, err := h.filterFromQuery(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_filter", err.Error())
		return
	}

	items, err := h.listUC.Execute(c.Request.Context(), userID, filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, items)
}

// History lists completed and cancelled bookings, newest first.
func (h *AppointmentHandler) History(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	items, err := h.listUC.Execute(c.Request.Context(), userID, domain.History())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar histórico.")
		return
	}

	httpresp.List(c, items)
}

// Cancel lets a client cancel their own booking. The ownership check lives
// in the use case; a foreign id reads as not found.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Identificador inválido.")
		return
	}

	ap, err := h.setStatusUC.Execute(c.Request.Context(), id, domain.StatusCancelled, userID)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

// --------- Admin handlers ---------

func (h *AppointmentHandler) AdminList(c *gin.Context) {
	appointments, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	out := make([]dto.AdminAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AdminAppointmentDTO{
			ID:          ap.ID,
			ScheduledAt: ap.ScheduledAt,
			Status:      ap.Status,
			Value:       ap.Value,
			ClientName:  ap.User.Name,
			BarberName:  ap.Barber.Name,
			ServiceName: ap.Service.Name,
		})
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) AdminSetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Identificador inválido.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// uuid.Nil skips the ownership check: admins act on any record.
	ap, err := h.setStatusUC.Execute(c.Request.Context(), id, domain.Status(req.Status), uuid.Nil)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

// --------- Helpers ---------

func (h *AppointmentHandler) filterFromQuery(c *gin.Context) (domain.ListFilter, error) {
	statuses := c.QueryArray("status")
	after := c.Query("after")
	before := c.Query("before")

	if len(statuses) == 0 && after == "" && before == "" {
		return domain.Upcoming(timezone.NowIn(h.tz)), nil
	}

	var filter domain.ListFilter
	for _, s := range statuses {
		filter.Statuses = append(filter.Statuses, domain.Status(s))
	}
	if after != "" {
		t, err := time.Parse(time.RFC3339, after)
		if err != nil {
			return domain.ListFilter{}, err
		}
		filter.After = &t
	}
	if before != "" {
		t, err := time.Parse(time.RFC3339, before)
		if err != nil {
			return domain.ListFilter{}, err
		}
		filter.Before = &t
	}
	return filter, nil
}

func writeAppointmentError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "unauthenticated":
		httperr.Unauthorized(c, code, "Sessão inválida.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Data ou horário inválido.")
	case "past_date":
		httperr.BadRequest(c, code, "Não é possível agendar no passado.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Status desconhecido.")
	case "barber_not_found":
		httperr.NotFound(c, code, "Barbeiro não encontrado.")
	case "service_not_found":
		httperr.NotFound(c, code, "Serviço não encontrado.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
