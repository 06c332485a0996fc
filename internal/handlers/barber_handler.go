package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/httpresp"
	"github.com/thierrygoms/barberapp-server/internal/models"
	"github.com/thierrygoms/barberapp-server/internal/storage"
)

type BarberHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
}

func NewBarberHandler(db *gorm.DB, uploader storage.Uploader) *BarberHandler {
	return &BarberHandler{db: db, uploader: uploader}
}

type CreateBarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
}

type UpdateBarberRequest struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

// List feeds the barber picker on the booking screen.
func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	barber := models.Barber{
		Name:      req.Name,
		Specialty: req.Specialty,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"barber": barber})
}

func (h *BarberHandler) Update(c *gin.Context) {
	barber, ok := h.find(c)
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Specialty != nil {
		barber.Specialty = *req.Specialty
	}

	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"barber": barber})
}

func (h *BarberHandler) Delete(c *gin.Context) {
	barber, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.db.Delete(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	barber, ok := h.find(c)
	if !ok {
		return
	}

	url, err := saveAvatar(c, h.uploader, fmt.Sprintf("avatars/barbers/%s.webp", barber.ID))
	if err != nil {
		return // response already written
	}

	barber.PhotoURL = url
	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

func (h *BarberHandler) find(c *gin.Context) (*models.Barber, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Identificador inválido.")
		return nil, false
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return nil, false
	}
	return &barber, true
}
