package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thierrygoms/barberapp-server/internal/httperr"
	"github.com/thierrygoms/barberapp-server/internal/imaging"
	"github.com/thierrygoms/barberapp-server/internal/middleware"
	"github.com/thierrygoms/barberapp-server/internal/models"
	"github.com/thierrygoms/barberapp-server/internal/storage"
)

type MeHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
}

func NewMeHandler(db *gorm.DB, uploader storage.Uploader) *MeHandler {
	return &MeHandler{db: db, uploader: uploader}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(&user)})
}

type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"` // 2006-01-02
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		bd, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_birth_date"})
			return
		}
		user.BirthDate = &bd
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(&user)})
}

func (h *MeHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	url, err := saveAvatar(c, h.uploader, fmt.Sprintf("avatars/users/%s.webp", userID))
	if err != nil {
		return // response already written
	}

	user.AvatarURL = url
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

// saveAvatar reads the "photo" form file, converts it to WebP and uploads
// it. On failure the error response has already been written.
func saveAvatar(c *gin.Context, uploader storage.Uploader, key string) (string, error) {
	header, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo de imagem obrigatório.")
		return "", err
	}

	if header.Size > imaging.MaxUploadSize {
		httperr.BadRequest(c, "file_too_large", "Imagem acima do limite de 10 MB.")
		return "", fmt.Errorf("file too large")
	}

	ct := header.Header.Get("Content-Type")
	if !imaging.IsSupportedContentType(ct) {
		httperr.BadRequest(c, "unsupported_image_type", "Apenas JPEG ou PNG.")
		return "", fmt.Errorf("unsupported content type %s", ct)
	}

	file, err := header.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler a imagem.")
		return "", err
	}
	defer file.Close()

	encoded, err := imaging.ToWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return "", err
	}

	url, err := uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_file", "Erro ao salvar a imagem.")
		return "", err
	}

	return url, nil
}
