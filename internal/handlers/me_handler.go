package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/media"
	"github.com/vittaestetica/clinica-api/internal/middleware"
	"github.com/vittaestetica/clinica-api/internal/models"
	"github.com/vittaestetica/clinica-api/internal/storage"
)

const maxProfilePictureBytes = 5 << 20

type MeHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewMeHandler(db *gorm.DB, uploader *storage.Uploader) *MeHandler {
	return &MeHandler{db: db, uploader: uploader}
}

func (h *MeHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID := c.GetUint(middleware.ContextUserID)
	if userID == 0 {
		httperr.Unauthorized(c, "invalid_token_payload", "Sessão inválida.")
		return nil, false
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", "Usuário não encontrado.")
		return nil, false
	}
	return &user, true
}

func (h *MeHandler) Get(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /api/me/profile-picture (multipart, campo "file")
func (h *MeHandler) UploadProfilePicture(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if !h.uploader.Enabled() {
		httperr.Write(c, http.StatusServiceUnavailable,
			"storage_not_configured", "Armazenamento de imagens não configurado.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'file'.")
		return
	}
	if fileHeader.Size > maxProfilePictureBytes {
		httperr.BadRequest(c, "file_too_large", "Imagem acima de 5MB.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxProfilePictureBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}

	processed, err := media.ProcessProfilePicture(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida. Envie JPEG ou PNG.")
		return
	}

	key := fmt.Sprintf("profile-pictures/%d-%d.webp", user.ID, time.Now().Unix())

	url, err := h.uploader.Upload(c.Request.Context(), key, processed, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload", "Erro ao enviar a imagem.")
		return
	}

	user.ProfilePictureURL = url
	if err := h.db.Model(user).Update("profile_picture_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_save_user", "Erro ao salvar o usuário.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_picture_url": url})
}
