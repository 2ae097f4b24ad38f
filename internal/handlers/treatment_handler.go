package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/httpresp"
	"github.com/vittaestetica/clinica-api/internal/models"
)

type TreatmentHandler struct {
	db *gorm.DB
}

func NewTreatmentHandler(db *gorm.DB) *TreatmentHandler {
	return &TreatmentHandler{db: db}
}

// --------- Requests ---------

type CreateTreatmentRequest struct {
	Nome       string          `json:"nome" binding:"required"`
	Tipo       string          `json:"tipo"`
	DuracaoMin int             `json:"duracao_min" binding:"required,min=1"`
	Preco      decimal.Decimal `json:"preco"`
	Descricao  string          `json:"descricao"`
}

type UpdateTreatmentRequest struct {
	Nome       *string          `json:"nome,omitempty"`
	Tipo       *string          `json:"tipo,omitempty"`
	DuracaoMin *int             `json:"duracao_min,omitempty"`
	Preco      *decimal.Decimal `json:"preco,omitempty"`
	Descricao  *string          `json:"descricao,omitempty"`
}

// --------- Handlers ---------

func (h *TreatmentHandler) List(c *gin.Context) {
	tipo := strings.TrimSpace(c.Query("tipo"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(descricao) LIKE ?", like, like)
	}

	var tratamentos []models.Tratamento
	if err := q.Order("id ASC").Find(&tratamentos).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "Erro ao listar tratamentos.")
		return
	}

	c.JSON(http.StatusOK, tratamentos)
}

func (h *TreatmentHandler) Create(c *gin.Context) {
	var req CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	tratamento := models.Tratamento{
		Nome:       req.Nome,
		Tipo:       req.Tipo,
		DuracaoMin: req.DuracaoMin,
		Preco:      req.Preco,
		Descricao:  req.Descricao,
	}

	if err := h.db.Create(&tratamento).Error; err != nil {
		httperr.Internal(c, "failed_to_create_treatment", "Erro ao criar tratamento.")
		return
	}

	httpresp.Created(c, tratamento)
}

func (h *TreatmentHandler) Update(c *gin.Context) {
	var tratamento models.Tratamento
	if err := h.db.First(&tratamento, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "treatment_not_found", "Tratamento não encontrado.")
		return
	}

	var req UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		tratamento.Nome = *req.Nome
	}
	if req.Tipo != nil {
		tratamento.Tipo = *req.Tipo
	}
	if req.DuracaoMin != nil {
		tratamento.DuracaoMin = *req.DuracaoMin
	}
	if req.Preco != nil {
		tratamento.Preco = *req.Preco
	}
	if req.Descricao != nil {
		tratamento.Descricao = *req.Descricao
	}

	if err := h.db.Save(&tratamento).Error; err != nil {
		httperr.Internal(c, "failed_to_update_treatment", "Erro ao atualizar tratamento.")
		return
	}

	httpresp.OK(c, tratamento)
}
