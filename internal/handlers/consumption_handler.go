package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/httpresp"
	"github.com/vittaestetica/clinica-api/internal/models"
)

// ConsumptionHandler gerencia as linhas de consumo de um agendamento:
// o que a equipe registra que será usado no atendimento. As linhas são
// lidas pelo ledger na conclusão.
type ConsumptionHandler struct {
	db *gorm.DB
}

func NewConsumptionHandler(db *gorm.DB) *ConsumptionHandler {
	return &ConsumptionHandler{db: db}
}

type CreateConsumptionRequest struct {
	ProdutoID  uint `json:"produto_id" binding:"required"`
	Quantidade int  `json:"quantidade" binding:"required,min=1"`
}

func (h *ConsumptionHandler) Create(c *gin.Context) {
	var ag models.Agendamento
	if err := h.db.First(&ag, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	// Depois da conclusão o estoque já foi baixado; a lista é imutável.
	if ag.Status == string(domain.StatusConcluido) {
		httperr.BadRequest(c, "appointment_completed", "Agendamento já concluído.")
		return
	}

	var req CreateConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var produto models.Produto
	if err := h.db.First(&produto, req.ProdutoID).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	consumo := models.ConsumoProduto{
		AgendamentoID: ag.ID,
		ProdutoID:     produto.ID,
		Quantidade:    req.Quantidade,
	}

	if err := h.db.Create(&consumo).Error; err != nil {
		httperr.Internal(c, "failed_to_create_consumption", "Erro ao registrar consumo.")
		return
	}

	consumo.Produto = produto
	c.JSON(http.StatusCreated, consumo)
}

func (h *ConsumptionHandler) ListByAppointment(c *gin.Context) {
	var ag models.Agendamento
	if err := h.db.First(&ag, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var consumos []models.ConsumoProduto
	if err := h.db.
		Preload("Produto").
		Where("agendamento_id = ?", ag.ID).
		Order("id ASC").
		Find(&consumos).Error; err != nil {

		httperr.Internal(c, "failed_to_list_consumptions", "Erro ao listar consumos.")
		return
	}

	httpresp.List(c, consumos)
}

func (h *ConsumptionHandler) Delete(c *gin.Context) {
	var consumo models.ConsumoProduto
	if err := h.db.First(&consumo, c.Param("consumoId")).Error; err != nil {
		httperr.NotFound(c, "consumption_not_found", "Consumo não encontrado.")
		return
	}

	var ag models.Agendamento
	if err := h.db.First(&ag, consumo.AgendamentoID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if ag.Status == string(domain.StatusConcluido) {
		httperr.BadRequest(c, "appointment_completed", "Agendamento já concluído.")
		return
	}

	if err := h.db.Delete(&consumo).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_consumption", "Erro ao remover consumo.")
		return
	}

	c.Status(http.StatusNoContent)
}
