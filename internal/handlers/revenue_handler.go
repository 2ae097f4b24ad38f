package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
	"github.com/vittaestetica/clinica-api/internal/payments"
)

type RevenueHandler struct {
	db *gorm.DB
	mp *payments.MercadoPago
}

func NewRevenueHandler(db *gorm.DB, mp *payments.MercadoPago) *RevenueHandler {
	return &RevenueHandler{db: db, mp: mp}
}

// --------- Requests ---------

type CreateRevenueRequest struct {
	AgendamentoID   *uint           `json:"agendamento_id,omitempty"`
	Descricao       string          `json:"descricao"`
	Valor           decimal.Decimal `json:"valor" binding:"required"`
	FormaPagamento  string          `json:"forma_pagamento" binding:"required"`
	Recebido        bool            `json:"recebido"`
	DataRecebimento string          `json:"data_recebimento"` // YYYY-MM-DD
	Observacao      string          `json:"observacao"`
}

type UpdateRevenueRequest struct {
	Descricao       *string          `json:"descricao,omitempty"`
	Valor           *decimal.Decimal `json:"valor,omitempty"`
	FormaPagamento  *string          `json:"forma_pagamento,omitempty"`
	Recebido        *bool            `json:"recebido,omitempty"`
	DataRecebimento *string          `json:"data_recebimento,omitempty"`
	Observacao      *string          `json:"observacao,omitempty"`
}

// --------- Handlers ---------

func (h *RevenueHandler) Create(c *gin.Context) {
	var req CreateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !req.Valor.IsPositive() {
		httperr.BadRequest(c, "invalid_amount", "Valor deve ser positivo.")
		return
	}

	receita := models.Receita{
		Descricao:      req.Descricao,
		Valor:          req.Valor,
		FormaPagamento: req.FormaPagamento,
		Recebido:       req.Recebido,
		Observacao:     req.Observacao,
	}

	if req.AgendamentoID != nil {
		var ag models.Agendamento
		if err := h.db.First(&ag, *req.AgendamentoID).Error; err != nil {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		receita.AgendamentoID = &ag.ID
	}

	if req.DataRecebimento != "" {
		dt, err := time.Parse("2006-01-02", req.DataRecebimento)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data de recebimento inválida.")
			return
		}
		receita.DataRecebimento = &dt
	}

	if err := h.db.Create(&receita).Error; err != nil {
		httperr.Internal(c, "failed_to_create_revenue", "Erro ao criar receita.")
		return
	}

	c.JSON(http.StatusCreated, receita)
}

func (h *RevenueHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if v := c.Query("recebido"); v == "true" || v == "false" {
		q = q.Where("recebido = ?", v == "true")
	}

	var receitas []models.Receita
	if err := q.
		Order("data_recebimento DESC NULLS LAST, id DESC").
		Find(&receitas).Error; err != nil {

		httperr.Internal(c, "failed_to_list_revenues", "Erro ao listar receitas.")
		return
	}

	c.JSON(http.StatusOK, receitas)
}

func (h *RevenueHandler) Update(c *gin.Context) {
	var receita models.Receita
	if err := h.db.First(&receita, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "revenue_not_found", "Receita não encontrada.")
		return
	}

	var req UpdateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Descricao != nil {
		receita.Descricao = *req.Descricao
	}
	if req.Valor != nil {
		if !req.Valor.IsPositive() {
			httperr.BadRequest(c, "invalid_amount", "Valor deve ser positivo.")
			return
		}
		receita.Valor = *req.Valor
	}
	if req.FormaPagamento != nil {
		receita.FormaPagamento = *req.FormaPagamento
	}
	if req.Recebido != nil {
		receita.Recebido = *req.Recebido
	}
	if req.DataRecebimento != nil {
		if *req.DataRecebimento == "" {
			receita.DataRecebimento = nil
		} else {
			dt, err := time.Parse("2006-01-02", *req.DataRecebimento)
			if err != nil {
				httperr.BadRequest(c, "invalid_date", "Data de recebimento inválida.")
				return
			}
			receita.DataRecebimento = &dt
		}
	}
	if req.Observacao != nil {
		receita.Observacao = *req.Observacao
	}

	if err := h.db.Save(&receita).Error; err != nil {
		httperr.Internal(c, "failed_to_update_revenue", "Erro ao atualizar receita.")
		return
	}

	c.JSON(http.StatusOK, receita)
}

// PaymentLink cria um link de checkout para a receita e o persiste.
func (h *RevenueHandler) PaymentLink(c *gin.Context) {
	if !h.mp.Enabled() {
		httperr.BadRequest(c, "payments_disabled", "Integração de pagamento não configurada.")
		return
	}

	var receita models.Receita
	if err := h.db.First(&receita, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "revenue_not_found", "Receita não encontrada.")
		return
	}

	if receita.Recebido {
		httperr.BadRequest(c, "already_received", "Receita já recebida.")
		return
	}

	link, err := h.mp.PaymentLink(c.Request.Context(), &receita)
	if err != nil {
		httperr.Internal(c, "failed_to_create_payment_link", "Erro ao gerar link de pagamento.")
		return
	}

	receita.LinkPagamento = link
	if err := h.db.Save(&receita).Error; err != nil {
		httperr.Internal(c, "failed_to_save_payment_link", "Erro ao salvar link de pagamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"receita_id":     receita.ID,
		"link_pagamento": link,
	})
}
