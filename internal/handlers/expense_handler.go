package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
	"github.com/vittaestetica/clinica-api/internal/timezone"
)

type ExpenseHandler struct {
	db *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{db: db}
}

// --------- Requests ---------

type CreateExpenseRequest struct {
	Nome           string          `json:"nome" binding:"required"`
	CategoriaID    uint            `json:"categoria_id" binding:"required"`
	Valor          decimal.Decimal `json:"valor" binding:"required"`
	DataVencimento string          `json:"data_vencimento" binding:"required"` // YYYY-MM-DD
	DataPagamento  string          `json:"data_pagamento"`
	Pago           bool            `json:"pago"`
	Fornecedor     string          `json:"fornecedor"`
	Observacao     string          `json:"observacao"`
}

type UpdateExpenseRequest struct {
	Nome          *string          `json:"nome,omitempty"`
	Valor         *decimal.Decimal `json:"valor,omitempty"`
	DataPagamento *string          `json:"data_pagamento,omitempty"`
	Pago          *bool            `json:"pago,omitempty"`
	Fornecedor    *string          `json:"fornecedor,omitempty"`
	Observacao    *string          `json:"observacao,omitempty"`
}

type CreateExpenseCategoryRequest struct {
	Nome string `json:"nome" binding:"required"`
}

// --------- Categorias ---------

func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	var categorias []models.CategoriaDespesa
	if err := h.db.Order("nome ASC").Find(&categorias).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	c.JSON(http.StatusOK, categorias)
}

func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	var req CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	categoria := models.CategoriaDespesa{Nome: req.Nome}
	if err := h.db.Create(&categoria).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Erro ao criar categoria.")
		return
	}

	c.JSON(http.StatusCreated, categoria)
}

// --------- Despesas ---------

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !req.Valor.IsPositive() {
		httperr.BadRequest(c, "invalid_amount", "Valor deve ser positivo.")
		return
	}

	var categoria models.CategoriaDespesa
	if err := h.db.First(&categoria, req.CategoriaID).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	vencimento, err := time.Parse("2006-01-02", req.DataVencimento)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data de vencimento inválida.")
		return
	}

	despesa := models.Despesa{
		Nome:           req.Nome,
		CategoriaID:    categoria.ID,
		Valor:          req.Valor,
		DataVencimento: vencimento,
		Pago:           req.Pago,
		Fornecedor:     req.Fornecedor,
		Observacao:     req.Observacao,
	}

	if req.DataPagamento != "" {
		dt, err := time.Parse("2006-01-02", req.DataPagamento)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data de pagamento inválida.")
			return
		}
		despesa.DataPagamento = &dt
	}

	if err := h.db.Create(&despesa).Error; err != nil {
		httperr.Internal(c, "failed_to_create_expense", "Erro ao criar despesa.")
		return
	}

	c.JSON(http.StatusCreated, despesa)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	q := h.db.Preload("Categoria")

	if v := c.Query("pago"); v == "true" || v == "false" {
		q = q.Where("pago = ?", v == "true")
	}

	// Despesas vencidas e não pagas.
	if c.Query("atrasadas") == "true" {
		q = q.Where("pago = false AND data_vencimento < ?", timezone.Now())
	}

	var despesas []models.Despesa
	if err := q.
		Order("data_vencimento ASC").
		Find(&despesas).Error; err != nil {

		httperr.Internal(c, "failed_to_list_expenses", "Erro ao listar despesas.")
		return
	}

	c.JSON(http.StatusOK, despesas)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	var despesa models.Despesa
	if err := h.db.First(&despesa, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "expense_not_found", "Despesa não encontrada.")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		despesa.Nome = *req.Nome
	}
	if req.Valor != nil {
		if !req.Valor.IsPositive() {
			httperr.BadRequest(c, "invalid_amount", "Valor deve ser positivo.")
			return
		}
		despesa.Valor = *req.Valor
	}
	if req.Pago != nil {
		despesa.Pago = *req.Pago
	}
	if req.DataPagamento != nil {
		if *req.DataPagamento == "" {
			despesa.DataPagamento = nil
		} else {
			dt, err := time.Parse("2006-01-02", *req.DataPagamento)
			if err != nil {
				httperr.BadRequest(c, "invalid_date", "Data de pagamento inválida.")
				return
			}
			despesa.DataPagamento = &dt
		}
	}
	if req.Fornecedor != nil {
		despesa.Fornecedor = *req.Fornecedor
	}
	if req.Observacao != nil {
		despesa.Observacao = *req.Observacao
	}

	if err := h.db.Save(&despesa).Error; err != nil {
		httperr.Internal(c, "failed_to_update_expense", "Erro ao atualizar despesa.")
		return
	}

	c.JSON(http.StatusOK, despesa)
}
