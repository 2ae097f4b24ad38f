package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vittaestetica/clinica-api/internal/cache"
	"github.com/vittaestetica/clinica-api/internal/domain/appointment"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/timezone"
)

type DashboardHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDashboardHandler(db *gorm.DB, c *cache.Cache) *DashboardHandler {
	return &DashboardHandler{db: db, cache: c}
}

// respondCached serve a agregação do Redis quando disponível; caso
// contrário executa a consulta e guarda o resultado.
func (h *DashboardHandler) respondCached(
	c *gin.Context,
	key string,
	query func() (any, error),
) {
	ctx := c.Request.Context()

	if body, ok := h.cache.Get(ctx, key); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	result, err := query()
	if err != nil {
		httperr.Internal(c, "failed_to_aggregate", "Erro ao montar o dashboard.")
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		httperr.Internal(c, "failed_to_aggregate", "Erro ao montar o dashboard.")
		return
	}

	h.cache.Set(ctx, key, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func dashboardYear(c *gin.Context) int {
	if v := c.Query("ano"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return timezone.Now().Year()
}

// --------- Agendamentos ---------

type appointmentsByTreatmentRow struct {
	TratamentoID uint   `json:"tratamento_id"`
	Tratamento   string `json:"tratamento"`
	Total        int64  `json:"total"`
}

func (h *DashboardHandler) AppointmentsByTreatment(c *gin.Context) {
	ano := dashboardYear(c)

	h.respondCached(c, fmt.Sprintf("dashboard:agendamentos:tratamento:%d", ano), func() (any, error) {
		var rows []appointmentsByTreatmentRow
		err := h.db.
			Table("agendamentos").
			Select("agendamentos.tratamento_id, tratamentos.nome AS tratamento, COUNT(*) AS total").
			Joins("JOIN tratamentos ON tratamentos.id = agendamentos.tratamento_id").
			Where("EXTRACT(YEAR FROM agendamentos.data) = ?", ano).
			Group("agendamentos.tratamento_id, tratamentos.nome").
			Order("total DESC").
			Scan(&rows).Error
		return rows, err
	})
}

type appointmentsByMonthRow struct {
	Mes   int   `json:"mes"`
	Total int64 `json:"total"`
}

func (h *DashboardHandler) AppointmentsByMonth(c *gin.Context) {
	ano := dashboardYear(c)

	h.respondCached(c, fmt.Sprintf("dashboard:agendamentos:mes:%d", ano), func() (any, error) {
		var rows []appointmentsByMonthRow
		err := h.db.
			Table("agendamentos").
			Select("EXTRACT(MONTH FROM data)::int AS mes, COUNT(*) AS total").
			Where("EXTRACT(YEAR FROM data) = ?", ano).
			Group("mes").
			Order("mes ASC").
			Scan(&rows).Error
		return rows, err
	})
}

type cancellationRateResult struct {
	Ano        int     `json:"ano"`
	Total      int64   `json:"total"`
	Cancelados int64   `json:"cancelados"`
	Taxa       float64 `json:"taxa"`
}

func (h *DashboardHandler) CancellationRate(c *gin.Context) {
	ano := dashboardYear(c)

	h.respondCached(c, fmt.Sprintf("dashboard:agendamentos:cancelamento:%d", ano), func() (any, error) {
		base := h.db.
			Table("agendamentos").
			Where("EXTRACT(YEAR FROM data) = ?", ano)

		var total, cancelados int64
		if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return nil, err
		}
		if err := base.Session(&gorm.Session{}).
			Where("status = ?", string(appointment.StatusCancelado)).
			Count(&cancelados).Error; err != nil {
			return nil, err
		}

		result := cancellationRateResult{
			Ano:        ano,
			Total:      total,
			Cancelados: cancelados,
		}
		if total > 0 {
			result.Taxa = float64(cancelados) / float64(total)
		}
		return result, nil
	})
}

// --------- Financeiro ---------

type revenueByMethodRow struct {
	FormaPagamento string          `json:"forma_pagamento"`
	Total          decimal.Decimal `json:"total"`
}

func (h *DashboardHandler) RevenueByPaymentMethod(c *gin.Context) {
	ano := dashboardYear(c)

	h.respondCached(c, fmt.Sprintf("dashboard:receitas:forma:%d", ano), func() (any, error) {
		var rows []revenueByMethodRow
		err := h.db.
			Table("receitas").
			Select("forma_pagamento, COALESCE(SUM(valor), 0) AS total").
			Where("recebido = true AND EXTRACT(YEAR FROM data_recebimento) = ?", ano).
			Group("forma_pagamento").
			Order("total DESC").
			Scan(&rows).Error
		return rows, err
	})
}

type expensesByCategoryRow struct {
	Categoria string          `json:"categoria"`
	Total     decimal.Decimal `json:"total"`
}

func (h *DashboardHandler) ExpensesByCategory(c *gin.Context) {
	ano := dashboardYear(c)

	h.respondCached(c, fmt.Sprintf("dashboard:despesas:categoria:%d", ano), func() (any, error) {
		var rows []expensesByCategoryRow
		err := h.db.
			Table("despesas").
			Select("categoria_despesas.nome AS categoria, COALESCE(SUM(despesas.valor), 0) AS total").
			Joins("JOIN categoria_despesas ON categoria_despesas.id = despesas.categoria_id").
			Where("despesas.pago = true AND EXTRACT(YEAR FROM despesas.data_pagamento) = ?", ano).
			Group("categoria_despesas.nome").
			Order("total DESC").
			Scan(&rows).Error
		return rows, err
	})
}

// --------- Estoque ---------

type lowStockRow struct {
	ProdutoID         uint   `json:"produto_id"`
	Nome              string `json:"nome"`
	QuantidadeEstoque int    `json:"quantidade_estoque"`
	EstoqueMinimo     int    `json:"estoque_minimo"`
}

func (h *DashboardHandler) LowStock(c *gin.Context) {
	h.respondCached(c, "dashboard:estoque:baixo", func() (any, error) {
		var rows []lowStockRow
		err := h.db.
			Table("produtos").
			Select("id AS produto_id, nome, quantidade_estoque, estoque_minimo").
			Where("quantidade_estoque <= estoque_minimo").
			Order("quantidade_estoque ASC").
			Scan(&rows).Error
		return rows, err
	})
}

type stockMovementTotalsRow struct {
	Tipo  string `json:"tipo"`
	Total int64  `json:"total"`
}

func (h *DashboardHandler) StockMovementTotals(c *gin.Context) {
	ano := dashboardYear(c)

	h.respondCached(c, fmt.Sprintf("dashboard:estoque:movimentacoes:%d", ano), func() (any, error) {
		var rows []stockMovementTotalsRow
		err := h.db.
			Table("movimentacao_estoques").
			Select("tipo, COALESCE(SUM(quantidade), 0) AS total").
			Where("EXTRACT(YEAR FROM created_at) = ?", ano).
			Group("tipo").
			Scan(&rows).Error
		return rows, err
	})
}

// --------- Clientes ---------

type clientsByAgeRow struct {
	Faixa string `json:"faixa"`
	Total int64  `json:"total"`
}

func (h *DashboardHandler) ClientsByAgeBucket(c *gin.Context) {
	h.respondCached(c, "dashboard:clientes:faixa_etaria", func() (any, error) {
		var rows []clientsByAgeRow
		err := h.db.
			Table("clientes").
			Select(`CASE
				WHEN dt_nascimento IS NULL THEN 'nao_informado'
				WHEN EXTRACT(YEAR FROM AGE(dt_nascimento)) < 25 THEN 'ate_24'
				WHEN EXTRACT(YEAR FROM AGE(dt_nascimento)) < 35 THEN '25_34'
				WHEN EXTRACT(YEAR FROM AGE(dt_nascimento)) < 45 THEN '35_44'
				WHEN EXTRACT(YEAR FROM AGE(dt_nascimento)) < 55 THEN '45_54'
				ELSE '55_mais'
			END AS faixa, COUNT(*) AS total`).
			Group("faixa").
			Order("faixa ASC").
			Scan(&rows).Error
		return rows, err
	})
}
