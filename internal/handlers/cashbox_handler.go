package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/timezone"
	usecase "github.com/vittaestetica/clinica-api/internal/usecase/finance"
)

type CashboxHandler struct {
	cashbox *usecase.Cashbox
}

func NewCashboxHandler(cashbox *usecase.Cashbox) *CashboxHandler {
	return &CashboxHandler{cashbox: cashbox}
}

// GET /api/caixa?ano=2025&mes=3
// Sem parâmetros, retorna o mês corrente.
func (h *CashboxHandler) Summary(c *gin.Context) {
	now := timezone.Now()
	ano := now.Year()
	mes := int(now.Month())

	if v := c.Query("ano"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_year", "Ano inválido.")
			return
		}
		ano = n
	}

	if v := c.Query("mes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_month", "Mês inválido.")
			return
		}
		mes = n
	}

	summary, err := h.cashbox.Execute(c.Request.Context(), ano, mes)
	switch {
	case err == nil:
	case httperr.IsBusiness(err, "invalid_month"):
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	case httperr.IsBusiness(err, "invalid_year"):
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	default:
		httperr.Internal(c, "failed_to_compute_cashbox", "Erro ao calcular o caixa.")
		return
	}

	c.JSON(http.StatusOK, summary)
}
