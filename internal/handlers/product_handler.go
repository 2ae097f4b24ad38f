package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domainStock "github.com/vittaestetica/clinica-api/internal/domain/stock"
	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/httpresp"
	"github.com/vittaestetica/clinica-api/internal/middleware"
	"github.com/vittaestetica/clinica-api/internal/models"
	ucStock "github.com/vittaestetica/clinica-api/internal/usecase/stock"
)

type ProductHandler struct {
	db        *gorm.DB
	restockUC *ucStock.Restock
	stockRepo domainStock.Repository
}

func NewProductHandler(
	db *gorm.DB,
	restockUC *ucStock.Restock,
	stockRepo domainStock.Repository,
) *ProductHandler {
	return &ProductHandler{
		db:        db,
		restockUC: restockUC,
		stockRepo: stockRepo,
	}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Nome         string          `json:"nome" binding:"required"`
	Descricao    string          `json:"descricao"`
	Marca        string          `json:"marca"`
	DataValidade string          `json:"data_validade"` // YYYY-MM-DD
	PrecoCusto   decimal.Decimal `json:"preco_custo"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"`

	EstoqueMinimo int `json:"estoque_minimo"`
}

type UpdateProductRequest struct {
	Nome          *string          `json:"nome,omitempty"`
	Descricao     *string          `json:"descricao,omitempty"`
	Marca         *string          `json:"marca,omitempty"`
	PrecoCusto    *decimal.Decimal `json:"preco_custo,omitempty"`
	PrecoVenda    *decimal.Decimal `json:"preco_venda,omitempty"`
	EstoqueMinimo *int             `json:"estoque_minimo,omitempty"`
}

type StockEntryRequest struct {
	Quantidade int    `json:"quantidade" binding:"required,min=1"`
	Motivo     string `json:"motivo"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	lowStock := c.Query("estoque_baixo") == "true"

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(marca) LIKE ?", like, like)
	}

	if lowStock {
		q = q.Where("quantidade_estoque <= estoque_minimo")
	}

	var produtos []models.Produto
	if err := q.Order("id ASC").Find(&produtos).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Erro ao listar produtos.")
		return
	}

	c.JSON(http.StatusOK, produtos)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	produto := models.Produto{
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		Marca:         req.Marca,
		PrecoCusto:    req.PrecoCusto,
		PrecoVenda:    req.PrecoVenda,
		EstoqueMinimo: req.EstoqueMinimo,
	}

	if req.DataValidade != "" {
		dt, err := time.Parse("2006-01-02", req.DataValidade)
		if err != nil {
			httperr.BadRequest(c, "invalid_expiry_date", "Data de validade inválida.")
			return
		}
		produto.DataValidade = &dt
	}

	// Estoque inicial entra pelo ledger (entrada), não por escrita direta.
	if err := h.db.Create(&produto).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Erro ao criar produto.")
		return
	}

	c.JSON(http.StatusCreated, produto)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var produto models.Produto
	if err := h.db.First(&produto, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		produto.Nome = *req.Nome
	}
	if req.Descricao != nil {
		produto.Descricao = *req.Descricao
	}
	if req.Marca != nil {
		produto.Marca = *req.Marca
	}
	if req.PrecoCusto != nil {
		produto.PrecoCusto = *req.PrecoCusto
	}
	if req.PrecoVenda != nil {
		produto.PrecoVenda = *req.PrecoVenda
	}
	if req.EstoqueMinimo != nil {
		produto.EstoqueMinimo = *req.EstoqueMinimo
	}

	if err := h.db.Save(&produto).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	}

	c.JSON(http.StatusOK, produto)
}

// Entrada registra reposição de estoque via ledger.
func (h *ProductHandler) Entrada(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req StockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	produto, err := h.restockUC.Execute(c.Request.Context(), ucStock.RestockInput{
		ProdutoID:  uint(id),
		Quantidade: req.Quantidade,
		Motivo:     req.Motivo,
	}, &userID)

	if err != nil {
		switch {
		case err == gorm.ErrRecordNotFound:
			httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		case httperr.IsBusiness(err, "invalid_quantity"):
			httperr.BadRequest(c, "invalid_quantity", "Quantidade inválida.")
		default:
			httperr.Internal(c, "failed_to_register_entry", "Erro ao registrar entrada.")
		}
		return
	}

	c.JSON(http.StatusOK, produto)
}

func (h *ProductHandler) Movimentacoes(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	movs, err := h.stockRepo.ListMovimentacoes(c.Request.Context(), uint(id))
	if err != nil {
		httperr.Internal(c, "failed_to_list_movements", "Erro ao listar movimentações.")
		return
	}

	httpresp.List(c, movs)
}
