package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vittaestetica/clinica-api/internal/httperr"
	"github.com/vittaestetica/clinica-api/internal/models"
	"github.com/vittaestetica/clinica-api/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(nome) LIKE ? OR telefone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clientes []models.Cliente
	if err := q.
		Order("created_at DESC").
		Find(&clientes).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	c.JSON(http.StatusOK, clientes)
}

func (h *ClientHandler) Get(c *gin.Context) {
	var cliente models.Cliente
	if err := h.db.First(&cliente, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// ======================================================
// UPDATE
// ======================================================

type UpdateClientRequest struct {
	Nome         *string `json:"nome,omitempty"`
	Telefone     *string `json:"telefone,omitempty"`
	Email        *string `json:"email,omitempty"`
	CPF          *string `json:"cpf,omitempty"`
	DtNascimento *string `json:"dt_nascimento,omitempty"` // YYYY-MM-DD
	Sexo         *string `json:"sexo,omitempty"`
	Observacoes  *string `json:"observacoes,omitempty"`
}

// Update nunca remove o cliente; CPF vazio limpa o campo (resolução de
// cadastros duplicados).
func (h *ClientHandler) Update(c *gin.Context) {
	var cliente models.Cliente
	if err := h.db.First(&cliente, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		cliente.Nome = *req.Nome
	}
	if req.Telefone != nil {
		cliente.Telefone = *req.Telefone
	}
	if req.Email != nil {
		cliente.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Sexo != nil {
		cliente.Sexo = *req.Sexo
	}
	if req.Observacoes != nil {
		cliente.Observacoes = *req.Observacoes
	}

	if req.CPF != nil {
		cpf := strings.TrimSpace(*req.CPF)
		if cpf == "" {
			cliente.CPF = nil
		} else {
			if !validators.IsValidCPF(cpf) {
				httperr.BadRequest(c, "invalid_cpf", "CPF inválido.")
				return
			}
			normalized := validators.NormalizeCPF(cpf)
			cliente.CPF = &normalized
		}
	}

	if req.DtNascimento != nil {
		if *req.DtNascimento == "" {
			cliente.DtNascimento = nil
		} else {
			dt, err := time.Parse("2006-01-02", *req.DtNascimento)
			if err != nil {
				httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
				return
			}
			cliente.DtNascimento = &dt
		}
	}

	if err := h.db.Save(&cliente).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "cpf_already_exists", "CPF já cadastrado para outro cliente.")
			return
		}
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	c.JSON(http.StatusOK, cliente)
}
