package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbeariaclassica/agenda-api/internal/httperr"
	ucBarber "github.com/barbeariaclassica/agenda-api/internal/usecase/barber"
)

// BarberHandler cobre o gerenciamento de barbeiros: cadastrar, renomear e
// remover (com cascade dos agendamentos).
type BarberHandler struct {
	add    *ucBarber.AddBarber
	rename *ucBarber.RenameBarber
	remove *ucBarber.RemoveBarber
}

func NewBarberHandler(
	add *ucBarber.AddBarber,
	rename *ucBarber.RenameBarber,
	remove *ucBarber.RemoveBarber,
) *BarberHandler {
	return &BarberHandler{
		add:    add,
		rename: rename,
		remove: remove,
	}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameBarberRequest struct {
	Name string `json:"name" binding:"required"`
}

// --------- Handlers ---------

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_name", "Por favor, insira o nome do barbeiro.")
		return
	}

	b, err := h.add.Execute(c.Request.Context(), req.Name)
	if err != nil {
		mapBarberErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BarberHandler) Rename(c *gin.Context) {
	id := c.Param("id")

	var req RenameBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_name", "Nome do barbeiro não pode estar vazio.")
		return
	}

	if err := h.rename.Execute(c.Request.Context(), id, req.Name); err != nil {
		mapBarberErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barbeiro atualizado com sucesso!"})
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.remove.Execute(c.Request.Context(), id)
	if err != nil {
		mapBarberErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":             "Barbeiro e seus agendamentos foram removidos com sucesso.",
		"appointmentsRemoved": removed,
	})
}

func mapBarberErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_name"):
		httperr.BadRequest(c, "missing_name", "Nome do barbeiro não pode estar vazio.")
	case httperr.IsBusiness(err, "duplicate_name"):
		httperr.Conflict(c, "duplicate_name", "Já existe um barbeiro com este nome.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
	default:
		httperr.Internal(c, "barber_operation_failed", "Erro ao salvar barbeiro.")
	}
}
