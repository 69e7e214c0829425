package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbeariaclassica/agenda-api/internal/httperr"
	ucAppointment "github.com/barbeariaclassica/agenda-api/internal/usecase/appointment"
)

// AppointmentHandler cobre o gerenciamento de agendamentos: listagem com
// filtros e exclusão.
type AppointmentHandler struct {
	list   *ucAppointment.ListAppointments
	delete *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	delete *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:   list,
		delete: delete,
	}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.list.Execute(
		c.Request.Context(),
		ucAppointment.ListAppointmentsFilter{
			BarberID: c.Query("barber_id"),
			Date:     c.Query("date"),
		},
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  appointments,
		"total": len(appointments),
	})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agendamento excluído com sucesso."})
}
