package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbeariaclassica/agenda-api/internal/httperr"
	"github.com/barbeariaclassica/agenda-api/internal/httpresp"
	ucAppointment "github.com/barbeariaclassica/agenda-api/internal/usecase/appointment"
	ucBarber "github.com/barbeariaclassica/agenda-api/internal/usecase/barber"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// BookingHandler cobre o fluxo público: listar barbeiros, consultar
// horários disponíveis e enviar um agendamento.
type BookingHandler struct {
	listBarbers     *ucBarber.ListBarbers
	getAvailability *ucAppointment.GetAvailability
	create          *ucAppointment.CreateAppointment
}

func NewBookingHandler(
	listBarbers *ucBarber.ListBarbers,
	getAvailability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
) *BookingHandler {
	return &BookingHandler{
		listBarbers:     listBarbers,
		getAvailability: getAvailability,
		create:          create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	ClientName  string `json:"clientName" binding:"required"`
	ClientPhone string `json:"clientPhone" binding:"required"`
	ClientEmail string `json:"clientEmail" binding:"required"`
	BarberID    string `json:"barberId" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// BARBERS
////////////////////////////////////////////////////////

func (h *BookingHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.listBarbers.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao carregar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *BookingHandler) Availability(c *gin.Context) {
	barberID := c.Query("barber_id")
	date := c.Query("date")

	// Sem barbeiro ou data não há o que calcular; o seletor de horário
	// do cliente fica desabilitado.
	if barberID == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "Barbeiro e data obrigatórios.")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		if httperr.IsBusiness(err, "barber_not_found") {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Por favor, preencha todos os campos obrigatórios.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			BarberID:    req.BarberID,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// mapCreateErrors converte os desfechos Failed(reason) da tentativa de
// agendamento em respostas HTTP com mensagem para o usuário.
func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_fields"):
		httperr.BadRequest(c, "missing_fields", "Por favor, preencha todos os campos obrigatórios.")
	case httperr.IsBusiness(err, "invalid_email"):
		httperr.BadRequest(c, "invalid_email", "Por favor, insira um e-mail válido.")
	case httperr.IsBusiness(err, "invalid_slot"):
		httperr.BadRequest(c, "invalid_slot", "Horário fora da grade de atendimento.")
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.IsBusiness(err, "past_datetime"):
		httperr.BadRequest(c, "past_datetime", "Não é possível agendar para datas e horários passados.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "slot_conflict", "Este horário já foi agendado. Por favor, selecione outro horário.")
	default:
		httperr.Internal(c, "booking_failed", "Erro ao realizar agendamento. Tente novamente.")
	}
}
