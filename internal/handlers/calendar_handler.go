package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbeariaclassica/agenda-api/internal/domain/booking"
	"github.com/barbeariaclassica/agenda-api/internal/httperr"
	"github.com/barbeariaclassica/agenda-api/internal/httpresp"
	ucAppointment "github.com/barbeariaclassica/agenda-api/internal/usecase/appointment"
)

// CalendarHandler alimenta a visão de calendário: contagem de
// agendamentos por dia do mês e a lista completa de um dia.
type CalendarHandler struct {
	listByMonth *ucAppointment.ListByMonth
	list        *ucAppointment.ListAppointments
}

func NewCalendarHandler(
	listByMonth *ucAppointment.ListByMonth,
	list *ucAppointment.ListAppointments,
) *CalendarHandler {
	return &CalendarHandler{
		listByMonth: listByMonth,
		list:        list,
	}
}

func (h *CalendarHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	days, err := h.listByMonth.Execute(c.Request.Context(), year, time.Month(month))
	if err != nil {
		httperr.Internal(c, "calendar_failed", "Erro ao carregar o calendário.")
		return
	}

	httpresp.OK(c, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

func (h *CalendarHandler) Day(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse(booking.DateLayout, date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	appointments, err := h.list.Execute(
		c.Request.Context(),
		ucAppointment.ListAppointmentsFilter{Date: date},
	)
	if err != nil {
		httperr.Internal(c, "calendar_failed", "Erro ao carregar agendamentos.")
		return
	}

	httpresp.OK(c, gin.H{
		"date":         date,
		"appointments": appointments,
	})
}
