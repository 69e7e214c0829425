package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os contadores do serviço expostos em /metrics.
type Metrics struct {
	BookingsCreated    prometheus.Counter
	BookingConflicts   prometheus.Counter
	BookingValidations prometheus.Counter

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registra os contadores no registrador dado; testes usam um
// registrador isolado para poder criar métricas mais de uma vez.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "agenda_bookings_created_total",
			Help: "Agendamentos gravados com sucesso.",
		}),
		BookingConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "agenda_booking_conflicts_total",
			Help: "Tentativas rejeitadas porque o horário já estava ocupado.",
		}),
		BookingValidations: factory.NewCounter(prometheus.CounterOpts{
			Name: "agenda_booking_validation_failures_total",
			Help: "Tentativas rejeitadas na validação do formulário.",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agenda_http_requests_total",
			Help: "Requisições HTTP por rota, método e status.",
		}, []string{"path", "method", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agenda_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
	}
}
