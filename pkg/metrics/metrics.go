package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration   *prometheus.HistogramVec
	DBConnectionsOpen *prometheus.GaugeVec
	DBConnectionsIdle *prometheus.GaugeVec
	DBConnectionsUsed *prometheus.GaugeVec

	// Бизнес-метрики планировщика
	AppointmentsCreatedTotal *prometheus.CounterVec
	SchedulingConflictsTotal *prometheus.CounterVec
	StatusTransitionsTotal   *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBConnectionsUsed: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		AppointmentsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Total number of successfully created appointments",
			ConstLabels: constLabels,
		}, []string{"barber_id"}),

		SchedulingConflictsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_conflicts_total",
			Help:        "Total number of booking attempts rejected due to slot conflicts",
			ConstLabels: constLabels,
		}, []string{"stage"}), // stage: precheck | constraint

		StatusTransitionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_status_transitions_total",
			Help:        "Total number of appointment status transitions",
			ConstLabels: constLabels,
		}, []string{"target"}),
	}
}

// Инкременты бизнес-метрик nil-safe: при выключенных метриках
// потребители получают nil *Metrics и вызовы становятся no-op.

// IncAppointmentCreated увеличивает счетчик созданных записей
func (m *Metrics) IncAppointmentCreated(barberID string) {
	if m == nil {
		return
	}
	m.AppointmentsCreatedTotal.WithLabelValues(barberID).Inc()
}

// IncSchedulingConflict увеличивает счетчик отказов по занятому слоту.
// stage: "precheck" или "constraint".
func (m *Metrics) IncSchedulingConflict(stage string) {
	if m == nil {
		return
	}
	m.SchedulingConflictsTotal.WithLabelValues(stage).Inc()
}

// IncStatusTransition увеличивает счетчик переходов статуса
func (m *Metrics) IncStatusTransition(target string) {
	if m == nil {
		return
	}
	m.StatusTransitionsTotal.WithLabelValues(target).Inc()
}
