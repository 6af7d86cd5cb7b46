// Package metrics collects Prometheus metrics of the service.
// All methods are safe to call on a nil *Metrics, which is how metrics are disabled.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration   *prometheus.HistogramVec
	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge

	conflictMapDesks     *prometheus.CounterVec
	autoForwardHalts     prometheus.Counter
	reservationsCreated  prometheus.Counter
	reservationConflicts prometheus.Counter
	reservationDaysTotal prometheus.Histogram
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		dbOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		dbInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		dbIdle: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		dbWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		conflictMapDesks: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "conflict_map_desks_total",
			Help:        "Desks evaluated by the conflict map builder",
			ConstLabels: constLabels,
		}, []string{"conflict"}),
		autoForwardHalts: factory.NewCounter(prometheus.CounterOpts{
			Name:        "auto_forward_halts_total",
			Help:        "Auto-forward requests halted by a failed subscription",
			ConstLabels: constLabels,
		}),
		reservationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Reservations created",
			ConstLabels: constLabels,
		}),
		reservationConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_conflicts_total",
			Help:        "Reservation requests rejected because of a desk conflict",
			ConstLabels: constLabels,
		}),
		reservationDaysTotal: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "reservation_days_projected",
			Help:        "Number of reservation days returned per projection",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
	}
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// ObserveConflictMap учитывает результат построения карты конфликтов
func (m *Metrics) ObserveConflictMap(conflicting, total int) {
	if m == nil {
		return
	}
	m.conflictMapDesks.WithLabelValues("true").Add(float64(conflicting))
	m.conflictMapDesks.WithLabelValues("false").Add(float64(total - conflicting))
}

// IncAutoForwardHalt учитывает остановку автовыбора из-за проблем с оплатой
func (m *Metrics) IncAutoForwardHalt() {
	if m == nil {
		return
	}
	m.autoForwardHalts.Inc()
}

// IncReservationCreated учитывает созданное бронирование
func (m *Metrics) IncReservationCreated() {
	if m == nil {
		return
	}
	m.reservationsCreated.Inc()
}

// IncReservationConflict учитывает отклонённое из-за конфликта бронирование
func (m *Metrics) IncReservationConflict() {
	if m == nil {
		return
	}
	m.reservationConflicts.Inc()
}

// ObserveReservationDays учитывает размер выдачи дней бронирований
func (m *Metrics) ObserveReservationDays(count int) {
	if m == nil {
		return
	}
	m.reservationDaysTotal.Observe(float64(count))
}
