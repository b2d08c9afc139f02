package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric label values.
const (
	dirEthToGreg = "ethiopic_to_gregorian"
	dirGregToEth = "gregorian_to_ethiopic"

	outcomeOK           = "ok"
	outcomeInvalidInput = "invalid_input"
	outcomeInvalidDate  = "invalid_date"

	calendarEthiopic  = "ethiopic"
	calendarGregorian = "gregorian"

	resultValid   = "valid"
	resultInvalid = "invalid"
)

// Metrics holds all Prometheus metrics for the conversion service.
type Metrics struct {
	Conversions *prometheus.CounterVec
	Validations *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics on the given registerer.
// Taking a registerer (instead of the global default) lets each server
// instance own its registry, which keeps tests independent.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ethiopic_conversions_total",
			Help: "Total date conversion requests by direction and outcome.",
		}, []string{"direction", "outcome"}),
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ethiopic_validations_total",
			Help: "Total date validation requests by calendar and result.",
		}, []string{"calendar", "result"}),
	}
}
