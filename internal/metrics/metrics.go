package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Simulation Metrics
var (
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsTotal,
			Help: HelpTextActionsTotal,
		},
		[]string{LabelAction},
	)

	ActionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsRejected,
			Help: HelpTextActionsRejected,
		},
		[]string{LabelAction, LabelReason},
	)

	TurnsAdvanced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTurnsAdvanced,
			Help: HelpTextTurnsAdvanced,
		},
		[]string{LabelMode},
	)

	EndOfTurnDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameEndOfTurnDuration,
			Help:    HelpTextEndOfTurnDuration,
			Buckets: EndOfTurnBuckets,
		},
	)

	Currency = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrency,
			Help: HelpTextCurrency,
		},
	)

	Turn = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameTurn,
			Help: HelpTextTurn,
		},
	)

	StoredWater = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStoredWater,
			Help: HelpTextStoredWater,
		},
	)

	Aquifer = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAquifer,
			Help: HelpTextAquifer,
		},
	)

	Harvests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvests,
			Help: HelpTextHarvests,
		},
		[]string{LabelSeed},
	)
)

// Business Metrics
var (
	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)
)
