package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
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

// Collection Metrics
var (
	ItemsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCollected,
			Help: HelpTextItemsCollected,
		},
		[]string{LabelCounty},
	)

	CheckIns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCheckIns,
			Help: HelpTextCheckIns,
		},
		[]string{LabelCounty},
	)

	ItemsMarked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsMarked,
			Help: HelpTextItemsMarked,
		},
		[]string{LabelMark},
	)
)

// Level Metrics
var (
	XPGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPGranted,
			Help: HelpTextXPGranted,
		},
		[]string{LabelSource},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	DailyClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDailyClaims,
			Help: HelpTextDailyClaims,
		},
		[]string{LabelOutcome},
	)
)

// Item Box and Gacha Metrics
var (
	BoxItemsRedeemed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBoxRedeemed,
			Help: HelpTextBoxRedeemed,
		},
	)

	BoxItemsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBoxItemsSwept,
			Help: HelpTextBoxItemsSwept,
		},
	)

	GachaPulls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGachaPulls,
			Help: HelpTextGachaPulls,
		},
		[]string{LabelRarity},
	)
)

// Storage Metrics
var (
	StorageFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageFailures,
			Help: HelpTextStorageFailures,
		},
		[]string{LabelKey},
	)
)
