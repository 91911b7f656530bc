package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Event metric names
const (
	MetricNameEventsPublished    = "gachatrip_events_published_total"
	MetricNameEventHandlerErrors = "gachatrip_event_handler_errors_total"
)

// Business metric names
const (
	MetricNameItemsCollected  = "gachatrip_items_collected_total"
	MetricNameCheckIns        = "gachatrip_check_ins_total"
	MetricNameItemsMarked     = "gachatrip_items_marked_total"
	MetricNameXPGranted       = "gachatrip_xp_granted_total"
	MetricNameLevelUps        = "gachatrip_level_ups_total"
	MetricNameDailyClaims     = "gachatrip_daily_claims_total"
	MetricNameBoxRedeemed     = "gachatrip_box_items_redeemed_total"
	MetricNameBoxItemsSwept   = "gachatrip_box_items_swept_total"
	MetricNameGachaPulls      = "gachatrip_gacha_pulls_total"
	MetricNameStorageFailures = "gachatrip_storage_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextItemsCollected  = "Total number of distinct destinations collected"
	HelpTextCheckIns        = "Total number of repeat check-ins at collected destinations"
	HelpTextItemsMarked     = "Total number of favorite/blacklist mark changes"
	HelpTextXPGranted       = "Total XP granted"
	HelpTextLevelUps        = "Total number of level ups"
	HelpTextDailyClaims     = "Total number of daily login claim attempts"
	HelpTextBoxRedeemed     = "Total number of item box items redeemed"
	HelpTextBoxItemsSwept   = "Total number of expired item box items removed"
	HelpTextGachaPulls      = "Total number of destinations drawn from the gacha pool"
	HelpTextStorageFailures = "Total number of failed snapshot writes"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelType    = "type"
	LabelCounty  = "county"
	LabelMark    = "mark"
	LabelSource  = "source"
	LabelOutcome = "outcome"
	LabelRarity  = "rarity"
	LabelKey     = "key"
)

// Daily claim outcomes
const (
	OutcomeClaimed        = "claimed"
	OutcomeMilestone      = "milestone"
	OutcomeAlreadyClaimed = "already_claimed"
)

// MarkCleared is the mark label used when a favorite/blacklist mark is removed
const MarkCleared = "none"

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
