package eventlog

// KeySuffix is joined to the profile id to form the history storage key
const KeySuffix = "history"

// Defaults
const (
	DefaultMaxEntries    = 200
	DefaultRetentionDays = 30
)

// Error Messages
const (
	ErrMsgLoadHistory = "failed to load history"
	ErrMsgSaveHistory = "failed to save history"
)

// Log messages - service events
const (
	LogMsgHistoryUnreadable = "Stored history is unreadable, starting fresh"
	LogMsgFailedToLogEvent  = "Failed to record event in history"
	LogMsgEventLogged       = "Event recorded in history"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting history cleanup job"
	LogMsgCleanupJobFailed    = "History cleanup failed"
	LogMsgCleanupJobCompleted = "History cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldKey           = "key"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
