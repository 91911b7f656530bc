package profile

// SnapshotSchemaVersion is written into every persisted snapshot.
// Snapshots with another version are treated as unreadable.
const SnapshotSchemaVersion = "1"

// Storage key suffixes, joined to the profile id with ':'
const (
	KeySuffixLevel      = "level"
	KeySuffixCollection = "collection"
	KeySuffixItemBox    = "itembox"
)

// XP sources, used for metrics labels and logs
const (
	XPSourceNewItem    = "new_item"
	XPSourceCheckIn    = "check_in"
	XPSourceDailyLogin = "daily_login"
	XPSourceManual     = "manual"
)

// EventSource is the metadata source of events published by the service
const EventSource = "profile"

// Error Messages
const (
	ErrMsgProfileIDRequired = "profile id is required"
	ErrMsgLoadFailed        = "failed to load profile state"
	ErrMsgSaveFailed        = "failed to save profile state"
	ErrMsgInvalidEntry      = "invalid collect entry"
)

// Log Messages
const (
	LogMsgProfileOpened       = "Profile opened"
	LogMsgSnapshotMissing     = "No saved state, starting fresh"
	LogMsgSnapshotUnreadable  = "Saved state is unreadable, starting fresh"
	LogMsgSnapshotSaveFailed  = "Failed to save profile state"
	LogMsgEventPublishFailed  = "Failed to publish event"
	LogMsgItemCollected       = "Item collected"
	LogMsgItemCheckedIn       = "Item checked in"
	LogMsgLevelUp             = "Level up"
	LogMsgDailyLoginClaimed   = "Daily login claimed"
	LogMsgDailyLoginDuplicate = "Daily login already claimed today"
	LogMsgBoxItemRedeemed     = "Box item redeemed"
	LogMsgBoxSwept            = "Expired box items removed"
	LogMsgGachaPull           = "Gacha pull"
)
