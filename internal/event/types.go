package event

import "time"

// Event types published by the profile service
const (
	ItemCollected      Type = "collection.item_collected"
	ItemMarked         Type = "collection.item_marked"
	XPGranted          Type = "level.xp_granted"
	LevelUp            Type = "level.level_up"
	DailyLoginClaimed  Type = "level.daily_login"
	BoxItemRedeemed    Type = "itembox.redeemed"
	BoxItemsSwept      Type = "itembox.swept"
	GachaPullCompleted Type = "gacha.pull_completed"
)

// ItemCollectedPayloadV1 is the typed payload for collect events
type ItemCollectedPayloadV1 struct {
	ItemID       string `json:"item_id"`
	Title        string `json:"title"`
	County       string `json:"county"`
	Category     string `json:"category"`
	Created      bool   `json:"created"`
	CheckInCount int    `json:"check_in_count"`
	Timestamp    int64  `json:"timestamp"`
}

// ItemMarkedPayloadV1 is the typed payload for favorite/blacklist changes
type ItemMarkedPayloadV1 struct {
	ItemID string `json:"item_id"`
	Mark   string `json:"mark"` // "" when cleared
}

// XPGrantedPayloadV1 is the typed payload for XP grants
type XPGrantedPayloadV1 struct {
	Amount  int64  `json:"amount"`
	TotalXP int64  `json:"total_xp"`
	Source  string `json:"source"`
}

// LevelUpPayloadV1 is the typed payload for level ups
type LevelUpPayloadV1 struct {
	OldLevel    int    `json:"old_level"`
	NewLevel    int    `json:"new_level"`
	NewTier     string `json:"new_tier"`
	TierChanged bool   `json:"tier_changed"`
}

// DailyLoginPayloadV1 is the typed payload for daily login attempts
type DailyLoginPayloadV1 struct {
	Success          bool  `json:"success"`
	Streak           int   `json:"streak"`
	XPGained         int64 `json:"xp_gained"`
	MilestoneReached bool  `json:"milestone_reached"`
}

// BoxPayloadV1 is the typed payload for item box changes
type BoxPayloadV1 struct {
	ItemID string `json:"item_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Count  int    `json:"count"`
}

// GachaPullPayloadV1 is the typed payload for gacha pulls
type GachaPullPayloadV1 struct {
	Count    int            `json:"count"`
	Rarities map[string]int `json:"rarities"`
}

// New creates an event of the given type stamped with the current schema version
func New(eventType Type, payload interface{}, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
		Metadata: map[string]interface{}{
			"source":    source,
			"timestamp": time.Now().Unix(),
		},
	}
}
