package domain

// LevelTier is a named band of levels, inclusive on both ends
type LevelTier struct {
	MinLevel int    `json:"min_level" yaml:"min_level"`
	MaxLevel int    `json:"max_level" yaml:"max_level"`
	Name     string `json:"name" yaml:"name"`
	Style    string `json:"style" yaml:"style"` // visual style token for the client
}

// Contains reports whether level falls inside the tier
func (t LevelTier) Contains(level int) bool {
	return level >= t.MinLevel && level <= t.MaxLevel
}

// LevelState is the persisted experience record of one profile.
// Level, tier and progress are always derived from TotalXP.
type LevelState struct {
	TotalXP       int64  `json:"total_xp"`
	LastLoginDate string `json:"last_login_date,omitempty"` // YYYY-MM-DD, local date
	StreakCount   int    `json:"streak_count"`
}

// LevelProgress is the display view of a LevelState
type LevelProgress struct {
	TotalXP         int64     `json:"total_xp"`
	Level           int       `json:"level"`
	Tier            LevelTier `json:"tier"`
	XPIntoLevel     int64     `json:"xp_into_level"`
	XPForNextLevel  int64     `json:"xp_for_next_level"` // 0 at max level
	ProgressPercent float64   `json:"progress_percent"`
	MaxedOut        bool      `json:"maxed_out"`
}

// GrantResult contains the outcome of adding XP
type GrantResult struct {
	XPGained    int64  `json:"xp_gained"`
	TotalXP     int64  `json:"total_xp"`
	OldLevel    int    `json:"old_level"`
	NewLevel    int    `json:"new_level"`
	LeveledUp   bool   `json:"leveled_up"`
	OldTier     string `json:"old_tier"`
	NewTier     string `json:"new_tier"`
	TierChanged bool   `json:"tier_changed"`
}

// DailyLoginRules configures the daily login bonus
type DailyLoginRules struct {
	BaseBonus      int64 `json:"base_bonus" yaml:"base_bonus"`
	MilestoneBonus int64 `json:"milestone_bonus" yaml:"milestone_bonus"`
	Milestones     []int `json:"milestones" yaml:"milestones"` // exact streak counts that pay the milestone bonus
}

// DailyLoginResult is the structured outcome of a daily login claim.
// A second claim on the same day is reported with Success=false, not as an error.
type DailyLoginResult struct {
	Success          bool         `json:"success"`
	Message          string       `json:"message"`
	Streak           int          `json:"streak"`
	XPGained         int64        `json:"xp_gained"`
	MilestoneReached bool         `json:"milestone_reached"`
	Grant            *GrantResult `json:"grant,omitempty"`
}
