package achievement

import (
	"github.com/osse101/GachaTrip_Go/internal/domain"
)

// Stats is the player state achievements are computed from
type Stats struct {
	Level  int
	Streak int
	Totals domain.CollectionTotals
}

// Checker calculates which achievements the player has earned
type Checker struct {
	stats Stats
}

func NewChecker(stats Stats) *Checker {
	return &Checker{stats: stats}
}

// GetAchievements returns all achievements with their earned status
func (c *Checker) GetAchievements() []domain.Achievement {
	return []domain.Achievement{
		// Level milestones
		c.threshold("first_steps", "First Steps", "Reach level 2", "🌱", c.stats.Level, 2),
		c.threshold("seasoned", "Seasoned Traveler", "Reach level 10", "⭐", c.stats.Level, 10),
		c.threshold("veteran", "Veteran", "Reach level 30", "🌟", c.stats.Level, 30),
		c.threshold("legend", "Legend", "Reach level 80", "💫", c.stats.Level, 80),
		c.threshold("maxed", "Nowhere Left", "Reach level 99", "🏆", c.stats.Level, 99),

		// Collection milestones
		c.threshold("first_pull", "First Stamp", "Collect 1 destination", "📍", c.stats.Totals.Items, 1),
		c.threshold("collector", "Collector", "Collect 25 destinations", "🗺️", c.stats.Totals.Items, 25),
		c.threshold("curator", "Curator", "Collect 100 destinations", "🧭", c.stats.Totals.Items, 100),
		c.threshold("regular", "Regular", "Check in 50 times", "🔁", c.stats.Totals.CheckIns, 50),
		c.threshold("county_hopper", "County Hopper", "Visit 5 counties", "🚌", c.stats.Totals.Counties, 5),
		c.threshold("island_wide", "Island Wide", "Visit 22 counties", "🏝️", c.stats.Totals.Counties, 22),
		c.threshold("taste_maker", "Taste Maker", "Favorite 10 destinations", "❤️", c.stats.Totals.Favorites, 10),

		// Streak milestones
		c.threshold("week_streak", "Week Streak", "Log in 7 days in a row", "🔥", c.stats.Streak, 7),
		c.threshold("month_streak", "Month Streak", "Log in 30 days in a row", "📅", c.stats.Streak, 30),
		c.threshold("century_streak", "Century Streak", "Log in 100 days in a row", "💯", c.stats.Streak, 100),
	}
}

// CountEarned returns how many achievements have been earned
func (c *Checker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements
func (c *Checker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *Checker) threshold(id, name, desc, icon string, value, target int) domain.Achievement {
	return domain.Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: value >= target}
}
