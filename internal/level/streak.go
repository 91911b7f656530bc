package level

import (
	"slices"

	"github.com/osse101/GachaTrip_Go/internal/clock"
	"github.com/osse101/GachaTrip_Go/internal/domain"
)

// ClaimDailyLogin pays the daily login bonus once per local calendar day.
// A claim on the day after the previous one extends the streak; any other gap restarts it at 1.
// The milestone bonus is paid only when the streak lands exactly on a milestone.
func (e *Engine) ClaimDailyLogin() domain.DailyLoginResult {
	today := clock.Today(e.clock)

	if e.state.LastLoginDate == today {
		return domain.DailyLoginResult{
			Success: false,
			Message: MsgAlreadyClaimed,
			Streak:  e.state.StreakCount,
		}
	}

	streak := 1
	if e.state.LastLoginDate == clock.Yesterday(e.clock) {
		streak = e.state.StreakCount + 1
	}

	rules := e.rules.DailyLogin
	bonus := rules.BaseBonus
	milestone := slices.Contains(rules.Milestones, streak)
	if milestone {
		bonus += rules.MilestoneBonus
	}

	e.state.StreakCount = streak
	e.state.LastLoginDate = today
	grant := e.GrantXP(bonus)

	msg := MsgLoginClaimed
	if milestone {
		msg = MsgMilestoneClaimed
	}

	return domain.DailyLoginResult{
		Success:          true,
		Message:          msg,
		Streak:           streak,
		XPGained:         grant.XPGained,
		MilestoneReached: milestone,
		Grant:            &grant,
	}
}

// CurrentStreak returns the streak that is still alive today.
// A streak whose last claim is older than yesterday reads as 0.
func (e *Engine) CurrentStreak() int {
	switch e.state.LastLoginDate {
	case clock.Today(e.clock), clock.Yesterday(e.clock):
		return e.state.StreakCount
	default:
		return 0
	}
}
