package level

// XP curve constants: cost(level) = floor(CostCoefficient * level^CostExponent + CostOffset)
const (
	CostCoefficient = 40.0
	CostExponent    = 1.4
	CostOffset      = 10.0
)

// Level bounds
const (
	MinLevel = 1
	MaxLevel = 99
)

// Daily login defaults
const (
	DefaultLoginBonus     = 20
	DefaultMilestoneBonus = 200
)

// DefaultMilestones are the exact streak counts that pay the milestone bonus
var DefaultMilestones = []int{7, 30, 100}

// Daily login messages
const (
	MsgLoginClaimed     = "daily login claimed"
	MsgMilestoneClaimed = "daily login claimed, streak milestone reached"
	MsgAlreadyClaimed   = "daily login already claimed today"
)
