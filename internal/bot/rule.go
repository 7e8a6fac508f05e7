package bot

// Rule identifies which step of the cascade produced a decision.
type Rule int

const (
	RuleNone Rule = iota
	RuleWarn
	RuleNextPlay
	RulePlayable
	RuleDiscardable
	RuleHintPlayable
	RuleRankOne
	RuleGamble
	RuleChop
)

// NumRules is the number of rules including RuleNone.
const NumRules = int(RuleChop) + 1

func (r Rule) String() string {
	switch r {
	case RuleWarn:
		return "warn"
	case RuleNextPlay:
		return "next-play"
	case RulePlayable:
		return "playable"
	case RuleDiscardable:
		return "discardable"
	case RuleHintPlayable:
		return "hint-playable"
	case RuleRankOne:
		return "rank-one"
	case RuleGamble:
		return "gamble"
	case RuleChop:
		return "chop"
	default:
		return "none"
	}
}
