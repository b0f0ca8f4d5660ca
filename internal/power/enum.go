package power

// Type is the usage category of a power.
type Type int

const (
	TypeUnknown Type = iota
	TypeAtWill
	TypeEncounter
	TypeDaily
)

// ParseType resolves a YAML type value.
//
// Postcondition: returns TypeUnknown and false when s is not a known type.
func ParseType(s string) (Type, bool) {
	switch s {
	case "at-will":
		return TypeAtWill, true
	case "encounter":
		return TypeEncounter, true
	case "daily":
		return TypeDaily, true
	default:
		return TypeUnknown, false
	}
}

// Token returns the roll template flag for t, e.g. "atwill".
// TypeUnknown has no token and returns "".
func (t Type) Token() string {
	switch t {
	case TypeAtWill:
		return "atwill"
	case TypeEncounter:
		return "encounter"
	case TypeDaily:
		return "daily"
	default:
		return ""
	}
}

// String returns the YAML spelling of t.
func (t Type) String() string {
	switch t {
	case TypeAtWill:
		return "at-will"
	case TypeEncounter:
		return "encounter"
	case TypeDaily:
		return "daily"
	default:
		return "unknown"
	}
}

// Action is the action timing of a power.
type Action int

const (
	ActionUnknown Action = iota
	ActionFree
	ActionMinor
	ActionStandard
	ActionMove
	ActionImmInterrupt
	ActionImmReaction
)

// ParseAction resolves a YAML action value.
//
// Postcondition: returns ActionUnknown and false when s is not a known action.
func ParseAction(s string) (Action, bool) {
	switch s {
	case "free":
		return ActionFree, true
	case "minor":
		return ActionMinor, true
	case "standard":
		return ActionStandard, true
	case "move":
		return ActionMove, true
	case "imm-interrupt":
		return ActionImmInterrupt, true
	case "imm-reaction":
		return ActionImmReaction, true
	default:
		return ActionUnknown, false
	}
}

// Label returns the display label for a, e.g. "Imm Interrupt".
// ActionUnknown returns "".
func (a Action) Label() string {
	switch a {
	case ActionFree:
		return "Free"
	case ActionMinor:
		return "Minor"
	case ActionStandard:
		return "Standard"
	case ActionMove:
		return "Move"
	case ActionImmInterrupt:
		return "Imm Interrupt"
	case ActionImmReaction:
		return "Imm Reaction"
	default:
		return ""
	}
}

// String returns the YAML spelling of a.
func (a Action) String() string {
	switch a {
	case ActionFree:
		return "free"
	case ActionMinor:
		return "minor"
	case ActionStandard:
		return "standard"
	case ActionMove:
		return "move"
	case ActionImmInterrupt:
		return "imm-interrupt"
	case ActionImmReaction:
		return "imm-reaction"
	default:
		return "unknown"
	}
}
