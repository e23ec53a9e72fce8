package dial

import "github.com/grindlemire/go-dial/internal/debug"

// Action identifies an operation in the protocol between the engine and
// an input-routing service. The service addresses a Region or the Sink
// and delivers an action with a Bundle of arguments; the engine answers
// with whether focus moved.
type Action int

const (
	// ActionFocus asks a region to take focus, optionally recording the
	// travel direction into history. Sent to the sink it parks focus
	// directly, bypassing restoration.
	ActionFocus Action = iota
	// ActionNudgeShortcut asks a region to jump to its shortcut target.
	ActionNudgeShortcut
	// ActionNudgeToRegion asks a region to move focus to an adjacent
	// region in the supplied direction.
	ActionNudgeToRegion
	// ActionRestoreDefaultFocus asks the sink to restore focus to the
	// best available target.
	ActionRestoreDefaultFocus
)

// String returns the action name for debug logging.
func (a Action) String() string {
	switch a {
	case ActionFocus:
		return "focus"
	case ActionNudgeShortcut:
		return "nudge-shortcut"
	case ActionNudgeToRegion:
		return "nudge-to-region"
	case ActionRestoreDefaultFocus:
		return "restore-default-focus"
	}
	return "unknown"
}

// Bundle is the generic argument bag carried alongside an action.
type Bundle map[string]any

// ArgDirection is the Bundle key holding a Direction argument.
const ArgDirection = "direction"

// DirectionBundle builds a Bundle carrying the given direction.
func DirectionBundle(dir Direction) Bundle {
	return Bundle{ArgDirection: dir}
}

// DirectionArg extracts the Direction argument from a bundle.
// The second return is false when the bundle has no direction.
func DirectionArg(args Bundle) (Direction, bool) {
	dir, ok := args[ArgDirection].(Direction)
	return dir, ok
}

// PerformAction routes a protocol action to this region. The direction
// argument is optional for ActionFocus and required for the nudge
// actions; a nudge without a direction fails. Unknown actions fail.
func (r *Region) PerformAction(action Action, args Bundle) bool {
	debug.Log("Region.PerformAction: id=%q action=%v", r.id, action)
	switch action {
	case ActionFocus:
		dir, _ := DirectionArg(args)
		return r.Focus(dir)
	case ActionNudgeShortcut:
		dir, ok := DirectionArg(args)
		return ok && r.NudgeShortcut(dir)
	case ActionNudgeToRegion:
		dir, ok := DirectionArg(args)
		return ok && r.NudgeToRegion(dir)
	}
	return false
}

// PerformAction routes a protocol action to the sink. Unknown actions
// fail.
func (s *Sink) PerformAction(action Action, args Bundle) bool {
	debug.Log("Sink.PerformAction: action=%v", action)
	switch action {
	case ActionRestoreDefaultFocus:
		return s.RestoreFocus(false)
	case ActionFocus:
		return s.Park()
	}
	return false
}
