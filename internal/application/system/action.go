package system

import (
	"fmt"
	"sort"
	"strings"
)

// Action is a logical input bound to one or more keys.
type Action uint32

const (
	ActionSubmit Action = 1 << iota
	ActionToggleEdit
	ActionReplay
	ActionNewPassword
	ActionToggleNumbers
	ActionCopySeed
	ActionSaveRecording
	ActionTogglePause
	ActionNextParticipant
	ActionToggleTotals
	ActionToggleDetail
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
)

var actionNames = map[string]Action{
	"submit":           ActionSubmit,
	"toggle_edit":      ActionToggleEdit,
	"replay":           ActionReplay,
	"new_password":     ActionNewPassword,
	"toggle_numbers":   ActionToggleNumbers,
	"copy_seed":        ActionCopySeed,
	"save_recording":   ActionSaveRecording,
	"toggle_pause":     ActionTogglePause,
	"next_participant": ActionNextParticipant,
	"toggle_totals":    ActionToggleTotals,
	"toggle_detail":    ActionToggleDetail,
	"up":               ActionUp,
	"down":             ActionDown,
	"left":             ActionLeft,
	"right":            ActionRight,
	"restart":          ActionRestart,
}

// ParseAction resolves a config name such as "submit" or "next_participant".
func ParseAction(name string) (Action, error) {
	a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// String returns the config name of the action
func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return fmt.Sprintf("action(%d)", uint32(a))
}

// ActionSet is a bitmask of actions.
type ActionSet uint32

// Has reports whether a is in the set
func (s ActionSet) Has(a Action) bool {
	return s&ActionSet(a) != 0
}

// With returns the set with a added
func (s ActionSet) With(a Action) ActionSet {
	return s | ActionSet(a)
}

// Names lists the actions in the set, sorted, for logs.
func (s ActionSet) Names() []string {
	var out []string
	for name, a := range actionNames {
		if s.Has(a) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
