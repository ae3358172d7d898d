package moderation

import "fmt"

// Action is the enforcement outcome the engine recommends for a comment.
type Action string

const (
	ActionApprove Action = "approve"
	ActionFlag    Action = "flag"
	ActionHide    Action = "hide"
	ActionRemove  Action = "remove"
)

func (a Action) Valid() bool {
	switch a {
	case ActionApprove, ActionFlag, ActionHide, ActionRemove:
		return true
	}
	return false
}

func ParseAction(name string) (Action, error) {
	a := Action(name)
	if !a.Valid() {
		return "", fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}
