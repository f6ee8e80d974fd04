package game

import "github.com/memmaker/skirmish/engine/grid"

type InputKind int

const (
	InputNone InputKind = iota
	InputConfirm
	InputCancel
	InputDirection
	InputNextTarget
	InputPrevTarget
	InputInspect
	InputOpenMenu
)

// InputEvent is one discrete player input. Direction is only set for
// InputDirection events.
type InputEvent struct {
	Kind      InputKind
	Direction grid.Int2
}

// GameState is the per-state input handler. The controller owns a stack
// of these and forwards every event to the top one.
type GameState interface {
	Init(wasPopped bool)
	OnConfirm()
	OnCancel()
	OnDirectionKeys(direction grid.Int2)
	OnNextTarget()
	OnPrevTarget()
	OnInspect()
	OnOpenMenu()
}

// SocialMove is one of the adjacency-based interactions that have their
// own targeting sub-states.
type SocialMove int

const (
	SocialRescue SocialMove = iota
	SocialDrop
	SocialShove
	SocialTake
)

func (s SocialMove) ToString() string {
	switch s {
	case SocialRescue:
		return "Rescue"
	case SocialDrop:
		return "Drop"
	case SocialShove:
		return "Shove"
	case SocialTake:
		return "Take"
	default:
		return "Unknown"
	}
}
