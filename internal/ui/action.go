package ui

import (
	"fmt"

	"github.com/iburimskiy/circle-numbers/internal/circle"
)

// Kind names what a control does when activated.
type Kind int

const (
	KindNone Kind = iota
	KindIncrement
	KindDecrement
	KindRandomize
	KindAdvance
	KindRetreat
	KindShowParameters
	KindCopy
	KindSave
	KindQuit
)

// Action is a single state mutation requested by a control or key.
type Action struct {
	Kind   Kind
	Field  circle.Field
	Amount int
}

func (a Action) String() string {
	switch a.Kind {
	case KindIncrement:
		return fmt.Sprintf("%s+%d", a.Field, a.Amount)
	case KindDecrement:
		return fmt.Sprintf("%s-%d", a.Field, a.Amount)
	case KindRandomize:
		return "randomize"
	case KindAdvance:
		return "advance"
	case KindRetreat:
		return "retreat"
	case KindShowParameters:
		return "show-parameters"
	case KindCopy:
		return "copy"
	case KindSave:
		return "save"
	case KindQuit:
		return "quit"
	default:
		return "none"
	}
}

// Apply performs a on s. It reports false for actions that are not
// session mutations (copy, save, quit), which the front end handles.
func Apply(s *circle.Session, a Action) bool {
	switch a.Kind {
	case KindIncrement:
		s.Increment(a.Field, a.Amount)
	case KindDecrement:
		s.Decrement(a.Field, a.Amount)
	case KindRandomize:
		if s.Mode() != circle.ModeParameterBar {
			return true
		}
		s.Randomize()
	case KindAdvance:
		s.Advance()
	case KindRetreat:
		s.Retreat()
	case KindShowParameters:
		if s.Mode() != circle.ModeParameterBar {
			s.ReturnToParameterBar()
		}
	default:
		return false
	}
	return true
}
