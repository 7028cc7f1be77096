package ui

import "github.com/iburimskiy/circle-numbers/internal/circle"

// Key names shared by the window and terminal front ends.
const (
	KeyLeft   = "left"
	KeyRight  = "right"
	KeyEscape = "esc"
	KeyQuit   = "q"
	KeyRandom = "r"
	KeyCopy   = "c"
	KeySave   = "s"
)

// KeyAction maps a key name to the action it triggers in mode.
func KeyAction(key string, mode circle.Mode) (Action, bool) {
	switch key {
	case KeyLeft:
		if mode == circle.ModeParameterBar {
			return Action{}, false
		}
		return Action{Kind: KindRetreat}, true
	case KeyRight:
		return Action{Kind: KindAdvance}, true
	case KeyEscape:
		if mode == circle.ModeParameterBar {
			return Action{}, false
		}
		return Action{Kind: KindShowParameters}, true
	case KeyQuit:
		return Action{Kind: KindQuit}, true
	case KeyRandom:
		if mode != circle.ModeParameterBar {
			return Action{}, false
		}
		return Action{Kind: KindRandomize}, true
	case KeyCopy:
		return Action{Kind: KindCopy}, true
	case KeySave:
		return Action{Kind: KindSave}, true
	}
	return Action{}, false
}
