package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to menu actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionPageUp
	MenuActionPageDown
	MenuActionNextCategory
	MenuActionPrevCategory
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k": // vim-style k for up
		return MenuActionUp
	case "down", "j": // vim-style j for down
		return MenuActionDown
	case "pgup", "ctrl+u":
		return MenuActionPageUp
	case "pgdown", "ctrl+d":
		return MenuActionPageDown
	case "tab", "right", "l":
		return MenuActionNextCategory
	case "shift+tab", "left", "h":
		return MenuActionPrevCategory
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
