// Package keymap provides key binding definitions and lookup for the TUI.
// Each view resolves key presses to commands through a mode-aware keymap
// instead of switching on raw key strings.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents which part of the storefront has keyboard focus.
// Different modes have different key bindings active.
type Mode string

const (
	ModeGallery Mode = "gallery" // Browsing the product grid
	ModeFilter  Mode = "filter"  // Typing a title filter (after /)
	ModePreview Mode = "preview" // Product preview in the modal
	ModeBasket  Mode = "basket"  // Basket in the modal
	ModeForm    Mode = "form"    // Checkout form in the modal
	ModeSuccess Mode = "success" // Order confirmation in the modal
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Navigation commands
const (
	CmdLeft  Command = "left"
	CmdRight Command = "right"
	CmdUp    Command = "up"
	CmdDown  Command = "down"
	CmdFirst Command = "first"
	CmdLast  Command = "last"
)

// Gallery commands
const (
	CmdSelect      Command = "select"
	CmdOpenBasket  Command = "open_basket"
	CmdCheckout    Command = "checkout"
	CmdEnterFilter Command = "enter_filter"
	CmdClearFilter Command = "clear_filter"
	CmdQuit        Command = "quit"
)

// Filter commands
const (
	CmdApplyFilter  Command = "apply_filter"
	CmdCancelFilter Command = "cancel_filter"
)

// Modal commands
const (
	CmdClose      Command = "close"
	CmdToggleCart Command = "toggle_cart"
	CmdDelete     Command = "delete"
	CmdSubmit     Command = "submit"
	CmdNextField  Command = "next_field"
	CmdPrevField  Command = "prev_field"
	CmdPayCard    Command = "pay_card"
	CmdPayCash    Command = "pay_cash"
)

// Modifier represents keyboard modifiers (Ctrl, Alt, Shift).
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var s string
	if m&ModCtrl != 0 {
		s += "ctrl+"
	}
	if m&ModAlt != 0 {
		s += "alt+"
	}
	if m&ModShift != 0 {
		s += "shift+"
	}
	return s
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the primary key for this binding.
	// For rune keys, use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Help marks the binding for the help bar. Aliases leave it unset.
	Help bool
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	// For special keys (not runes), match the key type directly
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}

	// If Rune is 0, this is a catch-all binding for any rune
	if kb.Rune == 0 {
		return true
	}

	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap.
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// HelpBindings returns the bindings of a mode that belong in the help bar.
func (km *Keymap) HelpBindings(mode Mode) []KeyBinding {
	var result []KeyBinding
	for _, binding := range km.GetModeBindings(mode) {
		if binding.Help {
			result = append(result, binding)
		}
	}
	return result
}
