package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyBindingMatches(t *testing.T) {
	tests := []struct {
		name     string
		binding  KeyBinding
		msg      tea.KeyMsg
		expected bool
	}{
		{
			name: "simple rune match",
			binding: KeyBinding{
				KeyType: tea.KeyRunes,
				Rune:    'j',
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'j'},
			},
			expected: true,
		},
		{
			name: "simple rune mismatch",
			binding: KeyBinding{
				KeyType: tea.KeyRunes,
				Rune:    'j',
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'k'},
			},
			expected: false,
		},
		{
			name: "special key match",
			binding: KeyBinding{
				KeyType: tea.KeyEnter,
			},
			msg: tea.KeyMsg{
				Type: tea.KeyEnter,
			},
			expected: true,
		},
		{
			name: "special key mismatch",
			binding: KeyBinding{
				KeyType: tea.KeyEnter,
			},
			msg: tea.KeyMsg{
				Type: tea.KeyEsc,
			},
			expected: false,
		},
		{
			name: "alt modifier match",
			binding: KeyBinding{
				KeyType:   tea.KeyRunes,
				Rune:      'x',
				Modifiers: ModAlt,
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'x'},
				Alt:   true,
			},
			expected: true,
		},
		{
			name: "alt modifier mismatch - binding wants alt",
			binding: KeyBinding{
				KeyType:   tea.KeyRunes,
				Rune:      'x',
				Modifiers: ModAlt,
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'x'},
				Alt:   false,
			},
			expected: false,
		},
		{
			name: "alt modifier mismatch - binding doesn't want alt",
			binding: KeyBinding{
				KeyType: tea.KeyRunes,
				Rune:    'x',
			},
			msg: tea.KeyMsg{
				Type:  tea.KeyRunes,
				Runes: []rune{'x'},
				Alt:   true,
			},
			expected: false,
		},
		{
			name: "ctrl key type",
			binding: KeyBinding{
				KeyType: tea.KeyCtrlR,
			},
			msg: tea.KeyMsg{
				Type: tea.KeyCtrlR,
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.binding.Matches(tt.msg)
			if result != tt.expected {
				t.Errorf("KeyBinding.Matches() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestKeymapGetBinding(t *testing.T) {
	km := DefaultKeymap()

	msg := tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune{'j'},
	}
	cmd, found := km.GetBinding(msg, ModeGallery)
	if !found {
		t.Error("Expected to find binding for 'j' in gallery mode")
	}
	if cmd != CmdDown {
		t.Errorf("Expected CmdDown, got %s", cmd)
	}

	// Runes are never bound in form mode so they reach the inputs
	if cmd, found = km.GetBinding(msg, ModeForm); found {
		t.Errorf("Expected no binding for 'j' in form mode, got %s", cmd)
	}

	// Unknown mode has no bindings
	if _, found = km.GetBinding(msg, Mode("nope")); found {
		t.Error("Expected no binding in unknown mode")
	}
}

func TestFormModeBindsNoRunes(t *testing.T) {
	for _, b := range DefaultKeymap().GetModeBindings(ModeForm) {
		if b.KeyType == tea.KeyRunes {
			t.Errorf("form mode binds rune %q to %s", b.Rune, b.Command)
		}
	}
}

func TestModifiersString(t *testing.T) {
	tests := []struct {
		mods     Modifier
		expected string
	}{
		{ModNone, ""},
		{ModCtrl, "ctrl+"},
		{ModAlt, "alt+"},
		{ModShift, "shift+"},
		{ModCtrl | ModAlt, "ctrl+alt+"},
		{ModCtrl | ModShift, "ctrl+shift+"},
		{ModAlt | ModShift, "alt+shift+"},
		{ModCtrl | ModAlt | ModShift, "ctrl+alt+shift+"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.mods.String()
			if result != tt.expected {
				t.Errorf("Modifier.String() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestKeyBindingString(t *testing.T) {
	tests := []struct {
		binding  KeyBinding
		expected string
	}{
		{
			binding:  KeyBinding{KeyType: tea.KeyEnter},
			expected: "enter",
		},
		{
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'j'},
			expected: "j",
		},
		{
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: ' '},
			expected: "space",
		},
		{
			binding:  KeyBinding{KeyType: tea.KeyRunes, Rune: 'x', Modifiers: ModAlt},
			expected: "alt+x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.binding.String()
			if result != tt.expected {
				t.Errorf("KeyBinding.String() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestGetBindingsForCommand(t *testing.T) {
	km := DefaultKeymap()

	// CmdDelete has several bindings in basket mode
	bindings := km.GetBindingsForCommand(CmdDelete, ModeBasket)
	if len(bindings) < 2 {
		t.Errorf("Expected at least 2 bindings for CmdDelete, got %d", len(bindings))
	}

	hasD := false
	hasDelete := false
	for _, b := range bindings {
		if b.KeyType == tea.KeyRunes && b.Rune == 'd' {
			hasD = true
		}
		if b.KeyType == tea.KeyDelete {
			hasDelete = true
		}
	}
	if !hasD {
		t.Error("Expected 'd' binding for CmdDelete")
	}
	if !hasDelete {
		t.Error("Expected delete key binding for CmdDelete")
	}

	if got := km.GetBindingsForCommand(CmdDelete, Mode("nope")); got != nil {
		t.Errorf("Expected nil for unknown mode, got %v", got)
	}
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeymap()

	help := km.HelpBindings(ModeGallery)
	if len(help) == 0 {
		t.Fatal("Expected help bindings in gallery mode")
	}
	for _, b := range help {
		if !b.Help {
			t.Errorf("HelpBindings returned a non-help binding: %v", b)
		}
	}
	if len(help) >= len(km.GetModeBindings(ModeGallery)) {
		t.Error("Expected aliases to be left out of the help bar")
	}
}

func TestDefaultKeymapCompleteness(t *testing.T) {
	km := DefaultKeymap()

	expectedModes := []Mode{
		ModeGallery,
		ModeFilter,
		ModePreview,
		ModeBasket,
		ModeForm,
		ModeSuccess,
	}

	for _, mode := range expectedModes {
		if _, ok := km.Modes[mode]; !ok {
			t.Errorf("Default keymap missing mode: %s", mode)
		}

		// Every mode must let the user quit
		ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}
		if cmd, ok := km.GetBinding(ctrlC, mode); !ok || cmd != CmdQuit {
			t.Errorf("mode %s: ctrl+c = %q, want %q", mode, cmd, CmdQuit)
		}
	}

	// Modal modes must be closable with esc
	for _, mode := range []Mode{ModePreview, ModeBasket, ModeForm, ModeSuccess} {
		if cmd, ok := km.GetBinding(tea.KeyMsg{Type: tea.KeyEsc}, mode); !ok || cmd != CmdClose {
			t.Errorf("mode %s: esc = %q, want %q", mode, cmd, CmdClose)
		}
	}
}
