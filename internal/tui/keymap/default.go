package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default storefront key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default larek key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeGallery: defaultGalleryBindings(),
			ModeFilter:  defaultFilterBindings(),
			ModePreview: defaultPreviewBindings(),
			ModeBasket:  defaultBasketBindings(),
			ModeForm:    defaultFormBindings(),
			ModeSuccess: defaultSuccessBindings(),
		},
	}
}

func defaultGalleryBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeGallery,
		Bindings: []KeyBinding{
			// Grid navigation
			{KeyType: tea.KeyLeft, Command: CmdLeft, Description: "Previous product"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdLeft, Description: "Previous product"},
			{KeyType: tea.KeyRight, Command: CmdRight, Description: "Next product"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdRight, Description: "Next product"},
			{KeyType: tea.KeyUp, Command: CmdUp, Description: "Row up"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdUp, Description: "Row up"},
			{KeyType: tea.KeyDown, Command: CmdDown, Description: "Row down"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdDown, Description: "Row down"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdFirst, Description: "First product"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdLast, Description: "Last product"},

			// Shop actions
			{KeyType: tea.KeyEnter, Command: CmdSelect, Description: "open", Help: true},
			{KeyType: tea.KeyRunes, Rune: 'b', Command: CmdOpenBasket, Description: "basket", Help: true},
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdCheckout, Description: "checkout", Help: true},
			{KeyType: tea.KeyRunes, Rune: '/', Command: CmdEnterFilter, Description: "filter", Help: true},
			{KeyType: tea.KeyEsc, Command: CmdClearFilter, Description: "Clear filter"},

			// Exit
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "quit", Help: true},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit"},
		},
	}
}

func defaultFilterBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeFilter,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdApplyFilter, Description: "apply", Help: true},
			{KeyType: tea.KeyEsc, Command: CmdCancelFilter, Description: "cancel", Help: true},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit"},
		},
	}
}

func defaultPreviewBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModePreview,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdToggleCart, Description: "buy / remove", Help: true},
			{KeyType: tea.KeySpace, Command: CmdToggleCart, Description: "Buy / remove"},
			{KeyType: tea.KeyEsc, Command: CmdClose, Description: "close", Help: true},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdClose, Description: "Close"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit"},
		},
	}
}

func defaultBasketBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeBasket,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyUp, Command: CmdUp, Description: "Previous row"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdUp, Description: "Previous row"},
			{KeyType: tea.KeyDown, Command: CmdDown, Description: "Next row"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdDown, Description: "Next row"},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdDelete, Description: "remove", Help: true},
			{KeyType: tea.KeyDelete, Command: CmdDelete, Description: "Remove"},
			{KeyType: tea.KeyBackspace, Command: CmdDelete, Description: "Remove"},
			{KeyType: tea.KeyEnter, Command: CmdSubmit, Description: "checkout", Help: true},
			{KeyType: tea.KeyEsc, Command: CmdClose, Description: "close", Help: true},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdClose, Description: "Close"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit"},
		},
	}
}

// Form bindings only use special keys so that every rune reaches the inputs.
func defaultFormBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeForm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyTab, Command: CmdNextField, Description: "next field", Help: true},
			{KeyType: tea.KeyDown, Command: CmdNextField, Description: "Next field"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevField, Description: "Previous field"},
			{KeyType: tea.KeyUp, Command: CmdPrevField, Description: "Previous field"},
			{KeyType: tea.KeyLeft, Command: CmdPayCard, Description: "Card"},
			{KeyType: tea.KeyRight, Command: CmdPayCash, Description: "Cash"},
			{KeyType: tea.KeyEnter, Command: CmdSubmit, Description: "next", Help: true},
			{KeyType: tea.KeyEsc, Command: CmdClose, Description: "close", Help: true},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit"},
		},
	}
}

func defaultSuccessBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeSuccess,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdSubmit, Description: "new purchases", Help: true},
			{KeyType: tea.KeyEsc, Command: CmdClose, Description: "close", Help: true},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit"},
		},
	}
}
