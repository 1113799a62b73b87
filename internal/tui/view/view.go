package view

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/tui/keymap"
	"github.com/Iron-Ham/larek/internal/tui/styles"
)

// Card width bounds, in terminal cells.
const (
	MinCardWidth     = 20
	MaxCardWidth     = 60
	DefaultCardWidth = 30
)

// DefaultCurrency is the unit prices are shown in when tui.currency is unset.
const DefaultCurrency = "synapses"

// Priceless is shown instead of a price for products that cannot be bought.
const Priceless = "Priceless"

// Emitter receives the intent events a view publishes.
type Emitter interface {
	Publish(event.Event)
}

// Component is a view that can be hosted by the Modal.
type Component interface {
	// View renders the component from its last props.
	View() string
	// Mode selects the key bindings that apply while the component has focus.
	Mode() keymap.Mode
	// HandleKey reacts to a key press. Returned commands are run by the
	// bubbletea program.
	HandleKey(msg tea.KeyMsg) tea.Cmd
}

var keys = keymap.DefaultKeymap()

// Keys returns the keymap the views resolve key presses with.
func Keys() *keymap.Keymap {
	return keys
}

func currency() string {
	if c := strings.TrimSpace(viper.GetString("tui.currency")); c != "" {
		return c
	}
	return DefaultCurrency
}

// FormatAmount renders an amount with the configured currency, e.g. "1950 synapses".
func FormatAmount(d decimal.Decimal) string {
	return d.String() + " " + currency()
}

// FormatPrice renders a product price, or Priceless when it has none.
func FormatPrice(p model.Price) string {
	if !p.Valid {
		return Priceless
	}
	return FormatAmount(p.Amount())
}

// ClampCardWidth bounds a configured card width. Zero means the default.
func ClampCardWidth(w int) int {
	switch {
	case w == 0:
		return DefaultCardWidth
	case w < MinCardWidth:
		return MinCardWidth
	case w > MaxCardWidth:
		return MaxCardWidth
	default:
		return w
	}
}

// keyHint renders the first key bound to cmd in mode, or "" when none is.
func keyHint(cmd keymap.Command, mode keymap.Mode) string {
	bindings := keys.GetBindingsForCommand(cmd, mode)
	if len(bindings) == 0 {
		return ""
	}
	return styles.HelpKey.Render("[" + bindings[0].String() + "]")
}

// HelpBar renders the help line for a mode.
func HelpBar(mode keymap.Mode) string {
	var parts []string
	for _, b := range keys.HelpBindings(mode) {
		parts = append(parts, styles.HelpKey.Render("["+b.String()+"]")+" "+b.Description)
	}
	return styles.HelpBar.Render(strings.Join(parts, "  "))
}

// button renders a button label in its enabled, active or disabled style.
func button(label string, enabled, active bool) string {
	switch {
	case !enabled:
		return styles.ButtonDisabled.Render(label)
	case active:
		return styles.ButtonActive.Render(label)
	default:
		return styles.Button.Render(label)
	}
}
