package view

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/tui/keymap"
	"github.com/Iron-Ham/larek/internal/tui/styles"
)

// fieldSpec describes one text input of a form.
type fieldSpec struct {
	field       model.OrderField
	label       string
	placeholder string
}

type formInput struct {
	field model.OrderField
	label string
	input textinput.Model
}

// form is the shared part of the checkout forms: text inputs that publish
// "<form>.<field>:change" on every edit, an error line and a submit button
// that only works while the form is valid.
//
// Focus runs over lead non-input rows first, then over the inputs.
type form struct {
	events      Emitter
	name        string
	submitEvent string
	title       string
	submitLabel string

	inputs []formInput
	lead   int
	focus  int

	valid  bool
	errors string
}

func newForm(events Emitter, name, submitEvent, title, submitLabel string, lead int, specs []fieldSpec) form {
	f := form{
		events:      events,
		name:        name,
		submitEvent: submitEvent,
		title:       title,
		submitLabel: submitLabel,
		lead:        lead,
	}
	for _, s := range specs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = s.placeholder
		ti.CharLimit = 128
		ti.Width = 40
		f.inputs = append(f.inputs, formInput{field: s.field, label: s.label, input: ti})
	}
	f.setFocus(0)
	return f
}

// SetValid enables or disables the submit button.
func (f *form) SetValid(valid bool) {
	f.valid = valid
}

// Valid reports whether the submit button is enabled.
func (f *form) Valid() bool {
	return f.valid
}

// SetErrors sets the error line.
func (f *form) SetErrors(errors string) {
	f.errors = errors
}

// Errors returns the error line.
func (f *form) Errors() string {
	return f.errors
}

// Value returns the current text of a field's input.
func (f *form) Value(field model.OrderField) string {
	for _, in := range f.inputs {
		if in.field == field {
			return in.input.Value()
		}
	}
	return ""
}

// FocusedField returns the field whose input has focus, if any.
func (f *form) FocusedField() (model.OrderField, bool) {
	if f.focus < f.lead {
		return "", false
	}
	return f.inputs[f.focus-f.lead].field, true
}

// Mode implements Component.
func (f *form) Mode() keymap.Mode {
	return keymap.ModeForm
}

func (f *form) setValue(field model.OrderField, value string) {
	for i := range f.inputs {
		if f.inputs[i].field == field {
			f.inputs[i].input.SetValue(value)
		}
	}
}

func (f *form) setFocus(i int) {
	total := f.lead + len(f.inputs)
	if total == 0 {
		return
	}
	f.focus = (i + total) % total
	for j := range f.inputs {
		if j == f.focus-f.lead {
			f.inputs[j].input.Focus()
		} else {
			f.inputs[j].input.Blur()
		}
	}
}

// handleKey runs the shared form bindings. onLead receives the commands
// pressed while a lead row has focus.
func (f *form) handleKey(msg tea.KeyMsg, onLead func(keymap.Command)) tea.Cmd {
	if cmd, ok := keys.GetBinding(msg, keymap.ModeForm); ok {
		switch cmd {
		case keymap.CmdNextField:
			f.setFocus(f.focus + 1)
			return nil
		case keymap.CmdPrevField:
			f.setFocus(f.focus - 1)
			return nil
		case keymap.CmdSubmit:
			if f.valid {
				f.events.Publish(event.NewSignal(f.submitEvent))
			}
			return nil
		case keymap.CmdPayCard, keymap.CmdPayCash:
			if f.focus < f.lead {
				if onLead != nil {
					onLead(cmd)
				}
				return nil
			}
			// Arrows move the cursor inside an input.
		}
	}

	if f.focus < f.lead {
		return nil
	}

	in := &f.inputs[f.focus-f.lead]
	before := in.input.Value()
	var cmd tea.Cmd
	in.input, cmd = in.input.Update(msg)
	if after := in.input.Value(); after != before {
		f.events.Publish(event.NewFieldChangeEvent(f.name, in.field, after))
	}
	return cmd
}

func (f *form) renderInputs() []string {
	var lines []string
	for i, in := range f.inputs {
		label := styles.InputLabel.Render(in.label)
		if i == f.focus-f.lead {
			label = styles.InputFocused.Render(in.label)
		}
		lines = append(lines, label, in.input.View(), "")
	}
	return lines
}

func (f *form) renderFooter() string {
	errLine := ""
	if f.errors != "" {
		errLine = styles.ErrorMsg.Render(f.errors)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		errLine,
		button(f.submitLabel, f.valid, f.valid),
	)
}
