package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/larek/internal/event"
	"github.com/Iron-Ham/larek/internal/model"
	"github.com/Iron-Ham/larek/internal/tui/styles"
)

// ContactsProps is what a ContactsForm renders.
type ContactsProps struct {
	Email  string
	Phone  string
	Valid  bool
	Errors string
}

// ContactsForm is the contacts step: email and phone.
type ContactsForm struct {
	form
}

// NewContactsForm creates the contacts form.
func NewContactsForm(events Emitter) *ContactsForm {
	return &ContactsForm{
		form: newForm(events, event.FormContacts, event.ContactsSubmit, "Contacts", "Pay", 0, []fieldSpec{
			{field: model.FieldEmail, label: "Email", placeholder: "you@example.com"},
			{field: model.FieldPhone, label: "Phone", placeholder: "+7XXXXXXXXXX"},
		}),
	}
}

// Render repaints the form from props and focuses the first input.
func (f *ContactsForm) Render(props ContactsProps) string {
	f.setValue(model.FieldEmail, props.Email)
	f.setValue(model.FieldPhone, props.Phone)
	f.valid = props.Valid
	f.errors = props.Errors
	f.setFocus(0)
	return f.View()
}

// HandleKey implements Component.
func (f *ContactsForm) HandleKey(msg tea.KeyMsg) tea.Cmd {
	return f.handleKey(msg, nil)
}

// View renders the form.
func (f *ContactsForm) View() string {
	lines := []string{styles.Title.Render(f.title)}
	lines = append(lines, f.renderInputs()...)
	lines = append(lines, f.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
