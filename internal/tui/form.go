package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is one labelled row of a form.
type formField struct {
	label string
	input textinput.Model
}

// form keeps a column of inputs and which of them has focus.
type form struct {
	fields []formField
	focus  int
}

func newInput(placeholder string, masked bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	if masked {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *form) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *form) trimmed(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) focusNext() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) focusPrev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.fields[0].input.Focus()
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

// view renders the fields as a two-column table followed by the submit
// button and the error line.
func (f *form) view(button string, submitting bool, errMsg string) string {
	labelWidth := len("Field")
	for _, field := range f.fields {
		if len(field.label) > labelWidth {
			labelWidth = len(field.label)
		}
	}

	var b strings.Builder
	b.WriteString(padRight("Field", labelWidth))
	b.WriteString(" │ Value\n")
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for _, field := range f.fields {
		b.WriteString(padRight(field.label, labelWidth))
		b.WriteString(" │ [")
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}

	b.WriteString("\n[")
	b.WriteString(button)
	if submitting {
		b.WriteString("...")
	}
	b.WriteString("]\n")

	if errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(errMsg)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
