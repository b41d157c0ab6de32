package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field is either free text (choices == nil) or a fixed set of options
// cycled with left/right.
type field struct {
	label   string
	input   textinput.Model
	choices []string
	choice  int
}

func textField(label, value, placeholder string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 30
	ti.SetValue(value)
	return field{label: label, input: ti}
}

func choiceField(label string, choices []string, selected string) field {
	f := field{label: label, choices: choices}
	for i, c := range choices {
		if c == selected {
			f.choice = i
		}
	}
	return f
}

func (f field) value() string {
	if f.choices != nil {
		return f.choices[f.choice]
	}
	return strings.TrimSpace(f.input.Value())
}

type form struct {
	title  string
	fields []field
	focus  int
}

func newForm(title string, fields ...field) *form {
	f := &form{title: title, fields: fields}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) {
	if i < 0 || i >= len(f.fields) {
		return
	}
	if f.fields[f.focus].choices == nil {
		f.fields[f.focus].input.Blur()
	}
	f.focus = i
	if f.fields[i].choices == nil {
		f.fields[i].input.Focus()
	}
}

func (f *form) value(i int) string { return f.fields[i].value() }

// Update handles a key press. It reports true when the form was submitted
// with enter on its last field.
func (f *form) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	cur := &f.fields[f.focus]

	switch msg.Type {
	case tea.KeyEnter:
		if f.focus == len(f.fields)-1 {
			return true, nil
		}
		f.setFocus(f.focus + 1)
		return false, nil
	case tea.KeyTab, tea.KeyDown:
		f.setFocus((f.focus + 1) % len(f.fields))
		return false, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.setFocus((f.focus + len(f.fields) - 1) % len(f.fields))
		return false, nil
	}

	if cur.choices != nil {
		switch msg.Type {
		case tea.KeyLeft:
			cur.choice = (cur.choice + len(cur.choices) - 1) % len(cur.choices)
		case tea.KeyRight, tea.KeySpace:
			cur.choice = (cur.choice + 1) % len(cur.choices)
		}
		return false, nil
	}

	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(msg)
	return false, cmd
}

func (f *form) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title) + "\n\n")
	for i, fld := range f.fields {
		label := labelStyle.Render(fld.label)
		if i == f.focus {
			label = focusStyle.Render("> " + fld.label)
		}
		b.WriteString(label + "\n")
		if fld.choices != nil {
			b.WriteString("  ◀ " + fld.value() + " ▶\n\n")
		} else {
			b.WriteString("  " + fld.input.View() + "\n\n")
		}
	}
	return b.String()
}
