package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a titled stack of text inputs. Enter on the last input submits;
// esc abandons the form via cancel.
type form struct {
	title  string
	inputs []textinput.Model
	focus  int
	submit func(values []string) error
	cancel func(m *Model)
}

type field struct {
	label       string
	placeholder string
	secret      bool
}

func newForm(title string, fields []field, submit func(values []string) error, cancel func(m *Model)) form {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = f.label + ": "
		ti.Placeholder = f.placeholder
		ti.CharLimit = 128
		if f.secret {
			ti.EchoMode = textinput.EchoPassword
		}
		inputs[i] = ti
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return form{title: title, inputs: inputs, submit: submit, cancel: cancel}
}

func (f *form) values() []string {
	values := make([]string, len(f.inputs))
	for i := range f.inputs {
		values[i] = f.inputs[i].Value()
	}
	return values
}

func (f *form) setFocus(index int) {
	for i := range f.inputs {
		if i == index {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	f.focus = index
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(0)
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+r":
		if m.screen == screenLogin {
			m.gotoRegister()
		}
		return m, nil
	case "esc":
		if m.form.cancel != nil {
			m.form.cancel(m)
		}
		return m, nil
	case "tab", "down":
		m.form.setFocus((m.form.focus + 1) % len(m.form.inputs))
		return m, nil
	case "shift+tab", "up":
		m.form.setFocus((m.form.focus - 1 + len(m.form.inputs)) % len(m.form.inputs))
		return m, nil
	case "enter":
		if m.form.focus < len(m.form.inputs)-1 {
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		}
		if err := m.form.submit(m.form.values()); err != nil {
			m.setError(err)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *Model) viewForm() string {
	body := titleStyle.Render(m.form.title) + "\n\n"
	for i := range m.form.inputs {
		body += m.form.inputs[i].View() + "\n"
	}
	hint := "enter next/submit · tab move · esc back"
	if m.screen == screenLogin {
		hint = "enter next/submit · tab move · ctrl+r register"
	}
	body += "\n" + labelStyle.Render(hint)
	return body
}
