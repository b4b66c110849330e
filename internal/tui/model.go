// Package tui provides the Bubble Tea interface over the store.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/skillshare/internal/model"
	"github.com/verte-zerg/skillshare/internal/store"
)

type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenHome
	screenForm
	screenList
	screenRequests
	screenQuiz
)

// Model implements the Bubble Tea UI. All store operations run inside
// Update; errors surface on the status line, nothing is fatal.
type Model struct {
	store *store.Store
	user  *model.Person

	screen screen
	width  int
	height int
	status string

	menu   []menuItem
	cursor int

	form     form
	list     listView
	requests requestsView
	quiz     quizRun
	builder  quizBuilder
}

type menuItem struct {
	label  string
	action func(m *Model)
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs the UI over a loaded store.
func NewModel(st *store.Store) *Model {
	m := &Model{store: st}
	m.gotoLogin("")
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenLogin, screenRegister, screenForm:
			return m.updateForm(msg)
		case screenHome:
			return m.updateHome(msg)
		case screenList:
			return m.updateList(msg)
		case screenRequests:
			return m.updateRequests(msg)
		case screenQuiz:
			return m.updateQuiz(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenLogin, screenRegister, screenForm:
		body = m.viewForm()
	case screenHome:
		body = m.viewHome()
	case screenList:
		body = m.viewList()
	case screenRequests:
		body = m.viewRequests()
	case screenQuiz:
		body = m.viewQuiz()
	}
	if m.status != "" {
		body += "\n\n" + m.status
	}
	return body + "\n"
}

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.menu)-1 {
			m.cursor++
		}
	case "enter":
		m.status = ""
		m.menu[m.cursor].action(m)
	}
	return m, nil
}

func (m *Model) viewHome() string {
	title := fmt.Sprintf("Skillshare — %s (%s)", m.user.Name, m.user.ID)
	body := titleStyle.Render(title) + "\n\n"
	for i, item := range m.menu {
		line := "  " + item.label
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.label)
		}
		body += line + "\n"
	}
	body += "\n" + labelStyle.Render("up/down move · enter select · ctrl+c quit")
	return body
}

func (m *Model) gotoLogin(status string) {
	m.user = nil
	m.screen = screenLogin
	m.status = status
	m.form = m.loginForm()
}

func (m *Model) gotoRegister() {
	m.screen = screenRegister
	m.status = ""
	m.form = m.registerForm()
}

func (m *Model) gotoHome(status string) {
	m.screen = screenHome
	m.status = status
	m.cursor = 0
	if m.user.IsSeeker() {
		m.menu = m.seekerMenu()
	} else {
		m.menu = m.providerMenu()
	}
}

func (m *Model) setError(err error) {
	m.status = errorStyle.Render(err.Error())
}

func (m *Model) setInfo(msg string) {
	m.status = statusStyle.Render(msg)
}
