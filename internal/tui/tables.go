package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/skillshare/internal/model"
)

type listView struct {
	title string
	table table.Model
}

type requestsView struct {
	table table.Model
	items []model.SessionRequest
}

func newTable(columns []table.Column, rows []table.Row) table.Model {
	height := len(rows) + 1
	if height > 12 {
		height = 12
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	s.Selected = s.Selected.Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	t.SetStyles(s)
	return t
}

func (m *Model) openSessionList() {
	sessions := m.store.Sessions()
	columns := []table.Column{
		{Title: "Code", Width: 9},
		{Title: "Skill", Width: 18},
		{Title: "Timing", Width: 14},
		{Title: "Instructor", Width: 12},
		{Title: "Min", Width: 4},
		{Title: "Enrolled", Width: 8},
		{Title: "Rating", Width: 6},
	}
	rows := make([]table.Row, 0, len(sessions))
	for _, s := range sessions {
		rating := "-"
		if s.RatingCount > 0 {
			rating = fmt.Sprintf("%.1f", s.AverageRating())
		}
		rows = append(rows, table.Row{
			s.SkillCode,
			s.SkillName,
			s.Timing,
			s.Instructor,
			fmt.Sprintf("%d", s.DurationMinutes),
			fmt.Sprintf("%d/%d", len(s.EnrolledUserIDs), model.MaxEnrollment),
			rating,
		})
	}
	m.list = listView{title: "Sessions", table: newTable(columns, rows)}
	m.screen = screenList
	m.status = ""
}

func (m *Model) openResultList() {
	results := m.store.ResultsForSeeker(m.user.ID)
	columns := []table.Column{
		{Title: "Skill", Width: 18},
		{Title: "Score", Width: 6},
	}
	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, table.Row{r.SkillName, fmt.Sprintf("%d%%", r.ScorePercent)})
	}
	m.list = listView{title: "My Quiz Results", table: newTable(columns, rows)}
	m.screen = screenList
	m.status = ""
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.gotoHome("")
		return m, nil
	}
	var cmd tea.Cmd
	m.list.table, cmd = m.list.table.Update(msg)
	return m, cmd
}

func (m *Model) viewList() string {
	body := titleStyle.Render(m.list.title) + "\n\n"
	body += m.list.table.View() + "\n"
	body += "\n" + labelStyle.Render("up/down move · esc back")
	return body
}

func (m *Model) openRequestQueue() {
	items := m.store.Requests()
	columns := []table.Column{
		{Title: "Skill", Width: 18},
		{Title: "Requester", Width: 10},
		{Title: "Timing", Width: 14},
		{Title: "Min", Width: 4},
	}
	rows := make([]table.Row, 0, len(items))
	for _, r := range items {
		rows = append(rows, table.Row{
			r.SkillName,
			r.RequesterID,
			r.Timing,
			fmt.Sprintf("%d", r.DurationMinutes),
		})
	}
	m.requests = requestsView{table: newTable(columns, rows), items: items}
	m.screen = screenRequests
	m.status = ""
}

func (m *Model) updateRequests(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.gotoHome("")
		return m, nil
	case "f":
		if req, ok := m.selectedRequest(); ok {
			session, err := m.store.FulfillRequest(m.user, req)
			if err != nil {
				m.setError(err)
				return m, nil
			}
			m.openRequestQueue()
			m.setInfo(fmt.Sprintf("Fulfilled: session %s created", session.SkillCode))
		}
		return m, nil
	case "d":
		if req, ok := m.selectedRequest(); ok {
			if err := m.store.DenyRequest(req); err != nil {
				m.setError(err)
				return m, nil
			}
			m.openRequestQueue()
			m.setInfo("Request denied")
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.requests.table, cmd = m.requests.table.Update(msg)
	return m, cmd
}

func (m *Model) selectedRequest() (model.SessionRequest, bool) {
	i := m.requests.table.Cursor()
	if i < 0 || i >= len(m.requests.items) {
		return model.SessionRequest{}, false
	}
	return m.requests.items[i], true
}

func (m *Model) viewRequests() string {
	body := titleStyle.Render("Pending Requests") + "\n\n"
	if len(m.requests.items) == 0 {
		body += labelStyle.Render("(none)") + "\n"
	} else {
		body += m.requests.table.View() + "\n"
	}
	body += "\n" + labelStyle.Render("f fulfill · d deny · esc back")
	return body
}
