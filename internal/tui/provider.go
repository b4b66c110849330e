package tui

import (
	"fmt"
	"strconv"
	"strings"
)

func (m *Model) providerMenu() []menuItem {
	return []menuItem{
		{label: "Browse sessions", action: (*Model).openSessionList},
		{label: "Add a session", action: (*Model).openAddSessionForm},
		{label: "Pending requests", action: (*Model).openRequestQueue},
		{label: "Add a lecture", action: (*Model).openAddLectureForm},
		{label: "Create a quiz", action: (*Model).openQuizBuilder},
		{label: "Create an assignment", action: (*Model).openAddAssignmentForm},
		{label: "Log out", action: func(m *Model) { m.gotoLogin("") }},
	}
}

func (m *Model) openAddSessionForm() {
	fields := []field{
		{label: "Skill name"},
		{label: "Timing", placeholder: "Mon 10am"},
		{label: "Minutes", placeholder: "60"},
	}
	m.form = newForm("Add Session", fields, func(values []string) error {
		minutes, err := strconv.Atoi(strings.TrimSpace(values[2]))
		if err != nil {
			return fmt.Errorf("minutes must be a number: %w", err)
		}
		session, err := m.store.AddSession(values[0], values[1], m.user.Name, minutes)
		if err != nil {
			return err
		}
		m.gotoHome(statusStyle.Render("Session added with code " + session.SkillCode))
		return nil
	}, cancelToHome)
	m.screen = screenForm
}

func (m *Model) openAddLectureForm() {
	fields := []field{
		{label: "Skill name"},
		{label: "Media path", placeholder: "/path/to/recording"},
	}
	m.form = newForm("Add Lecture", fields, func(values []string) error {
		if err := m.store.AddLecture(values[0], values[1]); err != nil {
			return err
		}
		m.gotoHome(statusStyle.Render("Lecture added"))
		return nil
	}, cancelToHome)
	m.screen = screenForm
}

func (m *Model) openAddAssignmentForm() {
	fields := []field{
		{label: "Skill name"},
		{label: "Description"},
	}
	m.form = newForm("Create Assignment", fields, func(values []string) error {
		if err := m.store.CreateAssignment(values[0], values[1]); err != nil {
			return err
		}
		m.gotoHome(statusStyle.Render("Assignment created"))
		return nil
	}, cancelToHome)
	m.screen = screenForm
}
