package tui

import (
	"fmt"
	"strconv"
	"strings"
)

func (m *Model) seekerMenu() []menuItem {
	return []menuItem{
		{label: "Browse sessions", action: (*Model).openSessionList},
		{label: "Enroll in a session", action: (*Model).openEnrollForm},
		{label: "Rate a session", action: (*Model).openRateForm},
		{label: "Request a session", action: (*Model).openRequestForm},
		{label: "Watch a lecture", action: (*Model).openLectureForm},
		{label: "Take a quiz", action: (*Model).openQuizPicker},
		{label: "My quiz results", action: (*Model).openResultList},
		{label: "View an assignment", action: (*Model).openAssignmentViewForm},
		{label: "Submit an assignment", action: (*Model).openAssignmentSubmitForm},
		{label: "Log out", action: func(m *Model) { m.gotoLogin("") }},
	}
}

func cancelToHome(m *Model) {
	m.gotoHome("")
}

func (m *Model) openEnrollForm() {
	fields := []field{{label: "Skill name"}}
	m.form = newForm("Enroll", fields, func(values []string) error {
		session, err := m.store.SessionBySkillName(values[0])
		if err != nil {
			return err
		}
		if err := m.store.Enroll(session, m.user.ID); err != nil {
			return err
		}
		m.gotoHome(statusStyle.Render("Enrolled in " + session.SkillName))
		return nil
	}, cancelToHome)
	m.screen = screenForm
}

func (m *Model) openRateForm() {
	fields := []field{
		{label: "Skill name"},
		{label: "Stars", placeholder: "1-5"},
	}
	m.form = newForm("Rate Session", fields, func(values []string) error {
		session, err := m.store.SessionBySkillName(values[0])
		if err != nil {
			return err
		}
		stars, err := strconv.Atoi(strings.TrimSpace(values[1]))
		if err != nil {
			return fmt.Errorf("stars must be a number: %w", err)
		}
		if err := m.store.Rate(session, m.user.ID, stars); err != nil {
			return err
		}
		m.gotoHome(statusStyle.Render(fmt.Sprintf("Rated %s — average now %.1f", session.SkillName, session.AverageRating())))
		return nil
	}, cancelToHome)
	m.screen = screenForm
}

func (m *Model) openRequestForm() {
	fields := []field{
		{label: "Skill name"},
		{label: "Timing", placeholder: "Mon 10am"},
		{label: "Minutes", placeholder: "1-120"},
	}
	m.form = newForm("Request Session", fields, func(values []string) error {
		minutes, err := strconv.Atoi(strings.TrimSpace(values[2]))
		if err != nil {
			return fmt.Errorf("minutes must be a number: %w", err)
		}
		if _, err := m.store.RequestSession(values[0], m.user.ID, values[1], minutes); err != nil {
			return err
		}
		m.gotoHome(statusStyle.Render("Request submitted"))
		return nil
	}, cancelToHome)
	m.screen = screenForm
}

func (m *Model) openLectureForm() {
	fields := []field{{label: "Skill name"}}
	m.form = newForm("Watch Lecture", fields, func(values []string) error {
		lecture, err := m.store.LectureBySkill(values[0])
		if err != nil {
			return err
		}
		m.gotoHome(statusStyle.Render("Now playing: " + lecture.MediaPath))
		return nil
	}, cancelToHome)
	m.screen = screenForm
}

func (m *Model) openAssignmentViewForm() {
	fields := []field{{label: "Skill name"}}
	m.form = newForm("View Assignment", fields, func(values []string) error {
		a, err := m.store.AssignmentBySkill(values[0])
		if err != nil {
			return err
		}
		m.gotoHome(statusStyle.Render(fmt.Sprintf("%s: %s", a.SkillName, a.Description)))
		return nil
	}, cancelToHome)
	m.screen = screenForm
}

func (m *Model) openAssignmentSubmitForm() {
	fields := []field{
		{label: "Skill name"},
		{label: "File path", placeholder: "/path/to/work"},
	}
	m.form = newForm("Submit Assignment", fields, func(values []string) error {
		if _, err := m.store.SubmitAssignment(m.user.ID, values[0], values[1]); err != nil {
			return err
		}
		m.gotoHome(statusStyle.Render("Assignment submitted"))
		return nil
	}, cancelToHome)
	m.screen = screenForm
}
