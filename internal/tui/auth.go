package tui

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/skillshare/internal/model"
)

func (m *Model) loginForm() form {
	fields := []field{
		{label: "User ID", placeholder: "S1000"},
		{label: "Name"},
		{label: "Password", secret: true},
	}
	return newForm("Log In", fields, func(values []string) error {
		user, err := m.store.Authenticate(values[0], values[1], values[2])
		if err != nil {
			return err
		}
		m.user = user
		m.gotoHome(statusStyle.Render("Welcome back, " + user.Name))
		return nil
	}, nil)
}

func (m *Model) registerForm() form {
	fields := []field{
		{label: "Name"},
		{label: "Password", secret: true},
		{label: "Role", placeholder: "seeker or provider"},
	}
	return newForm("Register", fields, func(values []string) error {
		role, err := model.ParseRole(strings.TrimSpace(values[2]))
		if err != nil {
			return err
		}
		user, err := m.store.RegisterUser(values[0], values[1], role)
		if err != nil {
			return err
		}
		m.user = user
		m.gotoHome(statusStyle.Render(fmt.Sprintf("Registered. Your id is %s — you need it to log in.", user.ID)))
		return nil
	}, func(m *Model) {
		m.gotoLogin("")
	})
}
