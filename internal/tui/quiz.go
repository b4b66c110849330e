package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/skillshare/internal/model"
)

type quizRun struct {
	quiz    *model.Quiz
	index   int
	answers []int
}

type quizBuilder struct {
	skill     string
	questions []model.Question
}

func (m *Model) openQuizPicker() {
	fields := []field{{label: "Skill name"}}
	m.form = newForm("Take Quiz", fields, func(values []string) error {
		quiz, err := m.store.QuizBySkill(values[0])
		if err != nil {
			return err
		}
		m.quiz = quizRun{quiz: quiz}
		m.screen = screenQuiz
		m.status = ""
		return nil
	}, cancelToHome)
	m.screen = screenForm
}

func (m *Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		m.gotoHome(statusStyle.Render("Quiz abandoned — nothing recorded"))
		return m, nil
	}
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return m, nil
	}
	question := m.quiz.quiz.Questions[m.quiz.index]
	choice := int(key[0] - '1')
	if choice >= len(question.Options) {
		return m, nil
	}
	m.quiz.answers = append(m.quiz.answers, choice)
	m.quiz.index++
	if m.quiz.index < len(m.quiz.quiz.Questions) {
		return m, nil
	}
	score, err := m.store.SubmitQuiz(m.user.ID, m.quiz.quiz, m.quiz.answers)
	if err != nil {
		m.gotoHome("")
		m.setError(err)
		return m, nil
	}
	m.gotoHome(statusStyle.Render(fmt.Sprintf("You scored %d%%", score)))
	return m, nil
}

func (m *Model) viewQuiz() string {
	question := m.quiz.quiz.Questions[m.quiz.index]
	body := titleStyle.Render(fmt.Sprintf("Quiz: %s — question %d of %d",
		m.quiz.quiz.SkillName, m.quiz.index+1, len(m.quiz.quiz.Questions))) + "\n\n"
	body += question.Text + "\n\n"
	for i, option := range question.Options {
		body += fmt.Sprintf("  %d. %s\n", i+1, option)
	}
	body += "\n" + labelStyle.Render("press the option number · esc abandon")
	return body
}

func (m *Model) openQuizBuilder() {
	fields := []field{{label: "Skill name"}}
	m.form = newForm("Create Quiz", fields, func(values []string) error {
		if strings.TrimSpace(values[0]) == "" {
			return fmt.Errorf("skill name must not be empty")
		}
		m.builder = quizBuilder{skill: values[0]}
		m.openQuestionForm()
		return nil
	}, cancelToHome)
	m.screen = screenForm
}

func (m *Model) openQuestionForm() {
	title := fmt.Sprintf("Create Quiz: %s — question %d", m.builder.skill, len(m.builder.questions)+1)
	fields := []field{
		{label: "Question", placeholder: "blank to finish"},
		{label: "Options", placeholder: "comma separated"},
		{label: "Correct", placeholder: "option number"},
	}
	m.form = newForm(title, fields, func(values []string) error {
		if strings.TrimSpace(values[0]) == "" {
			quiz := &model.Quiz{SkillName: m.builder.skill, Questions: m.builder.questions}
			if err := m.store.AddQuiz(quiz); err != nil {
				return err
			}
			m.gotoHome(statusStyle.Render(fmt.Sprintf("Quiz saved with %d questions", len(quiz.Questions))))
			return nil
		}
		question, err := parseQuestion(values[0], values[1], values[2])
		if err != nil {
			return err
		}
		m.builder.questions = append(m.builder.questions, question)
		m.openQuestionForm()
		m.setInfo(fmt.Sprintf("Question %d added", len(m.builder.questions)))
		return nil
	}, cancelToHome)
	m.screen = screenForm
}

func parseQuestion(text, options, correct string) (model.Question, error) {
	parts := strings.Split(options, ",")
	opts := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			opts = append(opts, trimmed)
		}
	}
	if len(opts) < 2 {
		return model.Question{}, fmt.Errorf("a question needs at least two options")
	}
	n, err := strconv.Atoi(strings.TrimSpace(correct))
	if err != nil {
		return model.Question{}, fmt.Errorf("correct option must be a number: %w", err)
	}
	if n < 1 || n > len(opts) {
		return model.Question{}, fmt.Errorf("correct option must be between 1 and %d", len(opts))
	}
	return model.Question{Text: text, Options: opts, CorrectIndex: n - 1}, nil
}
