// Package codec serializes domain entities to and from the flat-record text
// format: one `|`-delimited line per entity, `;` between question sub-fields,
// `,` between list elements. Decoding is positional; the field count decides
// which optional trailing fields are present. Encoding rejects free text that
// contains a structural delimiter so a write can never corrupt the file.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/skillshare/internal/model"
)

const (
	fieldSep    = "|"
	questionSep = ";"
	listSep     = ","
)

// ErrReservedDelimiter marks encode failures caused by free text containing
// a structural delimiter.
var ErrReservedDelimiter = errors.New("reserved delimiter in field")

func checkField(name, value string) error {
	if strings.Contains(value, fieldSep) {
		return fmt.Errorf("%w: %s %q contains %q", ErrReservedDelimiter, name, value, fieldSep)
	}
	return nil
}

func checkListElem(name, value string) error {
	if err := checkField(name, value); err != nil {
		return err
	}
	if strings.Contains(value, listSep) {
		return fmt.Errorf("%w: %s %q contains %q", ErrReservedDelimiter, name, value, listSep)
	}
	return nil
}

func checkQuestionField(name, value string) error {
	if err := checkField(name, value); err != nil {
		return err
	}
	if strings.Contains(value, questionSep) {
		return fmt.Errorf("%w: %s %q contains %q", ErrReservedDelimiter, name, value, questionSep)
	}
	return nil
}

// EncodeUser renders a user line: role|id|name|password for providers, plus a
// trailing comma-list of enrolled skill names for seekers (empty list allowed).
func EncodeUser(p *model.Person) (string, error) {
	for _, f := range []struct{ name, value string }{
		{"user id", p.ID}, {"user name", p.Name}, {"password", p.Password},
	} {
		if err := checkField(f.name, f.value); err != nil {
			return "", err
		}
	}
	fields := []string{p.Role.String(), p.ID, p.Name, p.Password}
	if p.Role == model.RoleSeeker {
		for _, name := range p.EnrolledSessionNames {
			if err := checkListElem("enrolled skill name", name); err != nil {
				return "", err
			}
		}
		fields = append(fields, strings.Join(p.EnrolledSessionNames, listSep))
	}
	return strings.Join(fields, fieldSep), nil
}

// DecodeUser parses a user line. 4 fields is a bare user of either role;
// a 5th field carries a seeker's enrolled-names list, possibly empty.
func DecodeUser(line string) (*model.Person, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != 4 && len(parts) != 5 {
		return nil, fmt.Errorf("user line has %d fields, want 4 or 5", len(parts))
	}
	role, err := model.ParseRole(parts[0])
	if err != nil {
		return nil, err
	}
	if role == model.RoleProvider && len(parts) == 5 {
		return nil, fmt.Errorf("provider line has trailing enrollment field")
	}
	p := &model.Person{ID: parts[1], Name: parts[2], Password: parts[3], Role: role}
	if len(parts) == 5 && parts[4] != "" {
		p.EnrolledSessionNames = strings.Split(parts[4], listSep)
	}
	return p, nil
}

// EncodeSession renders a session line with the comma-list of enrolled user
// ids as the final field (empty list allowed).
func EncodeSession(s *model.Session) (string, error) {
	for _, f := range []struct{ name, value string }{
		{"skill name", s.SkillName}, {"skill code", s.SkillCode},
		{"timing", s.Timing}, {"instructor", s.Instructor},
	} {
		if err := checkField(f.name, f.value); err != nil {
			return "", err
		}
	}
	for _, id := range s.EnrolledUserIDs {
		if err := checkListElem("enrolled user id", id); err != nil {
			return "", err
		}
	}
	fields := []string{
		s.SkillName,
		s.SkillCode,
		s.Timing,
		s.Instructor,
		strconv.Itoa(s.DurationMinutes),
		strconv.Itoa(s.RatingSum),
		strconv.Itoa(s.RatingCount),
		strings.Join(s.EnrolledUserIDs, listSep),
	}
	return strings.Join(fields, fieldSep), nil
}

// DecodeSession parses a session line. The roster field may be absent or empty.
func DecodeSession(line string) (*model.Session, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != 7 && len(parts) != 8 {
		return nil, fmt.Errorf("session line has %d fields, want 7 or 8", len(parts))
	}
	duration, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, fmt.Errorf("session duration: %w", err)
	}
	ratingSum, err := strconv.Atoi(parts[5])
	if err != nil {
		return nil, fmt.Errorf("session rating sum: %w", err)
	}
	ratingCount, err := strconv.Atoi(parts[6])
	if err != nil {
		return nil, fmt.Errorf("session rating count: %w", err)
	}
	s := &model.Session{
		SkillName:       parts[0],
		SkillCode:       parts[1],
		Timing:          parts[2],
		Instructor:      parts[3],
		DurationMinutes: duration,
		RatingSum:       ratingSum,
		RatingCount:     ratingCount,
	}
	if len(parts) == 8 && parts[7] != "" {
		s.EnrolledUserIDs = strings.Split(parts[7], listSep)
	}
	return s, nil
}

// EncodeRequest renders a request line including its status word.
func EncodeRequest(r model.SessionRequest) (string, error) {
	for _, f := range []struct{ name, value string }{
		{"skill name", r.SkillName}, {"requester id", r.RequesterID}, {"timing", r.Timing},
	} {
		if err := checkField(f.name, f.value); err != nil {
			return "", err
		}
	}
	fields := []string{
		r.SkillName,
		r.RequesterID,
		r.Timing,
		strconv.Itoa(r.DurationMinutes),
		r.Status.String(),
	}
	return strings.Join(fields, fieldSep), nil
}

// DecodeRequest parses a request line.
func DecodeRequest(line string) (model.SessionRequest, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != 5 {
		return model.SessionRequest{}, fmt.Errorf("request line has %d fields, want 5", len(parts))
	}
	duration, err := strconv.Atoi(parts[3])
	if err != nil {
		return model.SessionRequest{}, fmt.Errorf("request duration: %w", err)
	}
	status, err := model.ParseRequestStatus(parts[4])
	if err != nil {
		return model.SessionRequest{}, err
	}
	return model.SessionRequest{
		SkillName:       parts[0],
		RequesterID:     parts[1],
		Timing:          parts[2],
		DurationMinutes: duration,
		Status:          status,
	}, nil
}

// EncodeResult renders a quiz-result line.
func EncodeResult(r model.QuizResult) (string, error) {
	if err := checkField("seeker id", r.SeekerID); err != nil {
		return "", err
	}
	if err := checkField("skill name", r.SkillName); err != nil {
		return "", err
	}
	return strings.Join([]string{r.SeekerID, r.SkillName, strconv.Itoa(r.ScorePercent)}, fieldSep), nil
}

// DecodeResult parses a quiz-result line.
func DecodeResult(line string) (model.QuizResult, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != 3 {
		return model.QuizResult{}, fmt.Errorf("result line has %d fields, want 3", len(parts))
	}
	score, err := strconv.Atoi(parts[2])
	if err != nil {
		return model.QuizResult{}, fmt.Errorf("result score: %w", err)
	}
	return model.QuizResult{SeekerID: parts[0], SkillName: parts[1], ScorePercent: score}, nil
}

// EncodeLecture renders a lecture line.
func EncodeLecture(l *model.Lecture) (string, error) {
	if err := checkField("skill name", l.SkillName); err != nil {
		return "", err
	}
	if err := checkField("media path", l.MediaPath); err != nil {
		return "", err
	}
	return l.SkillName + fieldSep + l.MediaPath, nil
}

// DecodeLecture parses a lecture line.
func DecodeLecture(line string) (*model.Lecture, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != 2 {
		return nil, fmt.Errorf("lecture line has %d fields, want 2", len(parts))
	}
	return &model.Lecture{SkillName: parts[0], MediaPath: parts[1]}, nil
}

// EncodeQuiz renders a quiz line: the skill name followed by one field per
// question, each question `text;opt1;...;optN;correctIndex`.
func EncodeQuiz(q *model.Quiz) (string, error) {
	if err := checkField("skill name", q.SkillName); err != nil {
		return "", err
	}
	fields := make([]string, 0, len(q.Questions)+1)
	fields = append(fields, q.SkillName)
	for _, question := range q.Questions {
		encoded, err := encodeQuestion(question)
		if err != nil {
			return "", err
		}
		fields = append(fields, encoded)
	}
	return strings.Join(fields, fieldSep), nil
}

func encodeQuestion(q model.Question) (string, error) {
	if err := checkQuestionField("question text", q.Text); err != nil {
		return "", err
	}
	for _, opt := range q.Options {
		if err := checkQuestionField("question option", opt); err != nil {
			return "", err
		}
	}
	parts := make([]string, 0, len(q.Options)+2)
	parts = append(parts, q.Text)
	parts = append(parts, q.Options...)
	parts = append(parts, strconv.Itoa(q.CorrectIndex))
	return strings.Join(parts, questionSep), nil
}

// DecodeQuiz parses a quiz line.
func DecodeQuiz(line string) (*model.Quiz, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) < 2 {
		return nil, fmt.Errorf("quiz line has %d fields, want at least 2", len(parts))
	}
	quiz := &model.Quiz{SkillName: parts[0]}
	for _, encoded := range parts[1:] {
		question, err := decodeQuestion(encoded)
		if err != nil {
			return nil, err
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz, nil
}

func decodeQuestion(s string) (model.Question, error) {
	parts := strings.Split(s, questionSep)
	if len(parts) < 3 {
		return model.Question{}, fmt.Errorf("question %q has %d sub-fields, want at least 3", s, len(parts))
	}
	correct, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return model.Question{}, fmt.Errorf("question correct index: %w", err)
	}
	options := make([]string, len(parts)-2)
	copy(options, parts[1:len(parts)-1])
	return model.Question{Text: parts[0], Options: options, CorrectIndex: correct}, nil
}

// EncodeAssignment renders an assignment line: skill|description for a
// definition, with submitter id and file path appended for a submission.
func EncodeAssignment(a model.Assignment) (string, error) {
	if err := checkField("skill name", a.SkillName); err != nil {
		return "", err
	}
	if err := checkField("description", a.Description); err != nil {
		return "", err
	}
	if !a.IsSubmission() {
		return a.SkillName + fieldSep + a.Description, nil
	}
	if err := checkField("submitter id", a.SubmitterID); err != nil {
		return "", err
	}
	if err := checkField("file path", a.FilePath); err != nil {
		return "", err
	}
	return strings.Join([]string{a.SkillName, a.Description, a.SubmitterID, a.FilePath}, fieldSep), nil
}

// DecodeAssignment parses an assignment line; 2 fields is a definition,
// 4 fields a submission.
func DecodeAssignment(line string) (model.Assignment, error) {
	parts := strings.Split(line, fieldSep)
	switch len(parts) {
	case 2:
		return model.Assignment{SkillName: parts[0], Description: parts[1]}, nil
	case 4:
		return model.Assignment{
			SkillName:   parts[0],
			Description: parts[1],
			SubmitterID: parts[2],
			FilePath:    parts[3],
		}, nil
	default:
		return model.Assignment{}, fmt.Errorf("assignment line has %d fields, want 2 or 4", len(parts))
	}
}
