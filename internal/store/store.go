// Package store owns the in-memory registries and enforces the cross-entity
// rules of the skill-sharing domain: enrollment capacity, rating bounds,
// one-result-per-seeker-per-skill, and duplicate-request suppression.
package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/skillshare/internal/idgen"
	"github.com/verte-zerg/skillshare/internal/model"
	"github.com/verte-zerg/skillshare/internal/registry"
)

// Store composes one registry per entity family plus the id generator.
// Construct one per process (or per test); there is no package-level state.
// All operations run to completion on the calling goroutine.
type Store struct {
	users     map[string]*model.Person
	userOrder []string

	sessions    registry.Registry[*model.Session]
	requests    registry.RequestRegistry
	results     registry.ResultRegistry
	lectures    registry.Registry[*model.Lecture]
	quizzes     registry.Registry[*model.Quiz]
	assignments registry.Registry[model.Assignment]
	submissions registry.Registry[model.Assignment]

	ids *idgen.Generator
	now func() time.Time
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		users: map[string]*model.Person{},
		ids:   idgen.New(),
		now:   time.Now,
	}
}

// Clear empties every registry and resets the id counters.
func (s *Store) Clear() {
	s.users = map[string]*model.Person{}
	s.userOrder = nil
	s.sessions.Clear()
	s.requests.Clear()
	s.results.Clear()
	s.lectures.Clear()
	s.quizzes.Clear()
	s.assignments.Clear()
	s.submissions.Clear()
	s.ids.Reset()
}

// RegisterUser allocates an id and inserts a new user.
func (s *Store) RegisterUser(name, password string, role model.Role) (*model.Person, error) {
	if strings.TrimSpace(name) == "" || password == "" {
		return nil, fmt.Errorf("%w: name and password", ErrEmptyField)
	}
	if role != model.RoleSeeker && role != model.RoleProvider {
		return nil, ErrInvalidRole
	}
	p := &model.Person{
		ID:       s.ids.Next(role),
		Name:     name,
		Password: password,
		Role:     role,
	}
	s.insertUser(p)
	return p, nil
}

func (s *Store) insertUser(p *model.Person) {
	if _, exists := s.users[p.ID]; !exists {
		s.userOrder = append(s.userOrder, p.ID)
	}
	s.users[p.ID] = p
}

// Authenticate looks a user up by id and requires an exact, case-sensitive
// name and password match. Both failure variants wrap ErrAuthFailed.
func (s *Store) Authenticate(id, name, password string) (*model.Person, error) {
	p, ok := s.users[id]
	if !ok {
		return nil, ErrUnknownUser
	}
	if p.Name != name || p.Password != password {
		return nil, ErrBadCredentials
	}
	return p, nil
}

// UserByID returns the user with the given id.
func (s *Store) UserByID(id string) (*model.Person, error) {
	p, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return p, nil
}

// Users returns every registered user in insertion order.
func (s *Store) Users() []*model.Person {
	out := make([]*model.Person, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id])
	}
	return out
}

// AddSession creates a session. The skill code is derived from the first
// three characters of the name plus a time-based disambiguator; it is never
// used as a lookup key, and duplicate skill names are permitted.
func (s *Store) AddSession(skillName, timing, instructor string, durationMinutes int) (*model.Session, error) {
	if strings.TrimSpace(skillName) == "" || strings.TrimSpace(timing) == "" || strings.TrimSpace(instructor) == "" {
		return nil, fmt.Errorf("%w: skill name, timing, and instructor", ErrEmptyField)
	}
	session := &model.Session{
		SkillName:       skillName,
		SkillCode:       s.skillCode(skillName),
		Timing:          timing,
		Instructor:      instructor,
		DurationMinutes: durationMinutes,
	}
	s.sessions.Add(session)
	return session, nil
}

func (s *Store) skillCode(skillName string) string {
	prefix := []rune(skillName)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return strings.ToUpper(string(prefix)) + strconv.FormatInt(s.now().UnixMilli()%10000, 10)
}

// Sessions returns every session in insertion order.
func (s *Store) Sessions() []*model.Session { return s.sessions.All() }

// SessionBySkillName returns the first session whose name matches,
// case-insensitively, in insertion order. A second session with the same
// name never shadows the first.
func (s *Store) SessionBySkillName(skillName string) (*model.Session, error) {
	session, ok := s.sessions.Find(func(sn *model.Session) bool {
		return registry.SkillNameMatches(sn.SkillName, skillName)
	})
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Enroll adds the seeker to the session roster and the session's name to the
// seeker's enrolled list. Both mutations happen as one logical operation.
func (s *Store) Enroll(session *model.Session, seekerID string) error {
	seeker, err := s.seeker(seekerID)
	if err != nil {
		return err
	}
	if session.IsEnrolled(seekerID) {
		return ErrAlreadyEnrolled
	}
	if session.IsFull() {
		return ErrSessionFull
	}
	session.EnrolledUserIDs = append(session.EnrolledUserIDs, seekerID)
	seeker.EnrolledSessionNames = append(seeker.EnrolledSessionNames, session.SkillName)
	return nil
}

// Rate records a 1..5 star vote from an enrolled seeker. Repeat votes from
// the same seeker are allowed.
func (s *Store) Rate(session *model.Session, seekerID string, stars int) error {
	seeker, err := s.seeker(seekerID)
	if err != nil {
		return err
	}
	if !seeker.HasEnrolledName(session.SkillName) {
		return ErrNotEnrolled
	}
	if stars < 1 || stars > 5 {
		return ErrInvalidRating
	}
	session.RatingSum += stars
	session.RatingCount++
	return nil
}

// RequestSession queues a pending request. The global registry is the
// canonical copy; the seeker's personal list is a best-effort mirror.
func (s *Store) RequestSession(skillName, seekerID, timing string, durationMinutes int) (*model.SessionRequest, error) {
	seeker, err := s.seeker(seekerID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(skillName) == "" || strings.TrimSpace(timing) == "" {
		return nil, fmt.Errorf("%w: skill name and timing", ErrEmptyField)
	}
	if durationMinutes <= 0 || durationMinutes > 120 {
		return nil, ErrInvalidDuration
	}
	req := model.SessionRequest{
		SkillName:       skillName,
		RequesterID:     seekerID,
		Timing:          timing,
		DurationMinutes: durationMinutes,
		Status:          model.StatusPending,
	}
	if !s.requests.Add(req) {
		return nil, ErrDuplicateRequest
	}
	s.attachRequest(seeker, req)
	return &req, nil
}

func (s *Store) attachRequest(seeker *model.Person, req model.SessionRequest) {
	for _, existing := range seeker.Requests {
		if existing.Equal(req) {
			return
		}
	}
	seeker.Requests = append(seeker.Requests, req)
}

// Requests returns the queued requests in insertion order.
func (s *Store) Requests() []model.SessionRequest { return s.requests.All() }

// FulfillRequest creates a session from the request on behalf of the acting
// provider and removes the request from the queue.
func (s *Store) FulfillRequest(provider *model.Person, req model.SessionRequest) (*model.Session, error) {
	if provider.Role != model.RoleProvider {
		return nil, ErrWrongRole
	}
	if !s.requests.Remove(req) {
		return nil, ErrRequestNotFound
	}
	return s.AddSession(req.SkillName, req.Timing, provider.Name, req.DurationMinutes)
}

// DenyRequest removes the request from the queue without creating a session.
func (s *Store) DenyRequest(req model.SessionRequest) error {
	if !s.requests.Remove(req) {
		return ErrRequestNotFound
	}
	return nil
}

// SubmitQuiz scores the ordered answers against the quiz and stores the
// result, replacing any prior result for the same seeker and skill.
// The score truncates: 1 of 3 correct scores 33.
func (s *Store) SubmitQuiz(seekerID string, quiz *model.Quiz, answers []int) (int, error) {
	if _, err := s.seeker(seekerID); err != nil {
		return 0, err
	}
	if len(quiz.Questions) == 0 {
		return 0, fmt.Errorf("%w: quiz has no questions", ErrEmptyField)
	}
	if len(answers) != len(quiz.Questions) {
		return 0, fmt.Errorf("%w: got %d answers for %d questions", ErrAnswerCount, len(answers), len(quiz.Questions))
	}
	correct := 0
	for i, q := range quiz.Questions {
		if answers[i] == q.CorrectIndex {
			correct++
		}
	}
	score := correct * 100 / len(quiz.Questions)
	s.results.Add(model.QuizResult{SeekerID: seekerID, SkillName: quiz.SkillName, ScorePercent: score})
	return score, nil
}

// ResultsForSeeker returns every stored result for the seeker.
func (s *Store) ResultsForSeeker(seekerID string) []model.QuizResult {
	return s.results.ForSeeker(seekerID)
}

// ResultFor returns the stored result for the (seeker, skill) pair.
func (s *Store) ResultFor(seekerID, skillName string) (model.QuizResult, bool) {
	return s.results.ForSeekerAndSkill(seekerID, skillName)
}

// Results returns every stored quiz result.
func (s *Store) Results() []model.QuizResult { return s.results.All() }

// AddLecture records material for a skill.
func (s *Store) AddLecture(skillName, mediaPath string) error {
	if strings.TrimSpace(skillName) == "" || strings.TrimSpace(mediaPath) == "" {
		return fmt.Errorf("%w: skill name and media path", ErrEmptyField)
	}
	s.lectures.Add(&model.Lecture{SkillName: skillName, MediaPath: mediaPath})
	return nil
}

// LectureBySkill returns the first lecture for the skill.
func (s *Store) LectureBySkill(skillName string) (*model.Lecture, error) {
	lecture, ok := s.lectures.Find(func(l *model.Lecture) bool {
		return registry.SkillNameMatches(l.SkillName, skillName)
	})
	if !ok {
		return nil, ErrLectureNotFound
	}
	return lecture, nil
}

// Lectures returns every lecture in insertion order.
func (s *Store) Lectures() []*model.Lecture { return s.lectures.All() }

// AddQuiz stores a quiz; it must carry at least one question.
func (s *Store) AddQuiz(quiz *model.Quiz) error {
	if strings.TrimSpace(quiz.SkillName) == "" || len(quiz.Questions) == 0 {
		return fmt.Errorf("%w: skill name and at least one question", ErrEmptyField)
	}
	s.quizzes.Add(quiz)
	return nil
}

// QuizBySkill returns the first quiz for the skill.
func (s *Store) QuizBySkill(skillName string) (*model.Quiz, error) {
	quiz, ok := s.quizzes.Find(func(q *model.Quiz) bool {
		return registry.SkillNameMatches(q.SkillName, skillName)
	})
	if !ok {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}

// Quizzes returns every quiz in insertion order.
func (s *Store) Quizzes() []*model.Quiz { return s.quizzes.All() }

// CreateAssignment stores an assignment definition.
func (s *Store) CreateAssignment(skillName, description string) error {
	if strings.TrimSpace(skillName) == "" || strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: skill name and description", ErrEmptyField)
	}
	s.assignments.Add(model.Assignment{SkillName: skillName, Description: description})
	return nil
}

// AssignmentBySkill returns the first assignment definition for the skill.
func (s *Store) AssignmentBySkill(skillName string) (model.Assignment, error) {
	a, ok := s.assignments.Find(func(a model.Assignment) bool {
		return registry.SkillNameMatches(a.SkillName, skillName)
	})
	if !ok {
		return model.Assignment{}, ErrAssignmentNotFound
	}
	return a, nil
}

// SubmitAssignment copies the definition for the skill, attaches the
// submitter metadata, and stores it as a submission.
func (s *Store) SubmitAssignment(seekerID, skillName, filePath string) (model.Assignment, error) {
	if _, err := s.seeker(seekerID); err != nil {
		return model.Assignment{}, err
	}
	def, err := s.AssignmentBySkill(skillName)
	if err != nil {
		return model.Assignment{}, err
	}
	sub := model.Assignment{
		SkillName:   def.SkillName,
		Description: def.Description,
		SubmitterID: seekerID,
		FilePath:    filePath,
	}
	s.submissions.Add(sub)
	return sub, nil
}

// SubmissionFor returns the first submission by the seeker for the skill.
func (s *Store) SubmissionFor(seekerID, skillName string) (model.Assignment, bool) {
	return s.submissions.Find(func(a model.Assignment) bool {
		return a.SubmitterID == seekerID && registry.SkillNameMatches(a.SkillName, skillName)
	})
}

// Assignments returns every assignment definition.
func (s *Store) Assignments() []model.Assignment { return s.assignments.All() }

// Submissions returns every submission.
func (s *Store) Submissions() []model.Assignment { return s.submissions.All() }

func (s *Store) seeker(id string) (*model.Person, error) {
	p, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	if !p.IsSeeker() {
		return nil, ErrWrongRole
	}
	return p, nil
}
