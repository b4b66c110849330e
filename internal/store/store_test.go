package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/verte-zerg/skillshare/internal/model"
)

func newSeeker(t *testing.T, s *Store) *model.Person {
	t.Helper()
	p, err := s.RegisterUser("Ann", "pw", model.RoleSeeker)
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	return p
}

func newProvider(t *testing.T, s *Store) *model.Person {
	t.Helper()
	p, err := s.RegisterUser("Bob", "pw", model.RoleProvider)
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	return p
}

func newSession(t *testing.T, s *Store, name string) *model.Session {
	t.Helper()
	session, err := s.AddSession(name, "Mon 10am", "Bob", 60)
	if err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}
	return session
}

func TestRegisterUserIDs(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	provider := newProvider(t, s)
	if seeker.ID != "S1000" {
		t.Fatalf("expected S1000, got %s", seeker.ID)
	}
	if provider.ID != "P2000" {
		t.Fatalf("expected P2000, got %s", provider.ID)
	}
}

func TestAuthenticate(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)

	got, err := s.Authenticate(seeker.ID, "Ann", "pw")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got != seeker {
		t.Fatalf("expected the registered user back")
	}

	if _, err := s.Authenticate("S9999", "Ann", "pw"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
	if _, err := s.Authenticate(seeker.ID, "Ann", "PW"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, err := s.Authenticate(seeker.ID, "ann", "pw"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong name case, got %v", err)
	}
	// Both variants stay one kind at the boundary.
	if _, err := s.Authenticate("S9999", "Ann", "pw"); !errors.Is(err, ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed kind, got %v", err)
	}
}

func TestAddSessionSkillCode(t *testing.T) {
	s := New()
	session := newSession(t, s, "Woodworking")
	if len(session.SkillCode) < 4 {
		t.Fatalf("expected prefixed skill code, got %q", session.SkillCode)
	}
	if session.SkillCode[:3] != "WOO" {
		t.Fatalf("expected code prefix WOO, got %q", session.SkillCode)
	}
	short := newSession(t, s, "Go")
	if short.SkillCode[:2] != "GO" {
		t.Fatalf("expected code prefix GO, got %q", short.SkillCode)
	}
	multibyte := newSession(t, s, "Ölmalerei")
	if !strings.HasPrefix(multibyte.SkillCode, "ÖLM") {
		t.Fatalf("expected code prefix ÖLM, got %q", multibyte.SkillCode)
	}
	if !utf8.ValidString(multibyte.SkillCode) {
		t.Fatalf("skill code is not valid UTF-8: %q", multibyte.SkillCode)
	}
}

func TestDuplicateSkillNamesFirstMatchWins(t *testing.T) {
	s := New()
	first := newSession(t, s, "Go")
	newSession(t, s, "go")
	got, err := s.SessionBySkillName("GO")
	if err != nil {
		t.Fatalf("SessionBySkillName failed: %v", err)
	}
	if got != first {
		t.Fatalf("expected first session in insertion order")
	}
}

func TestEnrollIdempotentFailing(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	session := newSession(t, s, "Go")

	if err := s.Enroll(session, seeker.ID); err != nil {
		t.Fatalf("first enroll failed: %v", err)
	}
	if err := s.Enroll(session, seeker.ID); !errors.Is(err, ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
	if len(session.EnrolledUserIDs) != 1 {
		t.Fatalf("expected roster unchanged, got %d", len(session.EnrolledUserIDs))
	}
	if !seeker.HasEnrolledName("Go") {
		t.Fatalf("expected seeker enrolled-names to contain the session name")
	}
}

func TestEnrollCapacity(t *testing.T) {
	s := New()
	session := newSession(t, s, "Go")
	for i := 0; i < model.MaxEnrollment; i++ {
		p, err := s.RegisterUser(fmt.Sprintf("Seeker%d", i), "pw", model.RoleSeeker)
		if err != nil {
			t.Fatalf("RegisterUser failed: %v", err)
		}
		if err := s.Enroll(session, p.ID); err != nil {
			t.Fatalf("enroll %d failed: %v", i, err)
		}
	}
	extra, err := s.RegisterUser("Late", "pw", model.RoleSeeker)
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	if err := s.Enroll(session, extra.ID); !errors.Is(err, ErrSessionFull) {
		t.Fatalf("expected ErrSessionFull, got %v", err)
	}
	if len(session.EnrolledUserIDs) != model.MaxEnrollment {
		t.Fatalf("expected roster at %d, got %d", model.MaxEnrollment, len(session.EnrolledUserIDs))
	}
}

func TestEnrollWrongRole(t *testing.T) {
	s := New()
	provider := newProvider(t, s)
	session := newSession(t, s, "Go")
	if err := s.Enroll(session, provider.ID); !errors.Is(err, ErrWrongRole) {
		t.Fatalf("expected ErrWrongRole, got %v", err)
	}
}

func TestRateAccumulates(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	session := newSession(t, s, "Go")
	if err := s.Enroll(session, seeker.ID); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	if err := s.Rate(session, seeker.ID, 3); err != nil {
		t.Fatalf("rate failed: %v", err)
	}
	if err := s.Rate(session, seeker.ID, 5); err != nil {
		t.Fatalf("repeat rate failed: %v", err)
	}
	if session.RatingSum != 8 || session.RatingCount != 2 {
		t.Fatalf("expected sum=8 count=2, got sum=%d count=%d", session.RatingSum, session.RatingCount)
	}
	if avg := session.AverageRating(); avg != 4.0 {
		t.Fatalf("expected average 4.0, got %v", avg)
	}
}

func TestRateBounds(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	session := newSession(t, s, "Go")
	if err := s.Enroll(session, seeker.ID); err != nil {
		t.Fatalf("enroll failed: %v", err)
	}
	for _, stars := range []int{0, 6} {
		if err := s.Rate(session, seeker.ID, stars); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("expected ErrInvalidRating for %d, got %v", stars, err)
		}
	}
	if session.RatingSum != 0 || session.RatingCount != 0 {
		t.Fatalf("rejected ratings must not mutate counters: sum=%d count=%d", session.RatingSum, session.RatingCount)
	}
}

func TestRateRequiresEnrollment(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	session := newSession(t, s, "Go")
	if err := s.Rate(session, seeker.ID, 4); !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestRequestSessionDeduplicates(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)

	if _, err := s.RequestSession("Go", seeker.ID, "Mon 10am", 60); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	reqs := s.Requests()
	if len(reqs) != 1 || reqs[0].Status != model.StatusPending {
		t.Fatalf("expected one pending request, got %+v", reqs)
	}

	if _, err := s.RequestSession("Go", seeker.ID, "Mon 10am", 60); !errors.Is(err, ErrDuplicateRequest) {
		t.Fatalf("expected ErrDuplicateRequest, got %v", err)
	}
	if len(s.Requests()) != 1 {
		t.Fatalf("duplicate must not increase the count")
	}
	if len(seeker.Requests) != 1 {
		t.Fatalf("expected one personal request, got %d", len(seeker.Requests))
	}
}

func TestRequestSessionDurationBounds(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	for _, d := range []int{0, -5, 121} {
		if _, err := s.RequestSession("Go", seeker.ID, "Mon", d); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("expected ErrInvalidDuration for %d, got %v", d, err)
		}
	}
	if _, err := s.RequestSession("Go", seeker.ID, "Mon", 120); err != nil {
		t.Fatalf("120 minutes must be accepted: %v", err)
	}
}

func TestFulfillRequest(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	provider := newProvider(t, s)
	req, err := s.RequestSession("Go", seeker.ID, "Mon 10am", 60)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	session, err := s.FulfillRequest(provider, *req)
	if err != nil {
		t.Fatalf("fulfill failed: %v", err)
	}
	if session.Instructor != provider.Name {
		t.Fatalf("expected acting provider as instructor, got %q", session.Instructor)
	}
	if session.SkillName != "Go" || session.DurationMinutes != 60 {
		t.Fatalf("session does not mirror request: %+v", session)
	}
	if len(s.Requests()) != 0 {
		t.Fatalf("expected request removed from the queue")
	}
	// Terminal: the same request cannot be actioned twice.
	if _, err := s.FulfillRequest(provider, *req); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestDenyRequest(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	req, err := s.RequestSession("Go", seeker.ID, "Mon 10am", 60)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if err := s.DenyRequest(*req); err != nil {
		t.Fatalf("deny failed: %v", err)
	}
	if len(s.Requests()) != 0 {
		t.Fatalf("expected empty queue after deny")
	}
	if len(s.Sessions()) != 0 {
		t.Fatalf("deny must not create a session")
	}
	if err := s.DenyRequest(*req); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound on repeat deny, got %v", err)
	}
}

func quizFixture() *model.Quiz {
	return &model.Quiz{
		SkillName: "Go",
		Questions: []model.Question{
			{Text: "q1", Options: []string{"a", "b"}, CorrectIndex: 0},
			{Text: "q2", Options: []string{"a", "b"}, CorrectIndex: 1},
			{Text: "q3", Options: []string{"a", "b"}, CorrectIndex: 1},
		},
	}
}

func TestSubmitQuizScores(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	quiz := quizFixture()

	score, err := s.SubmitQuiz(seeker.ID, quiz, []int{0, 1, 1})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if score != 100 {
		t.Fatalf("expected 100, got %d", score)
	}

	score, err = s.SubmitQuiz(seeker.ID, quiz, []int{1, 0, 0})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if score != 0 {
		t.Fatalf("expected 0, got %d", score)
	}

	score, err = s.SubmitQuiz(seeker.ID, quiz, []int{0, 0, 0})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if score != 33 {
		t.Fatalf("expected truncated 33 for 1 of 3, got %d", score)
	}
}

func TestSubmitQuizAnswerCount(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	if _, err := s.SubmitQuiz(seeker.ID, quizFixture(), []int{0}); !errors.Is(err, ErrAnswerCount) {
		t.Fatalf("expected ErrAnswerCount, got %v", err)
	}
}

func TestSubmitQuizRejectsEmptyQuiz(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	if _, err := s.SubmitQuiz(seeker.ID, &model.Quiz{SkillName: "Go"}, nil); !errors.Is(err, ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField for a quiz without questions, got %v", err)
	}
	if len(s.ResultsForSeeker(seeker.ID)) != 0 {
		t.Fatalf("empty quiz must not record a result")
	}
}

func TestSubmitQuizReplacesResult(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	quiz := quizFixture()
	if _, err := s.SubmitQuiz(seeker.ID, quiz, []int{0, 0, 0}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := s.SubmitQuiz(seeker.ID, quiz, []int{0, 1, 1}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	results := s.ResultsForSeeker(seeker.ID)
	if len(results) != 1 {
		t.Fatalf("expected one result per (seeker, skill), got %d", len(results))
	}
	if results[0].ScorePercent != 100 {
		t.Fatalf("expected the latest score, got %d", results[0].ScorePercent)
	}
}

func TestAssignmentSubmissionCopiesDefinition(t *testing.T) {
	s := New()
	seeker := newSeeker(t, s)
	if err := s.CreateAssignment("Go", "Write a CLI"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	sub, err := s.SubmitAssignment(seeker.ID, "go", "/tmp/cli.go")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sub.Description != "Write a CLI" || sub.SubmitterID != seeker.ID {
		t.Fatalf("submission must copy the definition: %+v", sub)
	}
	got, ok := s.SubmissionFor(seeker.ID, "GO")
	if !ok || got.FilePath != "/tmp/cli.go" {
		t.Fatalf("expected stored submission, got %+v ok=%v", got, ok)
	}
	if _, err := s.SubmitAssignment(seeker.ID, "Rust", "/tmp/x"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
	}
}

func TestLectureFirstMatchWins(t *testing.T) {
	s := New()
	if err := s.AddLecture("Go", "/v/one.mp4"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := s.AddLecture("go", "/v/two.mp4"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	lec, err := s.LectureBySkill("GO")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if lec.MediaPath != "/v/one.mp4" {
		t.Fatalf("expected first lecture, got %q", lec.MediaPath)
	}
}

func TestClearResetsCounters(t *testing.T) {
	s := New()
	newSeeker(t, s)
	s.Clear()
	p := newSeeker(t, s)
	if p.ID != "S1000" {
		t.Fatalf("expected S1000 after clear, got %s", p.ID)
	}
}
