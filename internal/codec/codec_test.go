package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/verte-zerg/skillshare/internal/model"
)

func TestSessionRoundTripByteIdentical(t *testing.T) {
	line := "Go Basics|GOB1234|Mon 10am|Alice|60|8|2|S1000,S1001"
	s, err := DecodeSession(line)
	if err != nil {
		t.Fatalf("DecodeSession failed: %v", err)
	}
	again, err := EncodeSession(s)
	if err != nil {
		t.Fatalf("EncodeSession failed: %v", err)
	}
	if again != line {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", again, line)
	}
}

func TestSessionEmptyRoster(t *testing.T) {
	s := &model.Session{SkillName: "Go", SkillCode: "GO1", Timing: "Mon", Instructor: "Alice", DurationMinutes: 45}
	line, err := EncodeSession(s)
	if err != nil {
		t.Fatalf("EncodeSession failed: %v", err)
	}
	if !strings.HasSuffix(line, "|") {
		t.Fatalf("expected trailing empty roster field, got %q", line)
	}
	decoded, err := DecodeSession(line)
	if err != nil {
		t.Fatalf("DecodeSession failed: %v", err)
	}
	if len(decoded.EnrolledUserIDs) != 0 {
		t.Fatalf("expected empty roster, got %v", decoded.EnrolledUserIDs)
	}
}

func TestDecodeSessionMalformed(t *testing.T) {
	cases := []string{
		"Go|GO1|Mon|Alice",
		"Go|GO1|Mon|Alice|sixty|0|0|",
		"Go|GO1|Mon|Alice|60|x|0|",
	}
	for _, line := range cases {
		if _, err := DecodeSession(line); err == nil {
			t.Fatalf("expected error for %q", line)
		}
	}
}

func TestUserSeekerRoundTrip(t *testing.T) {
	p := &model.Person{
		ID: "S1000", Name: "Ann", Password: "pw", Role: model.RoleSeeker,
		EnrolledSessionNames: []string{"Go", "Rust"},
	}
	line, err := EncodeUser(p)
	if err != nil {
		t.Fatalf("EncodeUser failed: %v", err)
	}
	if line != "seeker|S1000|Ann|pw|Go,Rust" {
		t.Fatalf("unexpected line %q", line)
	}
	decoded, err := DecodeUser(line)
	if err != nil {
		t.Fatalf("DecodeUser failed: %v", err)
	}
	if decoded.Role != model.RoleSeeker || len(decoded.EnrolledSessionNames) != 2 {
		t.Fatalf("unexpected decode %+v", decoded)
	}
}

func TestUserSeekerEmptyEnrollment(t *testing.T) {
	p := &model.Person{ID: "S1000", Name: "Ann", Password: "pw", Role: model.RoleSeeker}
	line, err := EncodeUser(p)
	if err != nil {
		t.Fatalf("EncodeUser failed: %v", err)
	}
	if line != "seeker|S1000|Ann|pw|" {
		t.Fatalf("unexpected line %q", line)
	}
	decoded, err := DecodeUser(line)
	if err != nil {
		t.Fatalf("DecodeUser failed: %v", err)
	}
	if len(decoded.EnrolledSessionNames) != 0 {
		t.Fatalf("expected empty enrollment list, got %v", decoded.EnrolledSessionNames)
	}
}

func TestUserProviderFourFields(t *testing.T) {
	p := &model.Person{ID: "P2000", Name: "Bob", Password: "pw", Role: model.RoleProvider}
	line, err := EncodeUser(p)
	if err != nil {
		t.Fatalf("EncodeUser failed: %v", err)
	}
	if line != "provider|P2000|Bob|pw" {
		t.Fatalf("unexpected line %q", line)
	}
	if _, err := DecodeUser("provider|P2000|Bob|pw|extra"); err == nil {
		t.Fatalf("expected error for provider line with enrollment field")
	}
}

func TestRequestRoundTrip(t *testing.T) {
	r := model.SessionRequest{SkillName: "Go", RequesterID: "S1000", Timing: "Mon 10am", DurationMinutes: 60, Status: model.StatusPending}
	line, err := EncodeRequest(r)
	if err != nil {
		t.Fatalf("EncodeRequest failed: %v", err)
	}
	if line != "Go|S1000|Mon 10am|60|PENDING" {
		t.Fatalf("unexpected line %q", line)
	}
	decoded, err := DecodeRequest(line)
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
	if !decoded.Equal(r) || decoded.Status != model.StatusPending {
		t.Fatalf("unexpected decode %+v", decoded)
	}
}

func TestQuizRoundTrip(t *testing.T) {
	q := &model.Quiz{
		SkillName: "Go",
		Questions: []model.Question{
			{Text: "What is a goroutine?", Options: []string{"a thread", "a function", "a channel"}, CorrectIndex: 1},
			{Text: "Zero value of int?", Options: []string{"0", "nil"}, CorrectIndex: 0},
		},
	}
	line, err := EncodeQuiz(q)
	if err != nil {
		t.Fatalf("EncodeQuiz failed: %v", err)
	}
	want := "Go|What is a goroutine?;a thread;a function;a channel;1|Zero value of int?;0;nil;0"
	if line != want {
		t.Fatalf("unexpected line:\n got %q\nwant %q", line, want)
	}
	decoded, err := DecodeQuiz(line)
	if err != nil {
		t.Fatalf("DecodeQuiz failed: %v", err)
	}
	if len(decoded.Questions) != 2 || decoded.Questions[0].CorrectIndex != 1 {
		t.Fatalf("unexpected decode %+v", decoded)
	}
	if len(decoded.Questions[0].Options) != 3 {
		t.Fatalf("expected 3 options, got %v", decoded.Questions[0].Options)
	}
}

func TestAssignmentDefinitionAndSubmission(t *testing.T) {
	def := model.Assignment{SkillName: "Go", Description: "Write a CLI"}
	line, err := EncodeAssignment(def)
	if err != nil {
		t.Fatalf("EncodeAssignment failed: %v", err)
	}
	if line != "Go|Write a CLI" {
		t.Fatalf("unexpected line %q", line)
	}
	sub := model.Assignment{SkillName: "Go", Description: "Write a CLI", SubmitterID: "S1000", FilePath: "/tmp/cli.go"}
	line, err = EncodeAssignment(sub)
	if err != nil {
		t.Fatalf("EncodeAssignment failed: %v", err)
	}
	decoded, err := DecodeAssignment(line)
	if err != nil {
		t.Fatalf("DecodeAssignment failed: %v", err)
	}
	if !decoded.IsSubmission() || decoded.FilePath != "/tmp/cli.go" {
		t.Fatalf("unexpected decode %+v", decoded)
	}
	if _, err := DecodeAssignment("Go|desc|S1000"); err == nil {
		t.Fatalf("expected error for 3-field assignment line")
	}
}

func TestEncodeRejectsReservedDelimiters(t *testing.T) {
	if _, err := EncodeAssignment(model.Assignment{SkillName: "Go", Description: "a|b"}); !errors.Is(err, ErrReservedDelimiter) {
		t.Fatalf("expected ErrReservedDelimiter for description containing |, got %v", err)
	}
	if _, err := EncodeQuiz(&model.Quiz{SkillName: "Go", Questions: []model.Question{{Text: "a;b", Options: []string{"x"}, CorrectIndex: 0}}}); !errors.Is(err, ErrReservedDelimiter) {
		t.Fatalf("expected ErrReservedDelimiter for question text containing ;, got %v", err)
	}
	if _, err := EncodeUser(&model.Person{ID: "S1000", Name: "Ann", Password: "pw", Role: model.RoleSeeker, EnrolledSessionNames: []string{"a,b"}}); !errors.Is(err, ErrReservedDelimiter) {
		t.Fatalf("expected ErrReservedDelimiter for enrolled name containing \",\", got %v", err)
	}
}

func TestResultAndLectureRoundTrip(t *testing.T) {
	res := model.QuizResult{SeekerID: "S1000", SkillName: "Go", ScorePercent: 66}
	line, err := EncodeResult(res)
	if err != nil {
		t.Fatalf("EncodeResult failed: %v", err)
	}
	if line != "S1000|Go|66" {
		t.Fatalf("unexpected line %q", line)
	}
	if _, err := DecodeResult("S1000|Go|high"); err == nil {
		t.Fatalf("expected error for non-numeric score")
	}

	lec := &model.Lecture{SkillName: "Go", MediaPath: "/videos/go.mp4"}
	line, err = EncodeLecture(lec)
	if err != nil {
		t.Fatalf("EncodeLecture failed: %v", err)
	}
	decoded, err := DecodeLecture(line)
	if err != nil {
		t.Fatalf("DecodeLecture failed: %v", err)
	}
	if decoded.MediaPath != lec.MediaPath {
		t.Fatalf("unexpected decode %+v", decoded)
	}
}
