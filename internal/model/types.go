// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// Role identifies the kind of platform user.
type Role int

const (
	RoleSeeker Role = iota
	RoleProvider
)

// String returns the wire word for the role.
func (r Role) String() string {
	switch r {
	case RoleSeeker:
		return "seeker"
	case RoleProvider:
		return "provider"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// ParseRole maps a wire word to a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "seeker":
		return RoleSeeker, nil
	case "provider":
		return RoleProvider, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

// Person is a registered user. Seeker-only fields stay empty for providers.
type Person struct {
	ID       string
	Name     string
	Password string
	Role     Role

	// Seeker state. EnrolledSessionNames keeps insertion order and may hold
	// the same name twice when two sessions share a skill name.
	EnrolledSessionNames []string
	Requests             []SessionRequest
}

// IsSeeker reports whether the person holds the seeker role.
func (p *Person) IsSeeker() bool { return p.Role == RoleSeeker }

// HasEnrolledName reports whether the seeker's enrolled-names list contains
// the given skill name.
func (p *Person) HasEnrolledName(skillName string) bool {
	for _, name := range p.EnrolledSessionNames {
		if name == skillName {
			return true
		}
	}
	return false
}

// MaxEnrollment caps the roster of a single session.
const MaxEnrollment = 50

// Session is a scheduled skill-teaching slot. SkillName is the natural key
// used for all cross-references; SkillCode is generated but never used for
// lookups.
type Session struct {
	SkillName       string
	SkillCode       string
	Timing          string
	Instructor      string
	DurationMinutes int
	RatingSum       int
	RatingCount     int
	EnrolledUserIDs []string
}

// AverageRating returns RatingSum/RatingCount, 0 with no ratings.
func (s *Session) AverageRating() float64 {
	if s.RatingCount == 0 {
		return 0
	}
	return float64(s.RatingSum) / float64(s.RatingCount)
}

// IsFull reports whether the roster reached MaxEnrollment.
func (s *Session) IsFull() bool { return len(s.EnrolledUserIDs) >= MaxEnrollment }

// IsEnrolled reports whether the user id is already on the roster.
func (s *Session) IsEnrolled(userID string) bool {
	for _, id := range s.EnrolledUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// RequestStatus is the lifecycle state of a session request.
// Pending transitions to Fulfilled or Denied, both terminal.
type RequestStatus int

const (
	StatusPending RequestStatus = iota
	StatusFulfilled
	StatusDenied
)

// String returns the wire word for the status.
func (s RequestStatus) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusFulfilled:
		return "FULFILLED"
	case StatusDenied:
		return "DENIED"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseRequestStatus maps a wire word to a RequestStatus.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING":
		return StatusPending, nil
	case "FULFILLED":
		return StatusFulfilled, nil
	case "DENIED":
		return StatusDenied, nil
	default:
		return 0, fmt.Errorf("unknown request status %q", s)
	}
}

// SessionRequest is a seeker-initiated ask for a new session.
type SessionRequest struct {
	SkillName       string
	RequesterID     string
	Timing          string
	DurationMinutes int
	Status          RequestStatus
}

// Equal reports structural equality. Status is excluded: two requests with
// the same skill, requester, timing, and duration are the same request.
func (r SessionRequest) Equal(other SessionRequest) bool {
	return r.SkillName == other.SkillName &&
		r.RequesterID == other.RequesterID &&
		r.Timing == other.Timing &&
		r.DurationMinutes == other.DurationMinutes
}

// QuizResult is the most recent quiz score for a (seeker, skill) pair.
type QuizResult struct {
	SeekerID     string
	SkillName    string
	ScorePercent int
}

// Lecture references recorded material for a skill.
type Lecture struct {
	SkillName string
	MediaPath string
}

// Question is a single multiple-choice quiz question.
type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
}

// Quiz groups the questions for one skill.
type Quiz struct {
	SkillName string
	Questions []Question
}

// Assignment is a definition when SubmitterID is empty and a submission
// otherwise. A submission carries a full copy of the definition fields.
type Assignment struct {
	SkillName   string
	Description string
	SubmitterID string
	FilePath    string
}

// IsSubmission reports whether the record carries submitter metadata.
func (a Assignment) IsSubmission() bool { return a.SubmitterID != "" }
