// Package report renders fixed-width text reports over store data.
package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/skillshare/internal/model"
)

// RenderSessionTable prints every session with its enrollment and rating.
func RenderSessionTable(w io.Writer, sessions []*model.Session) error {
	if _, err := fmt.Fprintln(w, "Sessions"); err != nil {
		return err
	}
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}

	headers := []string{"Code", "Skill", "Timing", "Instructor", "Minutes", "Enrolled", "Rating"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rating := "-"
		if s.RatingCount > 0 {
			rating = fmt.Sprintf("%.1f", s.AverageRating())
		}
		rows = append(rows, []string{
			s.SkillCode,
			s.SkillName,
			s.Timing,
			s.Instructor,
			fmt.Sprintf("%d", s.DurationMinutes),
			fmt.Sprintf("%d/%d", len(s.EnrolledUserIDs), model.MaxEnrollment),
			rating,
		})
	}
	rightAlign := map[int]bool{4: true, 5: true, 6: true}
	return writeLines(w, formatTable(headers, rows, rightAlign))
}

// RenderRequestTable prints the pending request queue.
func RenderRequestTable(w io.Writer, requests []model.SessionRequest) error {
	if _, err := fmt.Fprintln(w, "Pending Requests"); err != nil {
		return err
	}
	if len(requests) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}

	headers := []string{"Skill", "Requester", "Timing", "Minutes", "Status"}
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []string{
			r.SkillName,
			r.RequesterID,
			r.Timing,
			fmt.Sprintf("%d", r.DurationMinutes),
			r.Status.String(),
		})
	}
	rightAlign := map[int]bool{3: true}
	return writeLines(w, formatTable(headers, rows, rightAlign))
}

// RenderResultTable prints a seeker's quiz results.
func RenderResultTable(w io.Writer, results []model.QuizResult) error {
	if _, err := fmt.Fprintln(w, "Quiz Results"); err != nil {
		return err
	}
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}

	headers := []string{"Seeker", "Skill", "Score"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.SeekerID,
			r.SkillName,
			fmt.Sprintf("%d%%", r.ScorePercent),
		})
	}
	rightAlign := map[int]bool{2: true}
	return writeLines(w, formatTable(headers, rows, rightAlign))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
