package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/skillshare/internal/codec"
)

// One file per record type, written wholesale at shutdown and read wholesale
// at startup. A missing file means the registry starts empty; a malformed
// line is skipped with a warning and never aborts the load.
const (
	usersFile       = "users.txt"
	sessionsFile    = "sessions.txt"
	requestsFile    = "requests.txt"
	resultsFile     = "results.txt"
	lecturesFile    = "lectures.txt"
	quizzesFile     = "quizzes.txt"
	assignmentsFile = "assignments.txt"
	submissionsFile = "submissions.txt"
)

// Load clears the store and reads every data file from dir. Users load
// first so their ids seed the generator and later files can attach
// per-seeker state.
func (s *Store) Load(dir string) error {
	s.Clear()

	if err := s.loadLines(dir, usersFile, s.loadUserLine); err != nil {
		return err
	}
	if err := s.loadLines(dir, sessionsFile, s.loadSessionLine); err != nil {
		return err
	}
	if err := s.loadLines(dir, requestsFile, s.loadRequestLine); err != nil {
		return err
	}
	if err := s.loadLines(dir, resultsFile, s.loadResultLine); err != nil {
		return err
	}
	if err := s.loadLines(dir, lecturesFile, s.loadLectureLine); err != nil {
		return err
	}
	if err := s.loadLines(dir, quizzesFile, s.loadQuizLine); err != nil {
		return err
	}
	if err := s.loadLines(dir, assignmentsFile, s.loadAssignmentLine); err != nil {
		return err
	}
	return s.loadLines(dir, submissionsFile, s.loadSubmissionLine)
}

func (s *Store) loadLines(dir, name string, handle func(line string) error) error {
	path := filepath.Join(dir, name)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only data file.
			_ = cerr
		}
	}()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if err := handle(line); err != nil {
			logErrf("skipping %s line %d: %v\n", name, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return nil
}

func (s *Store) loadUserLine(line string) error {
	p, err := codec.DecodeUser(line)
	if err != nil {
		return err
	}
	if err := s.ids.Observe(p.ID); err != nil {
		logErrf("id counter not advanced: %v\n", err)
	}
	s.insertUser(p)
	return nil
}

func (s *Store) loadSessionLine(line string) error {
	session, err := codec.DecodeSession(line)
	if err != nil {
		return err
	}
	s.sessions.Add(session)
	return nil
}

func (s *Store) loadRequestLine(line string) error {
	req, err := codec.DecodeRequest(line)
	if err != nil {
		return err
	}
	s.requests.Add(req)
	if seeker, ok := s.users[req.RequesterID]; ok && seeker.IsSeeker() {
		s.attachRequest(seeker, req)
	}
	return nil
}

func (s *Store) loadResultLine(line string) error {
	result, err := codec.DecodeResult(line)
	if err != nil {
		return err
	}
	s.results.Add(result)
	return nil
}

func (s *Store) loadLectureLine(line string) error {
	lecture, err := codec.DecodeLecture(line)
	if err != nil {
		return err
	}
	s.lectures.Add(lecture)
	return nil
}

func (s *Store) loadQuizLine(line string) error {
	quiz, err := codec.DecodeQuiz(line)
	if err != nil {
		return err
	}
	s.quizzes.Add(quiz)
	return nil
}

func (s *Store) loadAssignmentLine(line string) error {
	a, err := codec.DecodeAssignment(line)
	if err != nil {
		return err
	}
	s.assignments.Add(a)
	return nil
}

func (s *Store) loadSubmissionLine(line string) error {
	a, err := codec.DecodeAssignment(line)
	if err != nil {
		return err
	}
	s.submissions.Add(a)
	return nil
}

// Save writes every registry to its data file in dir, creating the
// directory if needed. A record that fails to encode (reserved delimiter in
// free text) is skipped with a warning rather than corrupting the file.
func (s *Store) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := writeLines(filepath.Join(dir, usersFile), encodeAll(usersFile, s.Users(), codec.EncodeUser)); err != nil {
		return err
	}
	if err := writeLines(filepath.Join(dir, sessionsFile), encodeAll(sessionsFile, s.Sessions(), codec.EncodeSession)); err != nil {
		return err
	}
	if err := writeLines(filepath.Join(dir, requestsFile), encodeAll(requestsFile, s.Requests(), codec.EncodeRequest)); err != nil {
		return err
	}
	if err := writeLines(filepath.Join(dir, resultsFile), encodeAll(resultsFile, s.Results(), codec.EncodeResult)); err != nil {
		return err
	}
	if err := writeLines(filepath.Join(dir, lecturesFile), encodeAll(lecturesFile, s.Lectures(), codec.EncodeLecture)); err != nil {
		return err
	}
	if err := writeLines(filepath.Join(dir, quizzesFile), encodeAll(quizzesFile, s.Quizzes(), codec.EncodeQuiz)); err != nil {
		return err
	}
	if err := writeLines(filepath.Join(dir, assignmentsFile), encodeAll(assignmentsFile, s.Assignments(), codec.EncodeAssignment)); err != nil {
		return err
	}
	return writeLines(filepath.Join(dir, submissionsFile), encodeAll(submissionsFile, s.Submissions(), codec.EncodeAssignment))
}

func encodeAll[T any](name string, items []T, encode func(T) (string, error)) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		line, err := encode(item)
		if err != nil {
			logErrf("skipping %s record: %v\n", name, err)
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func writeLines(path string, lines []string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "skillshare-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp data file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, line := range lines {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return fmt.Errorf("failed to write data file: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush data file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close data file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
