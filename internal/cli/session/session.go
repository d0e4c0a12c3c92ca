// Package session runs the interactive roster workflow: load the roster file,
// show it by grade, filter it by a threshold read from the user, append one
// student read from the user and save the file.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/roster"
)

var (
	// ErrNoInput is returned when the input ends before a prompt was answered
	ErrNoInput = errors.New("no input")

	// ErrInvalidInput is returned when an answer is not the number a prompt asked for
	ErrInvalidInput = errors.New("invalid input")
)

// Session holds the streams and the roster file of one interactive run
type Session struct {
	in   *bufio.Reader
	out  io.Writer
	path string
}

// New creates a session reading answers from in and writing to out
func New(in io.Reader, out io.Writer, path string) *Session {
	return &Session{
		in:   bufio.NewReader(in),
		out:  out,
		path: path,
	}
}

// Run executes the workflow once. The first failing step ends the run and
// its error is returned; nothing after it is attempted.
func (s *Session) Run(ctx context.Context) error {
	store := roster.NewStore()
	if err := store.Load(s.path); err != nil {
		return err
	}
	slog.Info("roster loaded", "path", s.path, "records", store.Len())
	fmt.Fprintf(s.out, "Data loaded from '%s'.\n", s.path)

	fmt.Fprintln(s.out, "\nSorted by grade:")
	cli.PrintStudents(s.out, store.SortByGradeDescending())

	threshold, err := s.promptFloat(ctx, "\nEnter minimum grade: ")
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\nStudents with grade >= %s:\n", models.FormatGrade(threshold))
	cli.PrintStudents(s.out, store.FilterByMinGrade(threshold))

	student, err := s.promptStudent(ctx)
	if err != nil {
		return err
	}
	if strings.ContainsAny(student.Name, roster.Delimiter) {
		slog.Warn("student name contains the field delimiter and will not reload cleanly", "name", student.Name)
	}
	store.Add(student)
	fmt.Fprintln(s.out, "Student added.")

	if err := store.Save(s.path); err != nil {
		return err
	}
	slog.Info("roster saved", "path", s.path, "records", store.Len())

	fmt.Fprintf(s.out, "Data saved to '%s'.\n", s.path)
	return nil
}

// promptStudent reads a name, an age and a grade, one line each
func (s *Session) promptStudent(ctx context.Context) (models.Student, error) {
	name, err := s.prompt(ctx, "\nEnter new student's name: ")
	if err != nil {
		return models.Student{}, err
	}

	age, err := s.promptInt(ctx, "Enter new student's age: ")
	if err != nil {
		return models.Student{}, err
	}
	if age < 0 {
		return models.Student{}, fmt.Errorf("invalid age %d: must not be negative", age)
	}

	grade, err := s.promptFloat(ctx, "Enter new student's grade: ")
	if err != nil {
		return models.Student{}, err
	}

	return models.NewStudent(strings.TrimSpace(name), age, grade), nil
}

// prompt writes label and returns the next input line without its terminator
func (s *Session) prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) promptInt(ctx context.Context, label string) (int, error) {
	line, err := s.prompt(ctx, label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, strings.TrimSpace(line))
	}
	return v, nil
}

func (s *Session) promptFloat(ctx context.Context, label string) (float64, error) {
	line, err := s.prompt(ctx, label)
	if err != nil {
		return 0, err
	}
	v, err := roster.ParseGrade(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, strings.TrimSpace(line))
	}
	return v, nil
}

// Report runs the workflow and writes any failure to out as
// "Error: <message>". It never fails: the interactive command always exits
// normally.
func Report(ctx context.Context, in io.Reader, out io.Writer, path string) {
	if err := New(in, out, path).Run(ctx); err != nil {
		slog.Error("session failed", "path", path, "error", err)
		fmt.Fprintf(out, "Error: %s\n", err)
	}
}
