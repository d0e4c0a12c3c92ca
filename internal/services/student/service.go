// Package student runs roster operations against a roster file: every call
// loads the file into a fresh store, so no roster state outlives a call.
package student

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/roster"
)

// Service defines all student-related business operations
type Service interface {
	// Read operations
	ListStudents(ctx context.Context, req ListStudentsRequest) ([]models.Student, error)
	FilterStudents(ctx context.Context, req FilterStudentsRequest) ([]models.Student, error)

	// Write operations
	AddStudent(ctx context.Context, req AddStudentRequest) (*AddStudentResult, error)
}

// ListStudentsRequest encapsulates data for listing a roster file
type ListStudentsRequest struct {
	Path        string
	SortByGrade bool
}

// FilterStudentsRequest encapsulates data for filtering a roster file
type FilterStudentsRequest struct {
	Path     string
	MinGrade float64
}

// AddStudentRequest encapsulates data for appending a student to a roster file
type AddStudentRequest struct {
	Path  string
	Name  string
	Age   int
	Grade float64
}

// AddStudentResult reports the appended record and the resulting roster size
type AddStudentResult struct {
	Student models.Student
	Total   int
}

// service implements Service interface
type service struct{}

// NewService creates a new student service
func NewService() Service {
	return &service{}
}

// ListStudents loads the roster file and returns its records, optionally by grade
func (s *service) ListStudents(ctx context.Context, req ListStudentsRequest) ([]models.Student, error) {
	store, err := load(req.Path)
	if err != nil {
		return nil, err
	}

	if req.SortByGrade {
		return store.SortByGradeDescending(), nil
	}
	return store.Students(), nil
}

// FilterStudents loads the roster file and returns records with grade >= MinGrade
func (s *service) FilterStudents(ctx context.Context, req FilterStudentsRequest) ([]models.Student, error) {
	store, err := load(req.Path)
	if err != nil {
		return nil, err
	}
	return store.FilterByMinGrade(req.MinGrade), nil
}

// AddStudent loads the roster file, appends one record and saves the file
func (s *service) AddStudent(ctx context.Context, req AddStudentRequest) (*AddStudentResult, error) {
	if req.Age < 0 {
		return nil, ErrNegativeAge
	}

	store, err := load(req.Path)
	if err != nil {
		return nil, err
	}

	student := models.NewStudent(strings.TrimSpace(req.Name), req.Age, req.Grade)
	if strings.ContainsAny(student.Name, roster.Delimiter+"\n") {
		slog.Warn("student name contains the field delimiter and will not reload cleanly", "name", student.Name)
	}

	store.Add(student)
	if err := store.Save(req.Path); err != nil {
		return nil, err
	}

	return &AddStudentResult{Student: student, Total: store.Len()}, nil
}

// load reads path into a fresh store
func load(path string) (*roster.Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	store := roster.NewStore()
	if err := store.Load(path); err != nil {
		return nil, err
	}
	return store, nil
}
