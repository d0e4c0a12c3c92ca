// Package roster holds the in-memory student roster and its flat-file codec
package roster

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"

	"github.com/thenoetrevino/roster/internal/models"
)

// maxLineSize bounds a single record line when reading a roster file
const maxLineSize = 1024 * 1024

// Store owns an ordered sequence of students. Insertion order is preserved
// and duplicates are allowed. A Store is not safe for concurrent use.
type Store struct {
	students []models.Student
}

// NewStore creates an empty roster
func NewStore() *Store {
	return &Store{students: []models.Student{}}
}

// Load reads the roster file at path and appends every record it contains.
//
// Lines with the wrong number of fields are skipped without error. A record
// whose age or grade is not numeric fails the whole load with an error
// wrapping models.ErrFormat; a file that cannot be opened or read fails with
// models.ErrFileAccess. Records are only appended once the whole file parsed,
// so a failed load leaves the store unchanged.
func (s *Store) Load(path string) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrFileAccess, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", models.ErrFileAccess, closeErr)
		}
	}()

	var staged []models.Student
	skipped := 0
	lineNo := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lineNo++
		student, ok, parseErr := ParseLine(scanner.Text())
		if parseErr != nil {
			return fmt.Errorf("%s line %d: %w", path, lineNo, parseErr)
		}
		if !ok {
			skipped++
			continue
		}
		staged = append(staged, student)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: reading %s: %w", models.ErrFileAccess, path, err)
	}

	s.students = append(s.students, staged...)

	slog.Debug("roster loaded", "path", path, "records", len(staged), "skipped", skipped)
	return nil
}

// Add appends one student to the end of the roster
func (s *Store) Add(student models.Student) {
	s.students = append(s.students, student)
}

// Save writes every record to path, one per line, in roster order. The file
// is created or truncated; the write is not atomic, so a failure part way
// through can leave a partial file behind.
func (s *Store) Save(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrFileAccess, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", models.ErrFileAccess, closeErr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, student := range s.students {
		if _, err := w.WriteString(FormatLine(student) + "\n"); err != nil {
			return fmt.Errorf("%w: writing %s: %w", models.ErrFileAccess, path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: flushing %s: %w", models.ErrFileAccess, path, err)
	}

	slog.Debug("roster saved", "path", path, "records", len(s.students))
	return nil
}

// SortByGradeDescending returns the students ordered by grade, highest first.
// Equal grades keep their roster order. The roster itself is not reordered.
// NaN grades sort ahead of every number.
func (s *Store) SortByGradeDescending() []models.Student {
	sorted := slices.Clone(s.students)
	slices.SortStableFunc(sorted, func(a, b models.Student) int {
		return compareGrades(b.Grade, a.Grade)
	})
	return sorted
}

// compareGrades is a total order on grades: NaN ranks above every number and
// positive zero above negative zero
func compareGrades(a, b float64) int {
	switch aNaN, bNaN := math.IsNaN(a), math.IsNaN(b); {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	if c := cmp.Compare(a, b); c != 0 {
		return c
	}
	switch aNeg, bNeg := math.Signbit(a), math.Signbit(b); {
	case aNeg == bNeg:
		return 0
	case aNeg:
		return -1
	default:
		return 1
	}
}

// FilterByMinGrade returns the students whose grade is at least threshold,
// in roster order. An empty result is not an error.
func (s *Store) FilterByMinGrade(threshold float64) []models.Student {
	filtered := []models.Student{}
	for _, student := range s.students {
		if student.Grade >= threshold {
			filtered = append(filtered, student)
		}
	}
	return filtered
}

// Students returns a copy of the roster in insertion order
func (s *Store) Students() []models.Student {
	return slices.Clone(s.students)
}

// Len returns the number of records held
func (s *Store) Len() int {
	return len(s.students)
}

// Replace discards the current records and holds a copy of students instead
func (s *Store) Replace(students []models.Student) {
	s.students = slices.Clone(students)
	if s.students == nil {
		s.students = []models.Student{}
	}
}

// IsFormatError reports whether err came from a malformed numeric field
func IsFormatError(err error) bool {
	return errors.Is(err, models.ErrFormat)
}

// IsFileAccessError reports whether err came from opening, reading or writing the roster file
func IsFileAccessError(err error) bool {
	return errors.Is(err, models.ErrFileAccess)
}
