package roster

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/thenoetrevino/roster/internal/models"
)

// Delimiter separates the fields of a record line. Names are written verbatim,
// so a name containing the delimiter will not survive a save and reload.
const Delimiter = ","

// fieldCount is the number of fields in a well-formed record line
const fieldCount = 3

// ParseLine decodes one record line of the form "name,age,grade".
//
// A line that does not split into exactly three fields is not a record:
// ok is false and err is nil so the caller can skip it. Trailing empty fields
// are dropped before counting, so "a,1,2," is a record and "a,1," is not.
// A three-field line whose age or grade is not numeric returns an error
// wrapping models.ErrFormat.
func ParseLine(line string) (student models.Student, ok bool, err error) {
	parts := splitFields(line)
	if len(parts) != fieldCount {
		return models.Student{}, false, nil
	}

	name := strings.TrimSpace(parts[0])

	age, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return models.Student{}, false, fmt.Errorf("%w: invalid age %q", models.ErrFormat, strings.TrimSpace(parts[1]))
	}

	grade, err := ParseGrade(strings.TrimSpace(parts[2]))
	if err != nil {
		return models.Student{}, false, fmt.Errorf("%w: invalid grade %q", models.ErrFormat, strings.TrimSpace(parts[2]))
	}

	return models.NewStudent(name, age, grade), true, nil
}

// ParseGrade reads a decimal or hexadecimal floating point grade. Digit
// separators are rejected, and the only spellings of the non-finite values are
// NaN and Infinity with an optional sign. A finite value too large for a
// float64 becomes an infinity.
func ParseGrade(text string) (float64, error) {
	if strings.ContainsRune(text, '_') {
		return 0, strconv.ErrSyntax
	}

	grade, err := strconv.ParseFloat(text, 64)
	if errors.Is(err, strconv.ErrRange) {
		return grade, nil
	}
	if err != nil {
		return 0, err
	}

	if math.IsInf(grade, 0) || math.IsNaN(grade) {
		switch strings.TrimLeft(text, "+-") {
		case "NaN", "Infinity":
		default:
			return 0, strconv.ErrSyntax
		}
	}
	return grade, nil
}

// FormatLine encodes a student as "name,age,grade" without a line terminator
func FormatLine(s models.Student) string {
	return s.Name + Delimiter + strconv.Itoa(s.Age) + Delimiter + models.FormatGrade(s.Grade)
}

// splitFields splits on the delimiter and drops trailing empty fields
func splitFields(line string) []string {
	parts := strings.Split(line, Delimiter)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
