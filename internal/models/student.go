package models

import (
	"fmt"
	"math"
	"strconv"
)

// Student is one roster record. Records have no identity of their own;
// their position in the roster is what tells two equal records apart.
type Student struct {
	Name  string  `json:"name"`
	Age   int     `json:"age"`
	Grade float64 `json:"grade"`
}

// NewStudent builds a Student value
func NewStudent(name string, age int, grade float64) Student {
	return Student{Name: name, Age: age, Grade: grade}
}

// FormatGrade renders a grade as the shortest decimal text that parses back
// to the same float64. Infinities are written as Infinity and -Infinity.
func FormatGrade(grade float64) string {
	switch {
	case math.IsInf(grade, 1):
		return "Infinity"
	case math.IsInf(grade, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(grade, 'f', -1, 64)
}

// String renders the student the way the interactive session prints it:
// Student{name='Alice', age=20, grade=3.8}
func (s Student) String() string {
	return fmt.Sprintf("Student{name='%s', age=%d, grade=%s}", s.Name, s.Age, FormatGrade(s.Grade))
}
