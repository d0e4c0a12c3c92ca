package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/config"
)

func TestFormValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		validate func(string) error
		input    string
		wantErr  string
	}{
		{"name ok", validateName, "Dan", ""},
		{"name blank", validateName, "   ", "name is required"},
		{"name with delimiter", validateName, "Dan, Jr", "name cannot contain a comma"},
		{"age ok", validateAge, " 21 ", ""},
		{"age zero", validateAge, "0", ""},
		{"age negative", validateAge, "-1", "age must not be negative"},
		{"age text", validateAge, "old", "age must be a whole number"},
		{"grade ok", validateGrade, "3.75", ""},
		{"grade negative", validateGrade, "-2", ""},
		{"grade text", validateGrade, "A+", "grade must be a number"},
		{"grade digit separators", validateGrade, "3_5", "grade must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestStudentForm_Request(t *testing.T) {
	t.Parallel()

	f := &studentForm{name: " Dan ", age: "21", grade: "3.70"}

	req, err := f.request()
	require.NoError(t, err)
	assert.Equal(t, "Dan", req.Name)
	assert.Equal(t, 21, req.Age)
	assert.Equal(t, 3.7, req.Grade)

	_, err = (&studentForm{name: "Dan", age: "x", grade: "1"}).request()
	assert.ErrorContains(t, err, `invalid age "x"`)
}

func TestNewStudentForm(t *testing.T) {
	t.Parallel()

	form := newStudentForm(&studentForm{}, config.DefaultColorScheme())
	assert.NotNil(t, form)
}
