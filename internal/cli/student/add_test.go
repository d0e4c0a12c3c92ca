package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/testutil"
	clitest "github.com/thenoetrevino/roster/internal/testutil/cli"
)

func TestAddStudent_Positive(t *testing.T) {
	app, path := clitest.SetupCLITest(t, testutil.SampleRoster...)

	output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{
		"--name", "Dan", "--age", "21", "--grade", "3.7",
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Added Student{name='Dan', age=21, grade=3.7} (4 students in ")

	assert.Equal(t, []string{
		"Alice,20,3.8",
		"Bob,22,3.5",
		"Cara,19,3.9",
		"Dan,21,3.7",
	}, testutil.ReadRosterLines(t, path))
}

func TestAddStudent_JSON(t *testing.T) {
	app, _ := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{
		"--name", "Eve", "--age", "0", "--grade", "-1", "--json",
	})

	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	data := result["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, "Eve", data["student"].(map[string]any)["name"])
}

func TestAddStudent_RewritesNormalizedFile(t *testing.T) {
	// Malformed lines are dropped and grades rewritten in shortest form
	app, path := clitest.SetupCLITest(t, " Alice , 20 , 3.80", "junk")

	_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{
		"--name", "Bob", "--age", "22", "--grade", "3.5",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice,20,3.8", "Bob,22,3.5"}, testutil.ReadRosterLines(t, path))
}

func TestAddStudent_Negative(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing grade",
			args:    []string{"--name", "Dan", "--age", "21"},
			wantErr: "--grade is required",
		},
		{
			name:    "blank name",
			args:    []string{"--name", "  ", "--age", "21", "--grade", "3"},
			wantErr: "name is required",
		},
		{
			name:    "negative age",
			args:    []string{"--name", "Dan", "--age", "-1", "--grade", "3"},
			wantErr: "age must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, path := clitest.SetupCLITest(t, testutil.SampleRoster...)

			_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), tt.args)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
			assert.Equal(t, testutil.SampleRoster, testutil.ReadRosterLines(t, path), "file untouched")
		})
	}
}

func TestAddStudent_MalformedFileIsNotOverwritten(t *testing.T) {
	app, path := clitest.SetupCLITest(t, "Alice,20,x")

	_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{
		"--name", "Dan", "--age", "21", "--grade", "3.7",
	})

	require.Error(t, err)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCodeFor(err))
	assert.Equal(t, []string{"Alice,20,x"}, testutil.ReadRosterLines(t, path))
}
