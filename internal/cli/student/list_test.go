package student

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/testutil"
	clitest "github.com/thenoetrevino/roster/internal/testutil/cli"
)

func TestListStudents_Positive(t *testing.T) {
	app, _ := clitest.SetupCLITest(t, testutil.SampleRoster...)

	t.Run("file order", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)

		require.NoError(t, err)
		assert.Contains(t, output, "Students:")
		alice := strings.Index(output, "name='Alice'")
		bob := strings.Index(output, "name='Bob'")
		cara := strings.Index(output, "name='Cara'")
		assert.True(t, alice < bob && bob < cara, "records keep file order")
	})

	t.Run("sorted by grade", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--sort", "grade"})

		require.NoError(t, err)
		assert.Contains(t, output, "Sorted by grade:")
		assert.Contains(t, output,
			"Student{name='Cara', age=19, grade=3.9}\n"+
				"Student{name='Alice', age=20, grade=3.8}\n"+
				"Student{name='Bob', age=22, grade=3.5}\n")
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--sort", "grade", "--quiet"})

		require.NoError(t, err)
		assert.Equal(t, "Cara\nAlice\nBob\n", output)
	})

	t.Run("json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})

		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		assert.Len(t, result["students"].([]any), 3)
	})

	t.Run("explicit file flag", func(t *testing.T) {
		other := testutil.WriteRosterFile(t, "Zed,30,2.0")
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--file", other, "--quiet"})

		require.NoError(t, err)
		assert.Equal(t, "Zed\n", output)
	})
}

func TestListStudents_SkipsMalformedLines(t *testing.T) {
	app, _ := clitest.SetupCLITest(t, "Alice,20,3.8", "garbage", "Bob,22")

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})

	require.NoError(t, err)
	assert.Equal(t, "Alice\n", output)
}

func TestListStudents_Negative(t *testing.T) {
	t.Run("bad sort value", func(t *testing.T) {
		app, _ := clitest.SetupCLITest(t, testutil.SampleRoster...)

		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--sort", "age"})

		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
	})

	t.Run("non-numeric grade", func(t *testing.T) {
		app, _ := clitest.SetupCLITest(t, "Alice,20,3.8", "Bob,22,abc")

		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
		assert.Equal(t, cli.ExitDataErr, cli.ExitCodeFor(err))
	})

	t.Run("missing file", func(t *testing.T) {
		app, _ := clitest.SetupCLITest(t)

		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--file", t.TempDir() + "/nope.txt"})

		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	})
}
