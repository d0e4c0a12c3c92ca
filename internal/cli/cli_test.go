package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/config"
)

func TestGetCLIFromContext_UsesInjectedApp(t *testing.T) {
	injected := app.New(config.Default())
	ctx := WithApp(context.Background(), injected)

	c, err := GetCLIFromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, injected, c.App)

	// Closing a borrowed CLI leaves the App to its owner
	require.NoError(t, c.Close())
	require.NoError(t, injected.Close())
}

func TestGetCLIFromContext_BuildsFromConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv(config.DataFileEnv, "from-env.txt")

	c, err := GetCLIFromContext(context.Background())
	require.NoError(t, err)
	defer func() {
		_ = c.Close()
	}()

	assert.Equal(t, "from-env.txt", c.App.Config.DataFile)
}
