//go:build unit

package main //nolint:testpackage // tests unexported functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should wire the root command with the run subcommand and global flags", func(t *testing.T) {
		t.Parallel()

		// given
		appContext, err := injectAppContext()
		require.NoError(t, err)

		// when
		cmd := buildRootCommand(appContext)

		// then
		assert.Equal(t, "bootstrap-ci", cmd.Name())
		run, _, findErr := cmd.Find([]string{"run"})
		require.NoError(t, findErr)
		assert.Equal(t, "run", run.Name())
		for _, flag := range []string{"config", "token", "dry-run", "verbose", "defer-branch"} {
			assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
		}
	})

	t.Run("should reject more than one positional argument", func(t *testing.T) {
		t.Parallel()

		// given
		appContext, err := injectAppContext()
		require.NoError(t, err)
		cmd := buildRootCommand(appContext)

		// when
		argsErr := cmd.Args(cmd, []string{"acme/one", "acme/two"})

		// then
		require.Error(t, argsErr)
	})
}
