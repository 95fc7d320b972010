//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
	"github.com/rios0rios0/bootstrap-ci/internal/infrastructure/controllers"
	"github.com/rios0rios0/bootstrap-ci/test/domain/commanddoubles"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bootstrap-ci.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newCobraCommand(
	controller entities.Controller,
	args ...string,
) (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	bind := controller.GetBind()
	cmd := &cobra.Command{
		Use:           bind.Use,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          controller.Execute,
	}
	controllers.AddGlobalFlags(cmd)
	cmd.SetOut(out)
	cmd.SetArgs(args)
	return cmd, out
}

func TestBootstrapControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should prefer the positional repository over GITHUB_REPOSITORY", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBootstrapCommand{}
		env := &entities.Environment{Repository: "acme/from-env", GitHubToken: "env-token"}
		controller := controllers.NewBootstrapController(stub, env)
		cfg := writeConfig(t, "marker_file: pom.xml\n")
		cmd, _ := newCobraCommand(controller, "--config", cfg, "acme/from-arg")

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, "acme/from-arg", stub.LastOpts().Repository)
		assert.Equal(t, "env-token", stub.LastOpts().Token)
	})

	t.Run("should fall back to GITHUB_REPOSITORY", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBootstrapCommand{}
		env := &entities.Environment{Repository: "acme/from-env", GHToken: "pat"}
		controller := controllers.NewBootstrapController(stub, env)
		cmd, _ := newCobraCommand(controller, "--config", writeConfig(t, "{}\n"))

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, "acme/from-env", stub.LastOpts().Repository)
		assert.Equal(t, "pat", stub.LastOpts().Token)
	})

	t.Run("should resolve the token as flag, then config, then environment", func(t *testing.T) {
		t.Parallel()

		// given
		env := &entities.Environment{GitHubToken: "env-token"}
		cfg := writeConfig(t, "token: config-token\n")
		withFlag := &commanddoubles.StubBootstrapCommand{}
		withConfig := &commanddoubles.StubBootstrapCommand{}
		flagCmd, _ := newCobraCommand(
			controllers.NewBootstrapController(withFlag, env),
			"--config", cfg, "--token", "flag-token", "acme/svc",
		)
		configCmd, _ := newCobraCommand(
			controllers.NewBootstrapController(withConfig, env),
			"--config", cfg, "acme/svc",
		)

		// when
		flagErr := flagCmd.Execute()
		configErr := configCmd.Execute()

		// then
		require.NoError(t, flagErr)
		require.NoError(t, configErr)
		assert.Equal(t, "flag-token", withFlag.LastOpts().Token)
		assert.Equal(t, "config-token", withConfig.LastOpts().Token)
	})

	t.Run("should pass the dry-run and defer-branch flags and the command output", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBootstrapCommand{}
		controller := controllers.NewBootstrapController(stub, &entities.Environment{})
		cmd, out := newCobraCommand(controller,
			"--config", writeConfig(t, "{}\n"), "--dry-run", "--defer-branch", "acme/svc",
		)

		// when
		err := cmd.Execute()

		// then
		require.NoError(t, err)
		assert.True(t, stub.LastOpts().DryRun)
		assert.True(t, stub.LastOpts().DeferBranch)
		assert.Same(t, out, stub.LastOpts().Output)
	})

	t.Run("should append the usage line to an invalid repository error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBootstrapCommand{
			Errors: map[string]error{"": entities.ErrInvalidRepository},
		}
		controller := controllers.NewBootstrapController(stub, &entities.Environment{})
		cmd, _ := newCobraCommand(controller, "--config", writeConfig(t, "{}\n"))

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, entities.ErrInvalidRepository)
		assert.Contains(t, err.Error(), "Usage: bootstrap-ci <owner>/<repo>")
	})

	t.Run("should return command errors unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		boom := errors.New("boom")
		stub := &commanddoubles.StubBootstrapCommand{Errors: map[string]error{"acme/svc": boom}}
		controller := controllers.NewBootstrapController(stub, &entities.Environment{})
		cmd, _ := newCobraCommand(controller, "--config", writeConfig(t, "{}\n"), "acme/svc")

		// when
		err := cmd.Execute()

		// then
		require.ErrorIs(t, err, boom)
		assert.NotContains(t, err.Error(), "Usage:")
	})

	t.Run("should fail on an invalid config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubBootstrapCommand{}
		controller := controllers.NewBootstrapController(stub, &entities.Environment{})
		cmd, _ := newCobraCommand(controller, "--config", writeConfig(t, "marker_file: a/b\n"), "acme/svc")

		// when
		err := cmd.Execute()

		// then
		require.ErrorContains(t, err, "failed to load config")
		assert.Zero(t, stub.ExecuteCallCount)
	})
}
