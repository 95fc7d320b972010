package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/commands"
	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
)

// RunController handles the "run" subcommand (batch mode).
type RunController struct {
	command     commands.Run
	environment *entities.Environment
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run, environment *entities.Environment) *RunController {
	return &RunController{command: command, environment: environment}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run",
		Short: "Bootstrap CI for every repository in the config file",
		Long: `Reconcile the Dockerfile and CI workflow of every repository listed under
'repositories' in the configuration file.

A repository that fails is logged and the run continues with the next one;
the command exits with an error if any repository failed.`,
	}
}

// Execute runs the batch mode.
func (it *RunController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	flags := readGlobalFlags(cmd)

	settings, err := loadSettings(flags.configPath, true)
	if err != nil {
		return err
	}

	logger.Info("Starting bootstrap-ci run...")

	return it.command.Execute(ctx, settings, commands.RunOptions{
		Token:       resolveToken(flags.token, settings, it.environment),
		DryRun:      flags.dryRun,
		DeferBranch: flags.deferBranch,
		Output:      cmd.OutOrStdout(),
	})
}
