package controllers

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/commands"
	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
)

// BootstrapController handles the root command with an optional owner/repo argument.
type BootstrapController struct {
	command     commands.Bootstrap
	environment *entities.Environment
}

// NewBootstrapController creates a new BootstrapController.
func NewBootstrapController(
	command commands.Bootstrap,
	environment *entities.Environment,
) *BootstrapController {
	return &BootstrapController{command: command, environment: environment}
}

// GetBind returns the Cobra command metadata for the bootstrap controller.
func (it *BootstrapController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bootstrap-ci [owner/repo]",
		Short: "Bootstrap a Dockerfile and CI workflow for a Maven repository",
		Long: `Detect whether a GitHub repository is a Maven project (pom.xml at the root of the
default branch) and make sure its Dockerfile and CI workflow match the built-in templates.

Changed files are committed to a new agent/bootstrap-ci-<timestamp> branch and a pull
request is opened against the default branch. Files already matching their template
(ignoring line endings and trailing blank lines) are left untouched.

The repository defaults to $GITHUB_REPOSITORY and the token to $GITHUB_TOKEN or $GH_TOKEN.`,
	}
}

// Execute runs the single-repository reconciliation.
func (it *BootstrapController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	flags := readGlobalFlags(cmd)

	settings, err := loadSettings(flags.configPath, false)
	if err != nil {
		return err
	}

	repository := it.environment.Repository
	if len(args) > 0 {
		repository = args[0]
	}

	_, err = it.command.Execute(ctx, settings, commands.BootstrapOptions{
		Repository:  repository,
		Token:       resolveToken(flags.token, settings, it.environment),
		DryRun:      flags.dryRun,
		DeferBranch: flags.deferBranch,
		Output:      cmd.OutOrStdout(),
	})
	if errors.Is(err, entities.ErrInvalidRepository) {
		return fmt.Errorf("%w\nUsage: bootstrap-ci <owner>/<repo>", err)
	}
	return err
}

// resolveToken applies flag > config file > GITHUB_TOKEN > GH_TOKEN.
func resolveToken(flagToken string, settings *entities.Settings, environment *entities.Environment) string {
	if flagToken != "" {
		return flagToken
	}
	if settings != nil && settings.Token != "" {
		return settings.Token
	}
	if environment != nil {
		return environment.Token()
	}
	return ""
}

// loadSettings reads the config file given by --config, or the first one found
// in the default locations. Without any file the defaults apply unless required.
func loadSettings(configPath string, required bool) (*entities.Settings, error) {
	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindConfigFile()
		if err != nil {
			if required {
				return nil, fmt.Errorf(
					"no config file found: %w\nSpecify one with --config or create bootstrap-ci.yaml",
					err,
				)
			}
			logger.Debug("No config file found, using defaults")
			return entities.NewDefaultSettings(), nil
		}
	}

	logger.Infof("Using config file: %s", cfgPath)

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}
