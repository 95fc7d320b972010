package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
)

// Run is the interface for the run command (batch mode).
type Run interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RunOptions) error
}

// RunOptions holds runtime options for a batch run.
type RunOptions struct {
	Token       string
	DryRun      bool
	DeferBranch bool
	Output      io.Writer
}

// RunCommand reconciles every repository listed in the settings.
type RunCommand struct {
	bootstrap Bootstrap
}

// NewRunCommand creates a new RunCommand on top of the single-repository command.
func NewRunCommand(bootstrap Bootstrap) *RunCommand {
	return &RunCommand{bootstrap: bootstrap}
}

// Execute processes every configured repository. A failing repository is
// logged and counted; the run fails at the end if any repository failed.
func (it *RunCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	runOpts RunOptions,
) error {
	if settings == nil || len(settings.Repositories) == 0 {
		return errors.New("no repositories configured; add them under 'repositories' in the config file")
	}
	if runOpts.Token == "" {
		return entities.ErrMissingToken
	}

	totalSkipped := 0
	totalPRs := 0
	totalErrors := 0

	for _, repository := range settings.Repositories {
		logger.Infof("Processing %s...", repository)

		report, err := it.bootstrap.Execute(ctx, settings, BootstrapOptions{
			Repository:  repository,
			Token:       runOpts.Token,
			DryRun:      runOpts.DryRun,
			DeferBranch: runOpts.DeferBranch,
			Output:      runOpts.Output,
		})
		if err != nil {
			logger.Errorf("Failed to bootstrap %s: %v", repository, err)
			totalErrors++
			continue
		}

		switch {
		case report.Skipped:
			totalSkipped++
		case report.PullRequest != nil:
			logger.Infof("  Created PR #%d: %s (%s)", report.PullRequest.ID, report.PullRequest.Title, report.PullRequest.URL)
			totalPRs++
		}
	}

	logger.Infof(
		"Run complete: %d repos processed, %d skipped, %d PRs created, %d errors",
		len(settings.Repositories), totalSkipped, totalPRs, totalErrors,
	)

	if totalErrors > 0 {
		return fmt.Errorf("%d of %d repositories failed", totalErrors, len(settings.Repositories))
	}
	return nil
}
