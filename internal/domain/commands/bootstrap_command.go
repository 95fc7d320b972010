package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
	"github.com/rios0rios0/bootstrap-ci/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/bootstrap-ci/internal/infrastructure/repositories"
)

const mainBranch = "main"

// Bootstrap is the interface for the bootstrap command (single repository).
type Bootstrap interface {
	Execute(ctx context.Context, settings *entities.Settings, opts BootstrapOptions) (*entities.Report, error)
}

// BootstrapOptions holds runtime options for a single reconciliation.
type BootstrapOptions struct {
	Repository  string    // "owner/repo"
	Token       string    // already resolved by the caller
	DryRun      bool      // diff only, no branch, writes or PR
	DeferBranch bool      // create the branch only when a write is needed
	Output      io.Writer // progress lines; nil discards them
}

// BootstrapCommand reconciles the Dockerfile and CI workflow of a Maven
// repository with their templates and opens a pull request for the difference.
type BootstrapCommand struct {
	hostingRegistry *infraRepos.HostingRegistry
	templates       repositories.TemplateRepository
	clock           entities.Clock
}

// NewBootstrapCommand creates a new BootstrapCommand.
func NewBootstrapCommand(
	hostingRegistry *infraRepos.HostingRegistry,
	templates repositories.TemplateRepository,
	clock entities.Clock,
) *BootstrapCommand {
	return &BootstrapCommand{
		hostingRegistry: hostingRegistry,
		templates:       templates,
		clock:           clock,
	}
}

// reconciliation carries the state of one pass through the pipeline.
type reconciliation struct {
	hosting repositories.HostingRepository
	repo    entities.Repository
	headSHA string
	out     io.Writer
	dryRun  bool
	report  *entities.Report
}

// Execute runs classifier -> differ/writer per managed file -> PR opener.
func (it *BootstrapCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts BootstrapOptions,
) (*entities.Report, error) {
	if settings == nil {
		settings = entities.NewDefaultSettings()
	}
	out := opts.Output
	if out == nil {
		out = io.Discard
	}

	if opts.Token == "" {
		return nil, entities.ErrMissingToken
	}
	name, err := entities.ParseRepositoryName(opts.Repository)
	if err != nil {
		return nil, err
	}

	files, err := it.templates.ManagedFiles(settings.Templates)
	if err != nil {
		return nil, err
	}

	hosting, err := it.hostingRegistry.Get(settings.Provider, opts.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	repo, err := hosting.GetRepository(ctx, name)
	if err != nil {
		return nil, err
	}
	logger.Infof("Reconciling %s (default branch %q)", repo.FullName(), repo.DefaultBranch)

	run := &reconciliation{
		hosting: hosting,
		repo:    repo,
		out:     out,
		dryRun:  opts.DryRun,
		report:  &entities.Report{Repository: repo, DryRun: opts.DryRun},
	}

	if repo.DefaultBranch != mainBranch {
		fmt.Fprintf(out,
			"Default branch is '%s' (not 'main'). Script will still work, workflow triggers main.\n",
			repo.DefaultBranch,
		)
	}

	applicable, err := isApplicable(ctx, hosting, repo, settings.MarkerFile)
	if err != nil {
		return run.report, err
	}
	if !applicable {
		run.report.Skipped = true
		run.report.SkipReason = settings.MarkerFile + " not found at repo root on default branch. Skipping."
		fmt.Fprintln(out, run.report.SkipReason)
		return run.report, nil
	}

	run.headSHA, err = hosting.GetBranchHead(ctx, repo, repo.DefaultBranch)
	if err != nil {
		return run.report, err
	}

	current, err := run.readFiles(ctx, files)
	if err != nil {
		return run.report, err
	}

	run.report.Branch = entities.BranchName(settings.BranchPrefix, it.clock())
	if !settings.DeferBranch && !opts.DeferBranch {
		if branchErr := run.ensureBranch(ctx); branchErr != nil {
			return run.report, branchErr
		}
	}

	for i, file := range files {
		if writeErr := run.reconcileFile(ctx, file, current[i]); writeErr != nil {
			return run.report, writeErr
		}
	}

	changed := run.report.ChangedFiles()
	if len(changed) == 0 {
		fmt.Fprintln(out, "No changes detected vs templates; not opening PR.")
		return run.report, nil
	}

	title, description := generatePRContent(changed)
	if run.dryRun {
		fmt.Fprintf(out, "Would open PR: %s\n", title)
		return run.report, nil
	}

	pr, err := hosting.CreatePullRequest(ctx, repo, entities.PullRequestInput{
		SourceBranch: run.report.Branch,
		TargetBranch: repo.DefaultBranch,
		Title:        title,
		Description:  description,
	})
	if err != nil {
		return run.report, err
	}
	run.report.PullRequest = pr

	logger.Infof("Created PR #%d on %s", pr.ID, repo.FullName())
	fmt.Fprintf(out, "Opened PR: %s\n", pr.URL)
	return run.report, nil
}

// isApplicable reports whether the marker file exists at the root of the default branch.
func isApplicable(
	ctx context.Context,
	hosting repositories.HostingRepository,
	repo entities.Repository,
	markerFile string,
) (bool, error) {
	marker, err := hosting.GetFile(ctx, repo, markerFile, repo.DefaultBranch)
	if err != nil {
		return false, err
	}
	return marker.Exists, nil
}

// readFiles reads every managed file once, at the commit the branch starts from.
func (r *reconciliation) readFiles(
	ctx context.Context,
	files []entities.ManagedFile,
) ([]entities.RemoteFile, error) {
	current := make([]entities.RemoteFile, 0, len(files))
	existence := make([]string, 0, len(files))
	for _, file := range files {
		remote, err := r.hosting.GetFile(ctx, r.repo, file.Path, r.headSHA)
		if err != nil {
			return nil, err
		}
		current = append(current, remote)
		existence = append(existence, fmt.Sprintf("%s=%t", file.Key, remote.Exists))
	}
	fmt.Fprintf(r.out, "Existing on %s: %s\n", r.repo.DefaultBranch, strings.Join(existence, ", "))
	return current, nil
}

// ensureBranch creates the reconciliation branch once. Dry runs never create it.
func (r *reconciliation) ensureBranch(ctx context.Context) error {
	if r.report.BranchCreated || r.dryRun {
		return nil
	}
	if err := r.hosting.CreateBranch(ctx, r.repo, entities.BranchInput{
		BranchName: r.report.Branch,
		BaseSHA:    r.headSHA,
	}); err != nil {
		return err
	}
	r.report.BranchCreated = true
	logger.Infof("Created branch %s at %s", r.report.Branch, r.headSHA)
	return nil
}

// reconcileFile diffs one managed file and writes it when needed.
func (r *reconciliation) reconcileFile(
	ctx context.Context,
	file entities.ManagedFile,
	current entities.RemoteFile,
) error {
	outcome := diffFile(file, current)
	r.report.Files = append(r.report.Files, entities.FileResult{File: file, Outcome: outcome})

	if !outcome.Changed() || r.dryRun {
		fmt.Fprintf(r.out, "%s: %s\n", file.Path, describeOutcome(outcome, r.dryRun))
		return nil
	}

	if err := r.ensureBranch(ctx); err != nil {
		return err
	}

	input := entities.FileWriteInput{
		Path:          file.Path,
		Content:       file.Template,
		Branch:        r.report.Branch,
		CommitMessage: file.CommitMessage,
	}

	var err error
	if outcome == entities.OutcomeCreated {
		err = r.hosting.CreateFile(ctx, r.repo, input)
	} else {
		input.SHA = current.SHA
		err = r.hosting.UpdateFile(ctx, r.repo, input)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%s: %s\n", file.Path, outcome)
	return nil
}

// diffFile decides the outcome for a managed file given its remote state.
func diffFile(file entities.ManagedFile, current entities.RemoteFile) entities.FileOutcome {
	if !current.Exists {
		return entities.OutcomeCreated
	}
	if entities.ContentMatches(current.Content, file.Template) {
		return entities.OutcomeUnchanged
	}
	return entities.OutcomeUpdated
}

func describeOutcome(outcome entities.FileOutcome, dryRun bool) string {
	if !dryRun || !outcome.Changed() {
		return string(outcome)
	}
	if outcome == entities.OutcomeCreated {
		return "would create"
	}
	return "would update"
}

// generatePRContent returns the title and description for the changed files,
// keeping their processing order.
func generatePRContent(changed []entities.ManagedFile) (string, string) {
	labels := make([]string, 0, len(changed))
	lines := []string{"This PR updates:"}
	for _, file := range changed {
		labels = append(labels, file.Label)
		lines = append(lines, fmt.Sprintf("- `%s` (%s)", file.Path, file.Description))
	}
	return "Update " + strings.Join(labels, " + "), strings.Join(lines, "\n")
}
