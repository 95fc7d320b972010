package entities

// FileOutcome is what happened (or would happen) to a managed file.
type FileOutcome string

const (
	OutcomeCreated   FileOutcome = "created"
	OutcomeUpdated   FileOutcome = "updated"
	OutcomeUnchanged FileOutcome = "unchanged"
)

// Changed reports whether the outcome involved a write.
func (o FileOutcome) Changed() bool {
	return o == OutcomeCreated || o == OutcomeUpdated
}

// FileResult pairs a managed file with its outcome.
type FileResult struct {
	File    ManagedFile
	Outcome FileOutcome
}

// Report summarizes one reconciliation pass over a repository.
type Report struct {
	Repository    Repository
	Skipped       bool
	SkipReason    string
	DryRun        bool
	Branch        string
	BranchCreated bool
	Files         []FileResult
	PullRequest   *PullRequest
}

// ChangedFiles returns the files whose outcome is a write, in processing order.
// In a dry run these are the files that would be written.
func (r *Report) ChangedFiles() []ManagedFile {
	var changed []ManagedFile
	for _, result := range r.Files {
		if result.Outcome.Changed() {
			changed = append(changed, result.File)
		}
	}
	return changed
}
