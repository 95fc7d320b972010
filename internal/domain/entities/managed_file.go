package entities

// ManagedFile is one of the files kept in sync with a template.
type ManagedFile struct {
	Key           string // "dockerfile", "workflow"
	Path          string // path at the repository root
	Label         string // used in the PR title
	Description   string // appended to the path in the PR body
	CommitMessage string
	Template      string
}
