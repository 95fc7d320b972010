package entities

// BranchInput contains the data needed to create a branch.
type BranchInput struct {
	BranchName string
	BaseSHA    string
}

// FileWriteInput describes a single file commit on a branch. An empty SHA
// selects the create path; a non-empty SHA guards an update.
type FileWriteInput struct {
	Path          string
	Content       string
	Branch        string
	CommitMessage string
	SHA           string
}

// PullRequestInput contains the data needed to create a pull request.
type PullRequestInput struct {
	SourceBranch string
	TargetBranch string
	Title        string
	Description  string
}

// PullRequest represents a pull request returned by the hosting service.
type PullRequest struct {
	ID    int
	Title string
	URL   string
}
