package repositories

import (
	"context"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
)

// HostingRepository is the minimal capability surface the reconciler needs
// from a Git hosting service.
type HostingRepository interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// GetRepository resolves a repository, including its default branch.
	GetRepository(ctx context.Context, name entities.RepositoryName) (entities.Repository, error)

	// GetBranchHead returns the commit SHA the branch currently points at.
	GetBranchHead(ctx context.Context, repo entities.Repository, branch string) (string, error)

	// GetFile reads a file at ref. A missing file is returned as the absent
	// variant of entities.RemoteFile, not as an error.
	GetFile(ctx context.Context, repo entities.Repository, path, ref string) (entities.RemoteFile, error)

	// CreateBranch creates a new branch pointing at input.BaseSHA.
	CreateBranch(ctx context.Context, repo entities.Repository, input entities.BranchInput) error

	// CreateFile commits a new file to a branch.
	CreateFile(ctx context.Context, repo entities.Repository, input entities.FileWriteInput) error

	// UpdateFile commits new content for an existing file; input.SHA guards
	// against concurrent modification.
	UpdateFile(ctx context.Context, repo entities.Repository, input entities.FileWriteInput) error

	// CreatePullRequest opens a pull request.
	CreatePullRequest(
		ctx context.Context,
		repo entities.Repository,
		input entities.PullRequestInput,
	) (*entities.PullRequest, error)
}
