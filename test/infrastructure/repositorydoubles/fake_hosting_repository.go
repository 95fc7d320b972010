//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, fakes) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
	"github.com/rios0rios0/bootstrap-ci/internal/domain/repositories"
)

// FakeHostingRepository is an in-memory repositories.HostingRepository. Files
// holds the repository content by path; writes mutate it, so consecutive runs
// against the same fake observe each other. Every call is recorded.
type FakeHostingRepository struct {
	// --- identity ---
	ProviderName string

	// --- GetRepository ---
	DefaultBranch    string
	GetRepositoryErr error
	RequestedNames   []entities.RepositoryName

	// --- GetBranchHead ---
	HeadSHA       string
	BranchHeadErr error

	// --- GetFile ---
	Files      map[string]entities.RemoteFile
	GetFileErr map[string]error
	FileReads  []FileRead

	// --- CreateBranch ---
	CreateBranchErr error
	BranchInputs    []entities.BranchInput

	// --- CreateFile / UpdateFile ---
	CreateFileErr error
	UpdateFileErr error
	CreateInputs  []entities.FileWriteInput
	UpdateInputs  []entities.FileWriteInput

	// --- CreatePullRequest ---
	CreatePRErr error
	PRInputs    []entities.PullRequestInput

	revision int
}

// FileRead records a single GetFile call.
type FileRead struct {
	Path string
	Ref  string
}

var _ repositories.HostingRepository = (*FakeHostingRepository)(nil)

// NewFakeHostingRepository creates a fake with a "main" default branch and no files.
func NewFakeHostingRepository() *FakeHostingRepository {
	return &FakeHostingRepository{
		ProviderName:  "github",
		DefaultBranch: "main",
		HeadSHA:       "head-sha",
		Files:         make(map[string]entities.RemoteFile),
		GetFileErr:    make(map[string]error),
	}
}

// WithFile stores a file with content and returns the fake for chaining.
func (f *FakeHostingRepository) WithFile(path, content string) *FakeHostingRepository {
	f.Files[path] = entities.RemoteFile{
		Path:    path,
		Exists:  true,
		Content: content,
		SHA:     f.nextSHA(),
	}
	return f
}

// WriteCount returns the number of file writes received.
func (f *FakeHostingRepository) WriteCount() int {
	return len(f.CreateInputs) + len(f.UpdateInputs)
}

func (f *FakeHostingRepository) Name() string { return f.ProviderName }

func (f *FakeHostingRepository) GetRepository(
	_ context.Context, name entities.RepositoryName,
) (entities.Repository, error) {
	f.RequestedNames = append(f.RequestedNames, name)
	if f.GetRepositoryErr != nil {
		return entities.Repository{}, f.GetRepositoryErr
	}
	return entities.Repository{
		Owner:         name.Owner,
		Name:          name.Name,
		DefaultBranch: f.DefaultBranch,
		HTMLURL:       fmt.Sprintf("https://github.com/%s/%s", name.Owner, name.Name),
	}, nil
}

func (f *FakeHostingRepository) GetBranchHead(
	_ context.Context, _ entities.Repository, _ string,
) (string, error) {
	return f.HeadSHA, f.BranchHeadErr
}

func (f *FakeHostingRepository) GetFile(
	_ context.Context, _ entities.Repository, path, ref string,
) (entities.RemoteFile, error) {
	f.FileReads = append(f.FileReads, FileRead{Path: path, Ref: ref})
	if err := f.GetFileErr[path]; err != nil {
		return entities.RemoteFile{}, err
	}
	if file, ok := f.Files[path]; ok {
		return file, nil
	}
	return entities.AbsentFile(path), nil
}

func (f *FakeHostingRepository) CreateBranch(
	_ context.Context, _ entities.Repository, input entities.BranchInput,
) error {
	f.BranchInputs = append(f.BranchInputs, input)
	return f.CreateBranchErr
}

func (f *FakeHostingRepository) CreateFile(
	_ context.Context, _ entities.Repository, input entities.FileWriteInput,
) error {
	f.CreateInputs = append(f.CreateInputs, input)
	if f.CreateFileErr != nil {
		return f.CreateFileErr
	}
	if _, exists := f.Files[input.Path]; exists {
		return fmt.Errorf("%w: %s already exists", entities.ErrStaleRevision, input.Path)
	}
	f.WithFile(input.Path, input.Content)
	return nil
}

func (f *FakeHostingRepository) UpdateFile(
	_ context.Context, _ entities.Repository, input entities.FileWriteInput,
) error {
	f.UpdateInputs = append(f.UpdateInputs, input)
	if f.UpdateFileErr != nil {
		return f.UpdateFileErr
	}
	current, exists := f.Files[input.Path]
	if !exists || current.SHA != input.SHA {
		return fmt.Errorf("%w: %s does not match %q", entities.ErrStaleRevision, input.Path, input.SHA)
	}
	f.WithFile(input.Path, input.Content)
	return nil
}

func (f *FakeHostingRepository) CreatePullRequest(
	_ context.Context, _ entities.Repository, input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	f.PRInputs = append(f.PRInputs, input)
	if f.CreatePRErr != nil {
		return nil, f.CreatePRErr
	}
	id := len(f.PRInputs)
	return &entities.PullRequest{
		ID:    id,
		Title: input.Title,
		URL:   fmt.Sprintf("https://example.com/pr/%d", id),
	}, nil
}

func (f *FakeHostingRepository) nextSHA() string {
	f.revision++
	return fmt.Sprintf("sha-%d", f.revision)
}
