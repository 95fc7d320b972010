package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
	"github.com/rios0rios0/bootstrap-ci/internal/domain/repositories"
)

const (
	providerName = "github"
	headsPrefix  = "refs/heads/"
)

// HostingRepository implements repositories.HostingRepository on the GitHub REST API.
type HostingRepository struct {
	client *gh.Client
}

// NewHostingRepository creates a GitHub hosting repository authenticated with token.
func NewHostingRepository(token string) repositories.HostingRepository {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return NewHostingRepositoryWithClient(gh.NewClient(httpClient))
}

// NewHostingRepositoryWithClient wraps an existing go-github client.
func NewHostingRepositoryWithClient(client *gh.Client) *HostingRepository {
	return &HostingRepository{client: client}
}

func (p *HostingRepository) Name() string { return providerName }

func (p *HostingRepository) GetRepository(
	ctx context.Context,
	name entities.RepositoryName,
) (entities.Repository, error) {
	logger.Debugf("Fetching repository %s", name)

	r, resp, err := p.client.Repositories.Get(ctx, name.Owner, name.Name)
	if err != nil {
		return entities.Repository{}, fmt.Errorf("failed to get repository %s: %w", name, classify(resp, err))
	}

	return entities.Repository{
		Owner:         name.Owner,
		Name:          name.Name,
		DefaultBranch: r.GetDefaultBranch(),
		HTMLURL:       r.GetHTMLURL(),
	}, nil
}

func (p *HostingRepository) GetBranchHead(
	ctx context.Context,
	repo entities.Repository,
	branch string,
) (string, error) {
	ref, resp, err := p.client.Git.GetRef(
		ctx, repo.Owner, repo.Name, "heads/"+strings.TrimPrefix(branch, headsPrefix),
	)
	if err != nil {
		return "", fmt.Errorf("failed to get branch ref %q: %w", branch, classify(resp, err))
	}
	return ref.GetObject().GetSHA(), nil
}

func (p *HostingRepository) GetFile(
	ctx context.Context,
	repo entities.Repository,
	path, ref string,
) (entities.RemoteFile, error) {
	logger.Debugf("Reading %s@%s from %s", path, ref, repo.FullName())

	fileContent, _, resp, err := p.client.Repositories.GetContents(
		ctx, repo.Owner, repo.Name, path,
		&gh.RepositoryContentGetOptions{Ref: ref},
	)
	if err != nil {
		if isNotFound(resp, err) {
			return entities.AbsentFile(path), nil
		}
		return entities.RemoteFile{}, fmt.Errorf("failed to get file %q: %w", path, classify(resp, err))
	}
	if fileContent == nil {
		return entities.RemoteFile{}, fmt.Errorf("path %q is a directory, not a file", path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return entities.RemoteFile{}, fmt.Errorf("failed to decode file content: %w", err)
	}

	return entities.RemoteFile{
		Path:    path,
		Exists:  true,
		Content: content,
		SHA:     fileContent.GetSHA(),
	}, nil
}

func (p *HostingRepository) CreateBranch(
	ctx context.Context,
	repo entities.Repository,
	input entities.BranchInput,
) error {
	branchRef := headsPrefix + strings.TrimPrefix(input.BranchName, headsPrefix)
	baseSHA := input.BaseSHA
	_, resp, err := p.client.Git.CreateRef(
		ctx, repo.Owner, repo.Name,
		&gh.Reference{
			Ref:    &branchRef,
			Object: &gh.GitObject{SHA: &baseSHA},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create branch: %w", classify(resp, err))
	}
	return nil
}

func (p *HostingRepository) CreateFile(
	ctx context.Context,
	repo entities.Repository,
	input entities.FileWriteInput,
) error {
	_, resp, err := p.client.Repositories.CreateFile(
		ctx, repo.Owner, repo.Name, input.Path, fileOptions(input),
	)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", input.Path, classifyWrite(resp, err))
	}
	return nil
}

func (p *HostingRepository) UpdateFile(
	ctx context.Context,
	repo entities.Repository,
	input entities.FileWriteInput,
) error {
	if input.SHA == "" {
		return fmt.Errorf("failed to update file %q: missing revision SHA", input.Path)
	}
	_, resp, err := p.client.Repositories.UpdateFile(
		ctx, repo.Owner, repo.Name, input.Path, fileOptions(input),
	)
	if err != nil {
		return fmt.Errorf("failed to update file %q: %w", input.Path, classifyWrite(resp, err))
	}
	return nil
}

func (p *HostingRepository) CreatePullRequest(
	ctx context.Context,
	repo entities.Repository,
	input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	sourceBranch := strings.TrimPrefix(input.SourceBranch, headsPrefix)
	targetBranch := strings.TrimPrefix(input.TargetBranch, headsPrefix)

	pr, resp, err := p.client.PullRequests.Create(
		ctx, repo.Owner, repo.Name,
		&gh.NewPullRequest{
			Title: &input.Title,
			Head:  &sourceBranch,
			Base:  &targetBranch,
			Body:  &input.Description,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", classify(resp, err))
	}

	return &entities.PullRequest{
		ID:    pr.GetNumber(),
		Title: pr.GetTitle(),
		URL:   pr.GetHTMLURL(),
	}, nil
}

func fileOptions(input entities.FileWriteInput) *gh.RepositoryContentFileOptions {
	message := input.CommitMessage
	branch := input.Branch
	opts := &gh.RepositoryContentFileOptions{
		Message: &message,
		Content: []byte(input.Content),
		Branch:  &branch,
	}
	if input.SHA != "" {
		sha := input.SHA
		opts.SHA = &sha
	}
	return opts
}

// --- error classification ---

func statusCode(resp *gh.Response, err error) int {
	if resp != nil && resp.Response != nil {
		return resp.StatusCode
	}
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}

func isNotFound(resp *gh.Response, err error) bool {
	return statusCode(resp, err) == http.StatusNotFound
}

// classify wraps err with the matching sentinel while keeping the library error in the chain.
func classify(resp *gh.Response, err error) error {
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %w", entities.ErrRateLimited, err)
	}

	switch statusCode(resp, err) {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", entities.ErrUnauthorized, err)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", entities.ErrForbidden, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", entities.ErrRateLimited, err)
	default:
		return err
	}
}

// classifyWrite additionally maps the contents API's SHA mismatch responses.
func classifyWrite(resp *gh.Response, err error) error {
	switch statusCode(resp, err) {
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", entities.ErrStaleRevision, err)
	default:
		return classify(resp, err)
	}
}
