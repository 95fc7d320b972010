package entities

import (
	"fmt"
	"strings"
)

// Repository represents a GitHub repository as seen by the reconciler.
type Repository struct {
	Owner         string
	Name          string
	DefaultBranch string
	HTMLURL       string
}

// FullName returns the "owner/name" form of the repository.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// RepositoryName is a parsed "owner/name" identifier.
type RepositoryName struct {
	Owner string
	Name  string
}

func (n RepositoryName) String() string {
	return n.Owner + "/" + n.Name
}

// ParseRepositoryName splits an "owner/name" identifier. Surrounding whitespace
// and a trailing ".git" are tolerated; anything else that does not have exactly
// one non-empty owner and one non-empty name is rejected.
func ParseRepositoryName(raw string) (RepositoryName, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(raw), ".git")
	parts := strings.Split(cleaned, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" { //nolint:mnd // owner + name
		return RepositoryName{}, fmt.Errorf("%w: %q (expected <owner>/<repo>)", ErrInvalidRepository, raw)
	}
	return RepositoryName{Owner: parts[0], Name: parts[1]}, nil
}
