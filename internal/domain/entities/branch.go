package entities

import "time"

const (
	// DefaultBranchPrefix is prepended to the timestamp of every reconciliation branch.
	DefaultBranchPrefix = "agent/bootstrap-ci-"

	branchTimestampLayout = "20060102150405"
)

// Clock returns the current time. It is injected so branch names are testable.
type Clock func() time.Time

// BranchName builds the reconciliation branch name from prefix and the UTC
// time truncated to seconds.
func BranchName(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultBranchPrefix
	}
	return prefix + now.UTC().Format(branchTimestampLayout)
}
