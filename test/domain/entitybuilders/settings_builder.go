//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	token        string
	markerFile   string
	branchPrefix string
	deferBranch  bool
	repositories []string
}

// NewSettingsBuilder creates a new settings builder with the default values.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		markerFile:   entities.DefaultMarkerFile,
		branchPrefix: entities.DefaultBranchPrefix,
	}
}

// WithToken sets the configured token.
func (b *SettingsBuilder) WithToken(token string) *SettingsBuilder {
	b.token = token
	return b
}

// WithDeferBranch enables lazy branch creation.
func (b *SettingsBuilder) WithDeferBranch(deferBranch bool) *SettingsBuilder {
	b.deferBranch = deferBranch
	return b
}

// WithRepositories sets the batch repositories.
func (b *SettingsBuilder) WithRepositories(repositories ...string) *SettingsBuilder {
	b.repositories = repositories
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Token:        b.token,
		Provider:     entities.DefaultProvider,
		MarkerFile:   b.markerFile,
		BranchPrefix: b.branchPrefix,
		DeferBranch:  b.deferBranch,
		Repositories: append([]string(nil), b.repositories...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.token = ""
	b.markerFile = entities.DefaultMarkerFile
	b.branchPrefix = entities.DefaultBranchPrefix
	b.deferBranch = false
	b.repositories = nil
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		token:        b.token,
		markerFile:   b.markerFile,
		branchPrefix: b.branchPrefix,
		deferBranch:  b.deferBranch,
		repositories: append([]string(nil), b.repositories...),
	}
}
