//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
)

// ManagedFileBuilder helps create test managed files with a fluent interface.
type ManagedFileBuilder struct {
	*testkit.BaseBuilder
	key           string
	path          string
	label         string
	description   string
	commitMessage string
	template      string
}

// NewManagedFileBuilder creates a new managed file builder with sensible defaults.
func NewManagedFileBuilder() *ManagedFileBuilder {
	return &ManagedFileBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		key:           "dockerfile",
		path:          "Dockerfile",
		label:         "Dockerfile",
		description:   "Java 17 multi-stage build",
		commitMessage: "chore: ensure Dockerfile (Java 17)",
		template:      "FROM scratch\n",
	}
}

// WithKey sets the managed file key.
func (b *ManagedFileBuilder) WithKey(key string) *ManagedFileBuilder {
	b.key = key
	return b
}

// WithPath sets the repository path.
func (b *ManagedFileBuilder) WithPath(path string) *ManagedFileBuilder {
	b.path = path
	return b
}

// WithLabel sets the PR title label.
func (b *ManagedFileBuilder) WithLabel(label string) *ManagedFileBuilder {
	b.label = label
	return b
}

// WithDescription sets the PR body description.
func (b *ManagedFileBuilder) WithDescription(description string) *ManagedFileBuilder {
	b.description = description
	return b
}

// WithTemplate sets the desired content.
func (b *ManagedFileBuilder) WithTemplate(template string) *ManagedFileBuilder {
	b.template = template
	return b
}

// Build creates the managed file (satisfies testkit.Builder interface).
func (b *ManagedFileBuilder) Build() interface{} {
	return b.BuildManagedFile()
}

// BuildManagedFile creates the managed file with a concrete return type.
func (b *ManagedFileBuilder) BuildManagedFile() entities.ManagedFile {
	return entities.ManagedFile{
		Key:           b.key,
		Path:          b.path,
		Label:         b.label,
		Description:   b.description,
		CommitMessage: b.commitMessage,
		Template:      b.template,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ManagedFileBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.key = "dockerfile"
	b.path = "Dockerfile"
	b.label = "Dockerfile"
	b.description = "Java 17 multi-stage build"
	b.commitMessage = "chore: ensure Dockerfile (Java 17)"
	b.template = "FROM scratch\n"
	return b
}

// Clone creates a deep copy of the ManagedFileBuilder.
func (b *ManagedFileBuilder) Clone() testkit.Builder {
	return &ManagedFileBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		key:           b.key,
		path:          b.path,
		label:         b.label,
		description:   b.description,
		commitMessage: b.commitMessage,
		template:      b.template,
	}
}
