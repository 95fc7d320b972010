package repositories

import "github.com/rios0rios0/bootstrap-ci/internal/domain/entities"

// TemplateRepository supplies the managed files and their desired content, in
// the order they are reconciled.
type TemplateRepository interface {
	// ManagedFiles returns the managed files. overrides maps a managed file key
	// to a local file whose content replaces the built-in template.
	ManagedFiles(overrides map[string]string) ([]entities.ManagedFile, error)
}
