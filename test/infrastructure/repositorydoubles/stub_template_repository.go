//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
	"github.com/rios0rios0/bootstrap-ci/internal/domain/repositories"
)

// StubTemplateRepository returns a fixed list of managed files.
type StubTemplateRepository struct {
	Files         []entities.ManagedFile
	Err           error
	LastOverrides map[string]string
}

var _ repositories.TemplateRepository = (*StubTemplateRepository)(nil)

func (s *StubTemplateRepository) ManagedFiles(overrides map[string]string) ([]entities.ManagedFile, error) {
	s.LastOverrides = overrides
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]entities.ManagedFile(nil), s.Files...), nil
}
