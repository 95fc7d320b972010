package repositories

import (
	domainRepos "github.com/rios0rios0/bootstrap-ci/internal/domain/repositories"
	ghRepo "github.com/rios0rios0/bootstrap-ci/internal/infrastructure/repositories/github"
	tplRepo "github.com/rios0rios0/bootstrap-ci/internal/infrastructure/repositories/templates"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() *HostingRegistry {
		reg := NewHostingRegistry()
		reg.Register("github", ghRepo.NewHostingRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.TemplateRepository {
		return tplRepo.NewTemplateRepository()
	}); err != nil {
		return err
	}

	return nil
}
