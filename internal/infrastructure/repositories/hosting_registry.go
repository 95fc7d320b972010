package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/bootstrap-ci/internal/domain/repositories"
)

// HostingFactory builds an authenticated client for one Git hosting service.
type HostingFactory func(token string) domainRepos.HostingRepository

// HostingRegistry resolves the settings' provider name to the hosting service
// the reconciler reads from and opens pull requests on.
type HostingRegistry struct {
	providers map[string]HostingFactory
}

// NewHostingRegistry creates a registry with no hosting services.
func NewHostingRegistry() *HostingRegistry {
	return &HostingRegistry{
		providers: make(map[string]HostingFactory),
	}
}

// Register binds name (the settings' provider value) to factory.
func (r *HostingRegistry) Register(name string, factory HostingFactory) {
	r.providers[name] = factory
}

// Get builds the hosting service registered under name, authenticated with token.
func (r *HostingRegistry) Get(name, token string) (domainRepos.HostingRepository, error) {
	factory, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return factory(token), nil
}

// Names lists the registered provider names in sorted order.
func (r *HostingRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
