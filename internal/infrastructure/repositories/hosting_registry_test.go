//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/bootstrap-ci/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/bootstrap-ci/test/infrastructure/repositorydoubles"
)

func TestHostingRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should build the registered hosting with the given token", func(t *testing.T) {
		t.Parallel()

		// given
		var gotToken string
		fake := doubles.NewFakeHostingRepository()
		registry := infraRepos.NewHostingRegistry()
		registry.Register("github", func(token string) repositories.HostingRepository {
			gotToken = token
			return fake
		})

		// when
		hosting, err := registry.Get("github", "secret")

		// then
		require.NoError(t, err)
		assert.Same(t, fake, hosting)
		assert.Equal(t, "secret", gotToken)
	})

	t.Run("should list the available providers for an unknown name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewHostingRegistry()
		registry.Register("github", func(_ string) repositories.HostingRepository { return nil })
		registry.Register("gitea", func(_ string) repositories.HostingRepository { return nil })

		// when
		_, err := registry.Get("gitlab", "secret")

		// then
		require.EqualError(t, err, `unknown provider type: "gitlab" (available: gitea, github)`)
		assert.Equal(t, []string{"gitea", "github"}, registry.Names())
	})
}
