//go:build unit

package entities_test

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
)

func TestNewEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("should read the tokens and repository from the lookuper", func(t *testing.T) {
		t.Parallel()

		// given
		lookuper := envconfig.MapLookuper(map[string]string{
			"GITHUB_TOKEN":      "actions-token",
			"GH_TOKEN":          "pat",
			"GITHUB_REPOSITORY": "acme/svc",
		})

		// when
		env, err := entities.NewEnvironment(context.Background(), lookuper)

		// then
		require.NoError(t, err)
		assert.Equal(t, "acme/svc", env.Repository)
		assert.Equal(t, "actions-token", env.Token())
	})

	t.Run("should fall back to GH_TOKEN", func(t *testing.T) {
		t.Parallel()

		// given
		lookuper := envconfig.MapLookuper(map[string]string{"GH_TOKEN": "pat"})

		// when
		env, err := entities.NewEnvironment(context.Background(), lookuper)

		// then
		require.NoError(t, err)
		assert.Equal(t, "pat", env.Token())
	})

	t.Run("should return an empty token when neither variable is set", func(t *testing.T) {
		t.Parallel()

		// given
		lookuper := envconfig.MapLookuper(map[string]string{})

		// when
		env, err := entities.NewEnvironment(context.Background(), lookuper)

		// then
		require.NoError(t, err)
		assert.Empty(t, env.Token())
		assert.Empty(t, env.Repository)
	})
}
