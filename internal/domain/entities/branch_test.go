//go:build unit

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/bootstrap-ci/internal/domain/entities"
)

func TestBranchName(t *testing.T) {
	t.Parallel()

	t.Run("should format the UTC timestamp after the prefix", func(t *testing.T) {
		t.Parallel()

		// given
		now := time.Date(2025, 3, 9, 14, 5, 1, 999, time.UTC)

		// when
		name := entities.BranchName(entities.DefaultBranchPrefix, now)

		// then
		assert.Equal(t, "agent/bootstrap-ci-20250309140501", name)
	})

	t.Run("should convert local times to UTC", func(t *testing.T) {
		t.Parallel()

		// given
		zone := time.FixedZone("UTC-3", -3*60*60)
		now := time.Date(2025, 3, 9, 22, 0, 0, 0, zone)

		// when
		name := entities.BranchName("ci/", now)

		// then
		assert.Equal(t, "ci/20250310010000", name)
	})

	t.Run("should fall back to the default prefix when empty", func(t *testing.T) {
		t.Parallel()

		// given
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

		// when
		name := entities.BranchName("", now)

		// then
		assert.Equal(t, "agent/bootstrap-ci-20250101000000", name)
	})
}
