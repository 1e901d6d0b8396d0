package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viaaberta/viaaberta/internal/domain"
)

// A nil *Cache must behave as an always-miss cache so the service can run
// without Redis configured.
func TestNilCacheIsSafe(t *testing.T) {
	t.Parallel()

	var c *Cache

	stats, ok := c.GetStatistics(t.Context())
	assert.Nil(t, stats)
	assert.False(t, ok)

	c.SetStatistics(t.Context(), &domain.Statistics{Total: 1})
	c.Invalidate(t.Context())

	assert.NoError(t, c.Close())
}
