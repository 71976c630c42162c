package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogo(t *testing.T) {
	for _, name := range []string{LogoActive, LogoMuted} {
		resource, err := Logo(name)
		require.NoError(t, err)
		assert.Equal(t, "logo/"+name, resource.Name())
		assert.Contains(t, string(resource.Content()), "<svg")

		cached, err := Logo(name)
		require.NoError(t, err)
		assert.Same(t, resource, cached)
	}
}

func TestLogoMissing(t *testing.T) {
	_, err := Logo("absent.svg")
	assert.ErrorContains(t, err, "load resource logo/absent.svg")
	assert.Panics(t, func() { MustLogo("absent.svg") })
}
