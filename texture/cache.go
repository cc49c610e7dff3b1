package texture

import (
	"github.com/planar2d/planar"
	"github.com/planar2d/planar/cache"
)

// CacheCapacity bounds the process-wide texture cache. Least recently
// used entries are evicted beyond it.
const CacheCapacity = 512

// cacheKey identifies one texture variant.
type cacheKey struct {
	path  string
	theta float64
	scale float64
}

// textures is the process-wide texture cache. Initialized at process
// start, never torn down.
var textures = cache.New[cacheKey, *Texture](CacheCapacity)

// Get returns the canonical texture for the given path, rotation and
// scale. The unmodified base texture (theta 0, scale 1) is always
// resolved first, so every variant shares its decode cost; the variant is
// then derived by applying rotation, then scale. Repeated calls with the
// same arguments return the same *Texture until it is evicted.
//
// Decode failure is returned to the caller and nothing is cached.
func Get(path string, theta, scale float64) (*Texture, error) {
	base, err := textures.GetOrCreate(cacheKey{path: path, theta: 0, scale: 1}, func() (*Texture, error) {
		return Load(path)
	})
	if err != nil {
		return nil, err
	}
	if theta == 0 && scale == 1 {
		return base, nil
	}

	return textures.GetOrCreate(cacheKey{path: path, theta: theta, scale: scale}, func() (*Texture, error) {
		planar.Logger().Debug("texture variant derived",
			"path", path, "theta", theta, "scale", scale)
		return base.Rotate(theta).Rescale(scale), nil
	})
}

// CacheStats returns a snapshot of the texture cache counters.
func CacheStats() cache.Stats {
	return textures.Stats()
}

// ClearCache drops every cached texture. Shapes holding a *Texture keep
// it alive; the next Get decodes afresh.
func ClearCache() {
	textures.Clear()
}
