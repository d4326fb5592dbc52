package render

import (
	"fmt"

	"github.com/AvengeMedia/artspace/internal/assets"
)

type cacheKey struct {
	ref   string
	width int
	alpha float64
}

// Cache memoizes rendered embedded images. It is owned by a single event loop
// and is not safe for concurrent use.
type Cache struct {
	entries map[cacheKey]string
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]string)}
}

// Asset renders the embedded image ref, reusing earlier renders of the same size.
func (c *Cache) Asset(ref string, width int, alpha float64) (string, error) {
	key := cacheKey{ref: ref, width: width, alpha: alpha}
	if out, ok := c.entries[key]; ok {
		return out, nil
	}

	data, err := assets.Image(ref)
	if err != nil {
		return "", err
	}
	out, err := HalfBlock(data, width, alpha)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", ref, err)
	}
	c.entries[key] = out
	return out, nil
}

func (c *Cache) Len() int {
	return len(c.entries)
}
