package gallery

import (
	"fmt"

	"github.com/AvengeMedia/artspace/internal/assets"
	"github.com/AvengeMedia/artspace/internal/errdefs"
)

// CatalogSize is the number of artworks every catalog holds.
const CatalogSize = 4

// Artwork is a single immutable gallery entry.
type Artwork struct {
	ImageRef    string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Catalog is a fixed, ordered list of artworks. It is never mutated after construction.
type Catalog struct {
	artworks []Artwork
}

// NewCatalog builds a catalog from exactly CatalogSize artworks.
func NewCatalog(artworks ...Artwork) (*Catalog, error) {
	if len(artworks) != CatalogSize {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeInvalidCatalog,
			fmt.Sprintf("catalog needs exactly %d artworks, got %d", CatalogSize, len(artworks)))
	}

	owned := make([]Artwork, len(artworks))
	copy(owned, artworks)
	return &Catalog{artworks: owned}, nil
}

// Default returns the built-in catalog backed by the embedded assets.
func Default() *Catalog {
	c, err := NewCatalog(
		Artwork{
			ImageRef:    assets.ArtSpace1,
			Title:       assets.String(assets.FirstArtName),
			Description: assets.String(assets.FirstArtDescription),
		},
		Artwork{
			ImageRef:    assets.ArtSpace3,
			Title:       assets.String(assets.SecondArtName),
			Description: assets.String(assets.SecondArtDescription),
		},
		Artwork{
			ImageRef:    assets.ArtSpace4,
			Title:       assets.String(assets.ThirdArtName),
			Description: assets.String(assets.ThirdArtDescription),
		},
		Artwork{
			ImageRef:    assets.ArtSpace5,
			Title:       assets.String(assets.FourthArtName),
			Description: assets.String(assets.FourthArtDescription),
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the artwork at index. Out of range indices panic like a slice access.
func (c *Catalog) Get(index int) Artwork {
	return c.artworks[index]
}

func (c *Catalog) Len() int {
	return len(c.artworks)
}

// All returns a copy of the artworks in order.
func (c *Catalog) All() []Artwork {
	out := make([]Artwork, len(c.artworks))
	copy(out, c.artworks)
	return out
}
