package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/AvengeMedia/artspace/internal/errdefs"
)

//go:embed images/*.png
var images embed.FS

const (
	ArtSpace1 = "artspace1.png"
	ArtSpace3 = "artspace3.png"
	ArtSpace4 = "artspace4.png"
	ArtSpace5 = "artspace5.png"
	TopBar    = "topbar.png"
)

// Image returns the raw bytes of an embedded image by reference.
func Image(ref string) ([]byte, error) {
	data, err := images.ReadFile(path.Join("images", ref))
	if err != nil {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeAssetNotFound, fmt.Sprintf("asset not found: %s", ref))
	}
	return data, nil
}

// ImageRefs lists every embedded image reference.
func ImageRefs() []string {
	entries, err := fs.ReadDir(images, "images")
	if err != nil {
		return nil
	}
	refs := make([]string, 0, len(entries))
	for _, e := range entries {
		refs = append(refs, e.Name())
	}
	sort.Strings(refs)
	return refs
}
