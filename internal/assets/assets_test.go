package assets

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/AvengeMedia/artspace/internal/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage(t *testing.T) {
	for _, ref := range []string{ArtSpace1, ArtSpace3, ArtSpace4, ArtSpace5, TopBar} {
		t.Run(ref, func(t *testing.T) {
			data, err := Image(ref)
			require.NoError(t, err)

			_, err = png.DecodeConfig(bytes.NewReader(data))
			assert.NoError(t, err)
		})
	}
}

func TestImageMissing(t *testing.T) {
	_, err := Image("artspace2.png")
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeAssetNotFound))
}

func TestImageRefs(t *testing.T) {
	assert.Equal(t, []string{ArtSpace1, ArtSpace3, ArtSpace4, ArtSpace5, TopBar}, ImageRefs())
}

func TestStringTable(t *testing.T) {
	for id := AppName; id <= FourthArtDescription; id++ {
		assert.NotEmpty(t, String(id), "string %d", id)
	}
	assert.Equal(t, "", String(StringID(999)))
}
