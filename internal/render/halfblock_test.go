package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/AvengeMedia/artspace/internal/assets"
	"github.com/AvengeMedia/artspace/internal/errdefs"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeSolid(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSize(t *testing.T) {
	tests := []struct {
		name           string
		w, h, width    int
		wantCols, want int
	}{
		{"landscape", 64, 48, 32, 32, 12},
		{"square", 10, 10, 10, 10, 5},
		{"odd rows round up", 10, 9, 10, 10, 5},
		{"very wide keeps one row", 100, 1, 10, 10, 1},
		{"zero width", 10, 10, 0, 0, 0},
		{"empty image", 0, 10, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := Size(tt.w, tt.h, tt.width)
			assert.Equal(t, tt.wantCols, cols)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestHalfBlockDimensions(t *testing.T) {
	data := encodeSolid(t, 20, 20, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	out, err := HalfBlock(data, 8, 1)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 8, lipgloss.Width(line))
		assert.Equal(t, 8, strings.Count(line, upperHalfBlock))
	}
}

func TestHalfBlockEmbeddedArtwork(t *testing.T) {
	data, err := assets.Image(assets.ArtSpace1)
	require.NoError(t, err)

	out, err := HalfBlock(data, 32, 0.6)
	require.NoError(t, err)
	assert.Equal(t, 32, lipgloss.Width(out))
	assert.Equal(t, 12, lipgloss.Height(out))
}

func TestHalfBlockErrors(t *testing.T) {
	_, err := HalfBlock([]byte("not an image"), 10, 1)
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeRender))

	data := encodeSolid(t, 4, 4, color.White)
	_, err = HalfBlock(data, 0, 1)
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeRender))
}

func TestDim(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 255}, dim(c, 0.5))
	assert.Equal(t, color.RGBA{A: 255}, dim(c, 0))
	assert.Equal(t, "#c86432", hex(c))
	assert.Equal(t, 1.0, clamp01(3))
	assert.Equal(t, 0.0, clamp01(-1))
}

func TestCache(t *testing.T) {
	c := NewCache()

	first, err := c.Asset(assets.TopBar, 24, 0.5)
	require.NoError(t, err)
	second, err := c.Asset(assets.TopBar, 24, 0.5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())

	_, err = c.Asset(assets.TopBar, 30, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = c.Asset("missing.png", 24, 0.5)
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeAssetNotFound))
	assert.Equal(t, 2, c.Len())
}
