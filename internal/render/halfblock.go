package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"strings"

	"github.com/AvengeMedia/artspace/internal/errdefs"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const upperHalfBlock = "▀"

// Size returns the cell dimensions an image of w x h pixels occupies when
// rendered width cells wide. Each cell holds two vertical pixels.
func Size(w, h, width int) (cols, rows int) {
	if w <= 0 || h <= 0 || width <= 0 {
		return 0, 0
	}
	px := width * h / w
	if px < 2 {
		px = 2
	}
	return width, (px + 1) / 2
}

// HalfBlock decodes an encoded image, scales it to width columns and draws it
// with upper half blocks. alpha dims the image over black, 1 keeps full colour.
func HalfBlock(data []byte, width int, alpha float64) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errdefs.NewCustomError(errdefs.ErrTypeRender, fmt.Sprintf("failed to decode image: %v", err))
	}
	if width <= 0 {
		return "", errdefs.NewCustomError(errdefs.ErrTypeRender, fmt.Sprintf("invalid render width %d", width))
	}

	b := src.Bounds()
	cols, rows := Size(b.Dx(), b.Dy(), width)
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	alpha = clamp01(alpha)
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := dim(dst.RGBAAt(x, 2*y), alpha)
			bottom := dim(dst.RGBAAt(x, 2*y+1), alpha)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom))).
				Render(upperHalfBlock))
		}
		if y < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

func dim(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: 0xff,
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
