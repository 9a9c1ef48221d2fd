package preview

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	// PNG is the only format the catalog lists.
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// FitScale returns the largest factor not above requested at which a
// w x h image fits into maxW x maxH pixels. It never returns less than 1.
func FitScale(w, h, requested, maxW, maxH int) int {
	if w <= 0 || h <= 0 {
		return 1
	}
	scale := min(requested, maxW/w, maxH/h)
	if scale < 1 {
		return 1
	}
	return scale
}

// Magnify scales img by factor with nearest-neighbour sampling so pixel
// art stays crisp.
func Magnify(img image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// HalfBlocks renders img as terminal text, two pixel rows per line, using
// the upper half block glyph with foreground and background colours.
// Fully transparent pixels are left blank.
func HalfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.At(x, y)
			var bottom color.Color = color.Transparent
			if y+1 < b.Max.Y {
				bottom = img.At(x, y+1)
			}
			sb.WriteString(cell(top, bottom))
		}
	}
	return sb.String()
}

func cell(top, bottom color.Color) string {
	topHex, topVisible := hex(top)
	bottomHex, bottomVisible := hex(bottom)
	switch {
	case topVisible && bottomVisible:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(topHex)).
			Background(lipgloss.Color(bottomHex)).
			Render("▀")
	case topVisible:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(topHex)).Render("▀")
	case bottomVisible:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(bottomHex)).Render("▄")
	default:
		return " "
	}
}

func hex(c color.Color) (string, bool) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), true
}
