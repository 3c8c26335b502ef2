// Package text turns strings into textured planes. Glyphs are drawn with the Go fonts
// into an RGBA image on the CPU and uploaded as a label texture.
package text

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-portfolio/common"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Align controls the horizontal placement of each line inside the label image.
type Align int

const (
	// AlignCenter centres every line.
	AlignCenter Align = iota
	// AlignLeft starts every line at the left padding.
	AlignLeft
)

// Family selects one of the embedded Go fonts.
type Family int

const (
	// FamilyRegular is Go Regular.
	FamilyRegular Family = iota
	// FamilyBold is Go Bold, used for titles.
	FamilyBold
	// FamilyMono is Go Mono, used for the console screen and the percentage readout.
	FamilyMono
)

// Style describes how a string is rasterised.
type Style struct {
	// Family is the font to draw with.
	Family Family
	// Size is the font size in pixels.
	Size float64
	// Align is the horizontal alignment of lines.
	Align Align
	// MaxWidth wraps words onto new lines past this many pixels. Zero disables wrapping.
	MaxWidth int
	// MaxWidthLines is the wrap width in multiples of the line height and overrides MaxWidth.
	MaxWidthLines float32
	// Padding is the transparent border around the text in pixels.
	Padding int
}

// DefaultStyle is a 48px centred Go Regular style with 4px padding.
var DefaultStyle = Style{Family: FamilyRegular, Size: 48, Align: AlignCenter, Padding: 4}

// Raster is a rasterised string.
type Raster struct {
	// Texture is the white-on-transparent glyph image; the material colour tints it.
	Texture common.TextureStagingData
	// Lines is the number of lines after wrapping.
	Lines int
	// LineHeight is the height of one line in pixels.
	LineHeight int
}

var (
	fontsOnce sync.Once
	fonts     map[Family]*opentype.Font
	fontsErr  error
)

// loadFonts parses the embedded fonts once. Parsed fonts are safe for concurrent use;
// faces are not, so Rasterize creates a face per call.
func loadFonts() (map[Family]*opentype.Font, error) {
	fontsOnce.Do(func() {
		fonts = make(map[Family]*opentype.Font, 3)
		for fam, ttf := range map[Family][]byte{
			FamilyRegular: goregular.TTF,
			FamilyBold:    gobold.TTF,
			FamilyMono:    gomono.TTF,
		} {
			f, err := opentype.Parse(ttf)
			if err != nil {
				fontsErr = fmt.Errorf("failed to parse font %d: %w", fam, err)
				return
			}
			fonts[fam] = f
		}
	})
	return fonts, fontsErr
}

// Rasterize draws s into an RGBA image using style.
// Newlines in s start new lines; long lines wrap at word boundaries when style.MaxWidth is set.
// An empty string yields a fully transparent image one line high.
//
// Parameters:
//   - s: the text to draw
//   - style: font, size, alignment, wrapping and padding
//
// Returns:
//   - Raster: the staged texture and its line metrics
//   - error: an error if the font could not be loaded
func Rasterize(s string, style Style) (Raster, error) {
	all, err := loadFonts()
	if err != nil {
		return Raster{}, err
	}
	f, ok := all[style.Family]
	if !ok {
		return Raster{}, fmt.Errorf("unknown font family %d", style.Family)
	}
	size := style.Size
	if size <= 0 {
		size = DefaultStyle.Size
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return Raster{}, fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	maxWidth := style.MaxWidth
	if style.MaxWidthLines > 0 {
		maxWidth = int(style.MaxWidthLines * float32(lineHeight))
	}
	lines := wrap(face, s, maxWidth)

	textWidth := 0
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = font.MeasureString(face, line).Ceil()
		textWidth = max(textWidth, widths[i])
	}

	pad := max(style.Padding, 0)
	w := max(textWidth+2*pad, 1)
	h := len(lines)*lineHeight + 2*pad
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for i, line := range lines {
		x := pad
		if style.Align == AlignCenter {
			x = (w - widths[i]) / 2
		}
		d.Dot = fixed.P(x, pad+i*lineHeight+ascent)
		d.DrawString(line)
	}

	return Raster{
		Texture:    common.TextureFromImage(img),
		Lines:      len(lines),
		LineHeight: lineHeight,
	}, nil
}

// wrap splits s into lines on newlines and, when maxWidth is positive, at word boundaries
// so no line is wider than maxWidth pixels. A single word wider than maxWidth keeps its own line.
func wrap(face font.Face, s string, maxWidth int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if maxWidth <= 0 {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if font.MeasureString(face, candidate).Ceil() > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
