package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	xdraw "golang.org/x/image/draw"
)

//go:embed assets/template.png
var templatePNG []byte

var (
	templateOnce sync.Once
	templateImg  image.Image
	templateErr  error
)

const spriteScale = 1.6

// silhouetteColor is deliberately near-black rather than pure black so the
// silhouette can never be confused with a fully black template region
// during paste-masking.
var silhouetteColor = color.NRGBA{R: 1, G: 1, B: 1, A: 255}

// Template returns the bundled background, decoded once per process and
// treated as read-only afterwards.
func Template() (image.Image, error) {
	templateOnce.Do(func() {
		templateImg, templateErr = png.Decode(bytes.NewReader(templatePNG))
	})
	return templateImg, templateErr
}

// Composite scales the sprite by a fixed factor, optionally masks it to a
// silhouette, pastes it onto the template using the sprite's own alpha as
// the paste mask and returns the PNG-encoded result. Each call is
// independent; the same sprite can be composited masked and unmasked in
// sequence.
func Composite(template, sprite image.Image, mask bool) ([]byte, error) {
	tb := template.Bounds()
	sb := sprite.Bounds()

	scaled := scaleSprite(sprite)
	if mask {
		maskToSilhouette(scaled)
	}

	// Offsets derive from the unscaled sprite size, matching the layout of
	// the original card.
	pasteX := (tb.Dx() - sb.Dx()) / 10
	pasteY := (tb.Dy() - sb.Dy()) / 4

	out := image.NewNRGBA(image.Rect(0, 0, tb.Dx(), tb.Dy()))
	draw.Draw(out, out.Bounds(), template, tb.Min, draw.Src)
	target := image.Rect(pasteX, pasteY, pasteX+scaled.Bounds().Dx(), pasteY+scaled.Bounds().Dy())
	draw.Draw(out, target, scaled, image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encoding composite: %w", err)
	}
	return buf.Bytes(), nil
}

func scaleSprite(sprite image.Image) *image.NRGBA {
	sb := sprite.Bounds()
	w := int(float64(sb.Dx()) * spriteScale)
	h := int(float64(sb.Dy()) * spriteScale)
	scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), sprite, sb, xdraw.Src, nil)
	return scaled
}

// maskToSilhouette overwrites every pixel that is not fully transparent
// with the opaque silhouette color. Fully transparent pixels are left
// untouched so the outline matches the sprite's alpha shape exactly.
func maskToSilhouette(img *image.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 0 {
			continue
		}
		img.Pix[i] = silhouetteColor.R
		img.Pix[i+1] = silhouetteColor.G
		img.Pix[i+2] = silhouetteColor.B
		img.Pix[i+3] = silhouetteColor.A
	}
}
