package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// circleSprite draws an opaque disc on a transparent background so the
// sprite has both alpha extremes.
func circleSprite(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-r, y-r
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func solidSprite(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func decodePNG(t *testing.T, data []byte) *image.NRGBA {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding composite: %v", err)
	}
	out := image.NewNRGBA(img.Bounds())
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func TestTemplateDecodes(t *testing.T) {
	tpl, err := Template()
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	if tpl.Bounds().Dx() == 0 || tpl.Bounds().Dy() == 0 {
		t.Fatal("template has zero size")
	}
}

func TestCompositeKeepsTemplateDimensions(t *testing.T) {
	tpl, err := Template()
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	sprite := circleSprite(100, color.NRGBA{200, 60, 60, 255})

	for _, mask := range []bool{true, false} {
		data, err := Composite(tpl, sprite, mask)
		if err != nil {
			t.Fatalf("Composite(mask=%v): %v", mask, err)
		}
		img := decodePNG(t, data)
		if img.Bounds().Dx() != tpl.Bounds().Dx() || img.Bounds().Dy() != tpl.Bounds().Dy() {
			t.Errorf("mask=%v: composite %dx%d, want template %dx%d",
				mask, img.Bounds().Dx(), img.Bounds().Dy(), tpl.Bounds().Dx(), tpl.Bounds().Dy())
		}
	}
}

func TestCompositeMaskPreservesTemplateWhereSpriteTransparent(t *testing.T) {
	// Small uniform template so expected pixels are easy to assert.
	tpl := solidSprite(200, 200, color.NRGBA{10, 20, 30, 255})
	sprite := circleSprite(50, color.NRGBA{250, 250, 0, 255})

	data, err := Composite(tpl, sprite, true)
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	img := decodePNG(t, data)

	// A corner of the paste region is outside the disc, hence transparent
	// in the sprite: the template must show through unchanged.
	pasteX := (200 - 50) / 10
	pasteY := (200 - 50) / 4
	got := img.NRGBAAt(pasteX, pasteY)
	want := color.NRGBA{10, 20, 30, 255}
	if got != want {
		t.Errorf("template pixel under transparent sprite corner = %v, want %v", got, want)
	}

	// The disc center is opaque in the sprite: it must be the silhouette
	// color, not the sprite color.
	cx := pasteX + 40 // disc scaled 1.6x: center around +40
	cy := pasteY + 40
	got = img.NRGBAAt(cx, cy)
	if got != (color.NRGBA{1, 1, 1, 255}) {
		t.Errorf("masked sprite center = %v, want near-black silhouette", got)
	}
}

func TestCompositeUnmaskedKeepsSpriteColor(t *testing.T) {
	tpl := solidSprite(200, 200, color.NRGBA{10, 20, 30, 255})
	sprite := solidSprite(50, 50, color.NRGBA{250, 10, 10, 255})

	data, err := Composite(tpl, sprite, false)
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	img := decodePNG(t, data)

	pasteX := (200 - 50) / 10
	pasteY := (200 - 50) / 4
	got := img.NRGBAAt(pasteX+40, pasteY+40)
	if got != (color.NRGBA{250, 10, 10, 255}) {
		t.Errorf("unmasked sprite pixel = %v, want sprite color", got)
	}
}

func TestCompositeSilhouetteMatchesOpaqueSpriteShape(t *testing.T) {
	// A fully opaque sprite: the masked and unmasked composites must
	// differ only in color, never in which pixels the sprite covers.
	tpl := solidSprite(120, 120, color.NRGBA{0, 0, 0, 255})
	sprite := solidSprite(40, 40, color.NRGBA{77, 128, 200, 255})

	masked, err := Composite(tpl, sprite, true)
	if err != nil {
		t.Fatalf("Composite(mask): %v", err)
	}
	plain, err := Composite(tpl, sprite, false)
	if err != nil {
		t.Fatalf("Composite(plain): %v", err)
	}

	mi := decodePNG(t, masked)
	pi := decodePNG(t, plain)

	silhouette := color.NRGBA{1, 1, 1, 255}
	spriteColor := color.NRGBA{77, 128, 200, 255}
	for y := 0; y < 120; y++ {
		for x := 0; x < 120; x++ {
			mp := mi.NRGBAAt(x, y)
			pp := pi.NRGBAAt(x, y)
			coveredMasked := mp == silhouette
			coveredPlain := pp == spriteColor
			if coveredMasked != coveredPlain {
				t.Fatalf("shape mismatch at (%d,%d): masked covered=%v plain covered=%v",
					x, y, coveredMasked, coveredPlain)
			}
		}
	}
}
