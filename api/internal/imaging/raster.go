package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// Raster is a decoded image in canonical interleaved RGB layout,
// 3 bytes per pixel, row-major. It lives for one request only.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// Size returns the pixel count.
func (r *Raster) Size() int { return r.Width * r.Height }

// At returns the RGB triple at (x, y).
func (r *Raster) At(x, y int) (uint8, uint8, uint8) {
	i := (y*r.Width + x) * 3
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

// EncodePNG re-encodes the raster for engines that take an image payload.
func (r *Raster) EncodePNG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			cr, cg, cb := r.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: cr, G: cg, B: cb, A: 0xFF})
		}
	}
	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// fromImage flattens any color model into the canonical RGB layout.
func fromImage(img image.Image) *Raster {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	r := &Raster{Width: w, Height: h, Pix: make([]uint8, w*h*3)}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r.Pix[i] = uint8(cr >> 8)
			r.Pix[i+1] = uint8(cg >> 8)
			r.Pix[i+2] = uint8(cb >> 8)
			i += 3
		}
	}
	return r
}
