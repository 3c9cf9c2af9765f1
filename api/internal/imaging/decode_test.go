package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDecodeStrictFormats(t *testing.T) {
	src := solidImage(20, 10, color.RGBA{R: 200, G: 10, B: 30, A: 255})

	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"jpeg": func(b *bytes.Buffer) error { return jpeg.Encode(b, src, &jpeg.Options{Quality: 90}) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatalf("encode %s: %v", name, err)
			}
			r, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if r.Width != 20 || r.Height != 10 {
				t.Fatalf("got %dx%d, want 20x10", r.Width, r.Height)
			}
			if len(r.Pix) != 20*10*3 {
				t.Fatalf("pix length = %d, want %d", len(r.Pix), 20*10*3)
			}
		})
	}
}

func TestDecodeChannelOrder(t *testing.T) {
	src := solidImage(4, 4, color.RGBA{R: 200, G: 10, B: 30, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	r, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	cr, cg, cb := r.At(0, 0)
	if cr != 200 || cg != 10 || cb != 30 {
		t.Fatalf("got (%d,%d,%d), want (200,10,30)", cr, cg, cb)
	}
}

func TestDecodeFallbackTIFF(t *testing.T) {
	src := solidImage(8, 6, color.RGBA{R: 50, G: 100, B: 150, A: 255})
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, src, nil); err != nil {
		t.Fatal(err)
	}

	// TIFF has no strict-path codec.
	if _, err := decodeStrict(buf.Bytes()); err == nil {
		t.Fatal("decodeStrict accepted TIFF, fallback is untested")
	}

	r, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if r.Width != 8 || r.Height != 6 {
		t.Fatalf("got %dx%d, want 8x6", r.Width, r.Height)
	}
	cr, cg, cb := r.At(3, 3)
	if cr != 50 || cg != 100 || cb != 150 {
		t.Fatalf("got (%d,%d,%d), want (50,100,150)", cr, cg, cb)
	}
}

func TestDecodeGrayToCanonical(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			gray.SetGray(x, y, color.Gray{Y: 77})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		t.Fatal(err)
	}
	r, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	cr, cg, cb := r.At(2, 2)
	if cr != 77 || cg != 77 || cb != 77 {
		t.Fatalf("got (%d,%d,%d), want equal channels at 77", cr, cg, cb)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Decode(nil) error = %v, want ErrEmptyInput", err)
	}
	if _, err := Decode([]byte{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Decode(empty) error = %v, want ErrEmptyInput", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("definitely not an image")); !errors.Is(err, ErrUndecodable) {
		t.Fatalf("error = %v, want ErrUndecodable", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	src := solidImage(64, 64, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]
	if _, err := Decode(truncated); !errors.Is(err, ErrUndecodable) {
		t.Fatalf("error = %v, want ErrUndecodable", err)
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	src := solidImage(3, 2, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	r, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	encoded, err := r.EncodePNG()
	if err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	back, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode(EncodePNG()) error = %v", err)
	}
	if back.Width != r.Width || back.Height != r.Height {
		t.Fatalf("round trip changed size: %dx%d -> %dx%d", r.Width, r.Height, back.Width, back.Height)
	}
	if !bytes.Equal(back.Pix, r.Pix) {
		t.Fatal("round trip changed pixels")
	}
}
