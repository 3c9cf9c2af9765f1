package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"

	// Registered for the permissive fallback path only.
	_ "image/gif"

	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrEmptyInput means no bytes were supplied at all.
	ErrEmptyInput = errors.New("empty image payload")
	// ErrUndecodable means both decode strategies rejected the bytes.
	ErrUndecodable = errors.New("failed to decode image")
)

// Decode turns uploaded bytes into a canonical RGB raster. The strict
// path dispatches on the container magic and covers the common formats;
// anything it rejects goes through a permissive second pass across every
// registered codec. Both failing is a client input error, not a server
// fault.
func Decode(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	if img, err := decodeStrict(data); err == nil {
		if r := fromImage(img); r.Size() > 0 {
			return r, nil
		}
	}

	img, err := decodePermissive(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	r := fromImage(img)
	if r.Size() == 0 {
		return nil, ErrUndecodable
	}
	return r, nil
}

// decodeStrict sniffs the container magic and runs the matching codec.
func decodeStrict(data []byte) (image.Image, error) {
	switch {
	case isJPEG(data):
		return jpeg.Decode(bytes.NewReader(data))
	case isPNG(data):
		return png.Decode(bytes.NewReader(data))
	case isBMP(data):
		return bmp.Decode(bytes.NewReader(data))
	}
	return nil, errors.New("unrecognized container")
}

// decodePermissive lets the image registry pick any codec it knows,
// including the extra formats registered above.
func decodePermissive(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func isJPEG(b []byte) bool {
	return len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8
}

func isPNG(b []byte) bool {
	return len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A
}

func isBMP(b []byte) bool {
	return len(b) >= 2 && b[0] == 'B' && b[1] == 'M'
}
