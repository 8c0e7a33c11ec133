// Package imaging converts between decoded images and the flat RGB sample
// buffers the steganography core operates on, and handles the lossless
// PNG transport of encoded results.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
)

// channels is the number of samples per pixel in a flat buffer.
const channels = 3

var (
	// ErrUndecodable is returned when the input is not a recognizable image.
	ErrUndecodable = errors.New("cannot decode image")

	// ErrEmptyImage is returned when an image has no pixels.
	ErrEmptyImage = errors.New("image has no pixels")

	// ErrBufferSize is returned when a flat buffer does not match the
	// declared image dimensions.
	ErrBufferSize = errors.New("pixel buffer does not match image dimensions")
)

// Decode reads an image from r. PNG, JPEG and GIF sources are accepted;
// the encoded result is always written back as PNG since lossy formats
// destroy the embedded bits.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return img, nil
}

// Flatten converts img to a flat row-major buffer of 8-bit RGB samples.
// Grayscale and alpha sources are reduced to three opaque channels, the
// same normalization every input goes through before embedding.
func Flatten(img image.Image) (pix []byte, width, height int, err error) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return nil, 0, 0, ErrEmptyImage
	}

	pix = make([]byte, width*height*channels)

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pix[i] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(bl >> 8)
			i += channels
		}
	}

	return pix, width, height, nil
}

// Unflatten builds an opaque image from a flat RGB buffer produced by
// Flatten, preserving every sample byte exactly.
func Unflatten(pix []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*channels {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(pix), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := img.PixOffset(x, y)
			img.Pix[o] = pix[i]
			img.Pix[o+1] = pix[i+1]
			img.Pix[o+2] = pix[i+2]
			img.Pix[o+3] = 0xFF
			i += channels
		}
	}

	return img, nil
}

// EncodePNG writes a flat RGB buffer to w as a PNG image.
func EncodePNG(w io.Writer, pix []byte, width, height int) error {
	img, err := Unflatten(pix, width, height)
	if err != nil {
		return err
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	return nil
}
