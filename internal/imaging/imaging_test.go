package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

// gradientImage builds an NRGBA image with distinct channel values per pixel.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{
				R: byte(x * 7),
				G: byte(y * 11),
				B: byte(x + y),
				A: 0xFF,
			})
		}
	}
	return img
}

func TestFlatten_Dimensions(t *testing.T) {
	pix, w, h, err := Flatten(gradientImage(10, 4))
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}

	if w != 10 || h != 4 {
		t.Errorf("dimensions = %dx%d, want 10x4", w, h)
	}
	if len(pix) != 10*4*3 {
		t.Errorf("buffer length = %d, want %d", len(pix), 10*4*3)
	}

	// Spot-check a known pixel: (3, 2).
	off := (2*10 + 3) * 3
	if pix[off] != 21 || pix[off+1] != 22 || pix[off+2] != 5 {
		t.Errorf("pixel (3,2) = %v, want [21 22 5]", pix[off:off+3])
	}
}

func TestFlatten_GrayReducedToThreeChannels(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 16)
	}

	pix, _, _, err := Flatten(img)
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}

	if len(pix) != 4*4*3 {
		t.Fatalf("buffer length = %d, want %d", len(pix), 4*4*3)
	}
	for i := 0; i < len(pix); i += 3 {
		if pix[i] != pix[i+1] || pix[i] != pix[i+2] {
			t.Fatalf("pixel %d: gray source produced unequal channels %v", i/3, pix[i:i+3])
		}
	}
}

func TestFlatten_EmptyImage(t *testing.T) {
	if _, _, _, err := Flatten(image.NewNRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("expected ErrEmptyImage, got %v", err)
	}
}

func TestFlatten_Unflatten_RoundTrip(t *testing.T) {
	pix, w, h, err := Flatten(gradientImage(8, 5))
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}

	img, err := Unflatten(pix, w, h)
	if err != nil {
		t.Fatalf("Unflatten() error = %v", err)
	}

	again, _, _, err := Flatten(img)
	if err != nil {
		t.Fatalf("Flatten() round trip error = %v", err)
	}
	if !bytes.Equal(pix, again) {
		t.Error("flatten/unflatten round trip changed sample bytes")
	}
}

func TestUnflatten_BadBufferSize(t *testing.T) {
	tests := []struct {
		name string
		pix  []byte
		w, h int
	}{
		{"short buffer", make([]byte, 10), 4, 4},
		{"long buffer", make([]byte, 100), 4, 4},
		{"zero width", make([]byte, 0), 0, 4},
		{"negative height", make([]byte, 48), 4, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unflatten(tt.pix, tt.w, tt.h); !errors.Is(err, ErrBufferSize) {
				t.Errorf("expected ErrBufferSize, got %v", err)
			}
		})
	}
}

func TestEncodePNG_Decode_PreservesSamples(t *testing.T) {
	pix, w, h, err := Flatten(gradientImage(12, 9))
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, pix, w, h); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	// PNG is lossless: every sample must survive the round trip, or the
	// embedded bits would be destroyed in transit.
	again, _, _, err := Flatten(decoded)
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if !bytes.Equal(pix, again) {
		t.Error("PNG round trip changed sample bytes")
	}
}

func TestDecode_Undecodable(t *testing.T) {
	if _, err := Decode(strings.NewReader("not an image")); !errors.Is(err, ErrUndecodable) {
		t.Errorf("expected ErrUndecodable, got %v", err)
	}
}

func TestDataURL_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, gradientImage(3, 3)); err != nil {
		t.Fatal(err)
	}

	url := ToDataURL(buf.Bytes())
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("data URL %q missing prefix", url[:30])
	}

	raw, err := FromDataURL(url)
	if err != nil {
		t.Fatalf("FromDataURL() error = %v", err)
	}
	if !bytes.Equal(raw, buf.Bytes()) {
		t.Error("data URL round trip changed PNG bytes")
	}
}

func TestFromDataURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"wrong scheme", "http://example.com/x.png"},
		{"wrong media type", "data:image/jpeg;base64,AAAA"},
		{"bad base64", "data:image/png;base64,@@@@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromDataURL(tt.in); !errors.Is(err, ErrNotDataURL) {
				t.Errorf("expected ErrNotDataURL, got %v", err)
			}
		})
	}
}
