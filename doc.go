// Package pixelveil hides encrypted text messages inside the least
// significant bits of an image's pixel samples and recovers them given
// the correct password.
//
// The core operates on flat pixel buffers: a contiguous byte slice of
// 8-bit samples, three interleaved channels per pixel, row-major. The
// internal/imaging package converts decoded images to and from this
// representation.
//
// Basic usage, given a flat pixel buffer:
//
//	encoded, err := pixelveil.Encode(pix, "meet at dawn", "hunter2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg, err := pixelveil.Decode(encoded, "hunter2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(msg) // "meet at dawn"
//
// Every decode failure (no embedded data, corrupted image, wrong
// password) returns the single sentinel ErrNoHiddenMessage so callers
// cannot distinguish the causes.
package pixelveil
