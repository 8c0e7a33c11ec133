// Command pixelveil hides encrypted messages in image files and recovers
// them, using LSB steganography with password-based encryption.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
