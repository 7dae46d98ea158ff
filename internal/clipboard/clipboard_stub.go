//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import "fmt"

// WriteText reports that the clipboard is unavailable on this platform.
func WriteText(string) error {
	return fmt.Errorf("clipboard text operations are not supported on this platform")
}

// ReadText reports that the clipboard is unavailable on this platform.
func ReadText() (string, error) {
	return "", fmt.Errorf("clipboard text operations are not supported on this platform")
}
