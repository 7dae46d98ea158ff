//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import "testing"

func TestUnsupportedPlatform(t *testing.T) {
	if err := WriteText("rgba(10,20,30,1)"); err == nil {
		t.Fatal("WriteText: expected an error")
	}
	if _, err := ReadText(); err == nil {
		t.Fatal("ReadText: expected an error")
	}
}
