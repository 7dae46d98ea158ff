package platform

import "testing"

func TestOptionsTimeout(t *testing.T) {
	if got := (Options{}).timeout(); got != 3000 {
		t.Fatalf("default timeout = %d", got)
	}
	if got := (Options{TimeoutMS: 750}).timeout(); got != 750 {
		t.Fatalf("timeout = %d", got)
	}
}
