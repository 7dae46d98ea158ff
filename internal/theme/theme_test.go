package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	input := `
// comment
Name: custom
Background: #112233
inputinvalid: red
SliderKnob: rgba(1,2,3,0.5)
Unknown: #FFFFFF
`
	th, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("name = %q", th.Name)
	}
	if th.Background != (color.RGBA{0x11, 0x22, 0x33, 255}) {
		t.Errorf("background = %v", th.Background)
	}
	if th.InputInvalid != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("input invalid = %v", th.InputInvalid)
	}
	if th.SliderKnob != (color.RGBA{1, 2, 3, 128}) {
		t.Errorf("slider knob = %v", th.SliderKnob)
	}
	if th.CheckerDark != Default().CheckerDark {
		t.Errorf("unset field lost its default")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: #12")); err == nil {
		t.Fatal("expected error")
	}
}

func TestEmbeddedThemesLoad(t *testing.T) {
	l := &Loader{}
	names := Embedded()
	if len(names) < 2 {
		t.Fatalf("embedded themes = %v", names)
	}
	for _, name := range names {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name != name {
			t.Errorf("theme %q reports name %q", name, th.Name)
		}
	}
	def, err := l.Load("default")
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Name = "default"
	if *def != *want {
		t.Errorf("default.theme drifted from Default():\n%+v\n%+v", def, want)
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config")
	if err := os.MkdirAll(cfg, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg, "ocean.theme"), []byte("Name: ocean\nBackground: #000080\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: cfg, SystemDir: filepath.Join(dir, "system")}

	th, err := l.Load("ocean")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Background != (color.RGBA{0, 0, 0x80, 255}) {
		t.Errorf("background = %v", th.Background)
	}
	th, err = l.Load(filepath.Join(cfg, "ocean.theme"))
	if err != nil || th.Name != "ocean" {
		t.Fatalf("load by path: %v %v", th, err)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Fatal("expected missing theme error")
	}
	if th, err := l.Load(""); err != nil || th.Name != "Default" {
		t.Fatalf("empty name: %v %v", th, err)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{1, 2, 3, 255}); got != "#010203" {
		t.Errorf("Hex = %q", got)
	}
	if got := Hex(color.RGBA{1, 2, 3, 4}); got != "#01020304" {
		t.Errorf("Hex = %q", got)
	}
}
