package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/shineypaint/internal/tool"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
canvas_width = 800px
canvas_height = 600
color = "rgba(10,20,30,1)"
fill = false
tool = clear-area

[notify]
copy = true
paste = false

[tool.rect]
width = 40
height: 12

[tool.brush]
shape = rect

[theme.my_custom_theme]
Background = #111111
InputInvalid = #FF0000
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.CanvasWidth != 800 || cfg.CanvasHeight != 600 {
		t.Errorf("canvas = %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.Color != "rgba(10,20,30,1)" {
		t.Errorf("color = %q", cfg.Color)
	}
	if cfg.Fill {
		t.Error("Expected fill to be false")
	}
	if cfg.Tool != "clear-area" {
		t.Errorf("tool = %q", cfg.Tool)
	}
	if !cfg.Notify.Copy || cfg.Notify.Paste {
		t.Errorf("notify = %+v", cfg.Notify)
	}
	if got := cfg.Tools["rect"]["height"]; got != "12" {
		t.Errorf("rect height override = %q", got)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
}

func TestParseErrors(t *testing.T) {
	for name, input := range map[string]string{
		"bad color":    "color = nope",
		"bad size":     "canvas_width = wide",
		"bad bool":     "[notify]\ncopy = maybe",
		"unknown tool": "[tool.spray]\nwidth = 1",
		"bad param":    "[tool.rect]\ndepth = 1",
		"bad initial":  "tool = spray",
		"theme color":  "[theme.x]\nBackground: #12",
	} {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestApplyTools(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[tool.rect]\nwidth = 40\n[tool.brush]\nshape = rect\n"))
	if err != nil {
		t.Fatal(err)
	}
	reg := tool.NewRegistry()
	if err := cfg.ApplyTools(reg); err != nil {
		t.Fatalf("ApplyTools: %v", err)
	}
	rect, _ := reg.Lookup(tool.Rect)
	brush, _ := reg.Lookup(tool.Brush)
	if rect.Params.Width != 40 || brush.Params.Shape != tool.ShapeRect {
		t.Fatalf("rect %+v brush %+v", rect.Params, brush.Params)
	}

	cfg.Tools["rect"]["height"] = "tall"
	if err := cfg.ApplyTools(reg); err == nil {
		t.Fatal("expected invalid value error")
	}
	delete(cfg.Tools["rect"], "height")
	cfg.Tools["pencil"] = map[string]string{"width": "3"}
	if err := cfg.ApplyTools(reg); !errors.Is(err, tool.ErrUnknownParam) {
		t.Fatalf("expected ErrUnknownParam, got %v", err)
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
canvas_width = 320px
color = #FF8000
tool = ellipse

[notify]
copy = true
paste = true

[tool.ellipse]
radiusX = 30
rotation = 45

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme || cfg.CanvasWidth != cfg2.CanvasWidth || cfg.CanvasHeight != cfg2.CanvasHeight {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Color != cfg2.Color || cfg.Fill != cfg2.Fill || cfg.Tool != cfg2.Tool {
		t.Errorf("paint defaults mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	if cfg2.Tools["ellipse"]["rotation"] != "45" || cfg2.Tools["ellipse"]["radiusX"] != "30" {
		t.Errorf("tool overrides lost: %v", cfg2.Tools)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverrideAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "paint.rc")
	l := NewLoader("v1.0.0", path)

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load without file: %v", err)
	}
	if !cfg.Fill || cfg.Theme != "" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}

	cfg.Theme = "dark"
	cfg.CanvasWidth = 640
	saved, err := l.Save(cfg)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved != path {
		t.Fatalf("saved to %q, want %q", saved, path)
	}
	if l.GetConfigPath() != path {
		t.Fatalf("GetConfigPath = %q", l.GetConfigPath())
	}
	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Theme != "dark" || loaded.CanvasWidth != 640 {
		t.Fatalf("reloaded %+v", loaded)
	}
}

func TestLoaderDevModeUsesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.WriteFile(".shineypaintrc", []byte("theme = dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := NewLoader("v1.2.3", "").GetConfigPath(); got != "" {
		t.Fatalf("release build picked up %q", got)
	}
	cfg, err := NewLoader("dev", "").Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "dark" {
		t.Fatalf("theme = %q", cfg.Theme)
	}
}
