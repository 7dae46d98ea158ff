package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/shineypaint/internal/theme"
	"github.com/example/shineypaint/internal/tool"
)

// Notify holds notification settings.
type Notify struct {
	Copy  bool
	Paste bool
}

// Config holds the application configuration.
type Config struct {
	Theme string
	// CanvasWidth and CanvasHeight are in pixels; zero leaves the size to
	// the window layout.
	CanvasWidth  int
	CanvasHeight int
	// Color is the initial paint colour in any form surface.ParseRGBA accepts.
	Color  string
	Fill   bool
	Tool   string
	Notify Notify
	// Tools maps a tool name to parameter overrides, applied in name order.
	Tools  map[string]map[string]string
	Themes map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Fill:  true,
		Tools: make(map[string]map[string]string),
		Notify: Notify{
			Copy:  false,
			Paste: false,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// ApplyTools pushes the [tool.*] overrides into reg. A value the registry
// marks invalid is reported as an error.
func (c *Config) ApplyTools(reg *tool.Registry) error {
	for _, name := range sortedKeys(c.Tools) {
		params := c.Tools[name]
		for _, param := range sortedKeys(params) {
			state, err := reg.Apply(name, param, params[param])
			if err != nil {
				return fmt.Errorf("[tool.%s] %s: %w", name, param, err)
			}
			if state == tool.FieldInvalid {
				return fmt.Errorf("[tool.%s] %s: invalid value %q", name, param, params[param])
			}
		}
	}
	return nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.CanvasWidth > 0 {
		fmt.Fprintf(&sb, "canvas_width = %dpx\n", c.CanvasWidth)
	}
	if c.CanvasHeight > 0 {
		fmt.Fprintf(&sb, "canvas_height = %dpx\n", c.CanvasHeight)
	}
	if c.Color != "" {
		fmt.Fprintf(&sb, "color = %s\n", c.Color)
	}
	fmt.Fprintf(&sb, "fill = %v\n", c.Fill)
	if c.Tool != "" {
		fmt.Fprintf(&sb, "tool = %s\n", c.Tool)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "paste = %v\n", c.Notify.Paste)
	sb.WriteString("\n")

	for _, name := range sortedKeys(c.Tools) {
		fmt.Fprintf(&sb, "[tool.%s]\n", name)
		params := c.Tools[name]
		for _, param := range sortedKeys(params) {
			fmt.Fprintf(&sb, "%s = %s\n", param, params[param])
		}
		sb.WriteString("\n")
	}

	for _, name := range sortedKeys(c.Themes) {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Key, theme.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
