package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/shineypaint/internal/document"
	"github.com/example/shineypaint/internal/surface"
	"github.com/example/shineypaint/internal/theme"
	"github.com/example/shineypaint/internal/tool"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	// Context for parsing
	var currentSection string
	var currentTheme *theme.Theme
	var currentTool map[string]string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		// Handle Sections
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTheme = nil
			currentTool = nil

			switch {
			case strings.HasPrefix(currentSection, "theme."):
				themeName := strings.TrimPrefix(currentSection, "theme.")
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			case strings.HasPrefix(currentSection, "tool."):
				toolName := strings.TrimPrefix(currentSection, "tool.")
				if _, err := tool.ParseID(toolName); err != nil {
					return nil, fmt.Errorf("section [%s]: %w", currentSection, err)
				}
				currentTool = cfg.Tools[toolName]
				if currentTool == nil {
					currentTool = make(map[string]string)
					cfg.Tools[toolName] = currentTool
				}
			}
			continue
		}

		// Parse Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		// Remove quotes if present
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		switch {
		case currentTheme != nil:
			if err := theme.Set(currentTheme, key, value); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
			}
		case currentTool != nil:
			if _, err := tool.ParseParam(key); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
			}
			currentTool[key] = value
		case currentSection == "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		case currentSection == "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "canvas_width", "canvas_height":
		n, ok := document.ParsePixels(value)
		if !ok || n < 0 {
			return fmt.Errorf("invalid size for key %s: %q", key, value)
		}
		if strings.EqualFold(key, "canvas_width") {
			cfg.CanvasWidth = n
		} else {
			cfg.CanvasHeight = n
		}
	case "color":
		if _, err := surface.ParseRGBA(value); err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		cfg.Color = value
	case "fill":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		cfg.Fill = b
	case "tool":
		if _, err := tool.ParseID(value); err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}
		cfg.Tool = value
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "copy":
		n.Copy = b
	case "paste":
		n.Paste = b
	}
	return nil
}
