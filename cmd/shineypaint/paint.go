package main

import (
	"flag"
	"fmt"

	"github.com/example/shineypaint/internal/appstate"
	"github.com/example/shineypaint/internal/surface"
	"github.com/example/shineypaint/internal/tool"
)

// runUI is replaced in tests so no window is opened.
var runUI = (*appstate.AppState).Run

type paintCmd struct {
	*root
	fs     *flag.FlagSet
	width  string
	height string
	tool   string
	color  string
	stroke bool
	demo   bool
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet("paint", flag.ContinueOnError)
	p := &paintCmd{root: r, fs: fs}
	fs.StringVar(&p.width, "width", "", "canvas width, e.g. 640px")
	fs.StringVar(&p.height, "height", "", "canvas height, e.g. 480px")
	fs.StringVar(&p.tool, "tool", "", "tool selected at start up")
	fs.StringVar(&p.color, "color", "", "initial colour as a name, #RRGGBB or rgba(r,g,b,a)")
	fs.BoolVar(&p.stroke, "stroke", false, "outline shapes instead of filling them")
	fs.BoolVar(&p.demo, "demo", false, "paint the sample scene on start up")
	fs.Usage = usageFunc(p)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	if p.tool != "" {
		if _, err := tool.ParseID(p.tool); err != nil {
			return nil, fmt.Errorf("-tool: %w", err)
		}
	}
	if p.color != "" {
		if _, err := surface.ParseRGBA(p.color); err != nil {
			return nil, fmt.Errorf("-color: %w", err)
		}
	}
	return p, nil
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

// options layers the command line over the configuration file.
func (p *paintCmd) options() []appstate.Option {
	opts := []appstate.Option{
		appstate.WithConfig(p.config),
		appstate.WithTheme(p.activeTheme),
		appstate.WithNotifier(p.notifier),
	}
	if p.width != "" || p.height != "" {
		opts = append(opts, appstate.WithCanvasSize(
			p.dimension(p.width, p.config.CanvasWidth, appstate.DefaultCanvasWidth),
			p.dimension(p.height, p.config.CanvasHeight, appstate.DefaultCanvasHeight),
		))
	}
	if p.tool != "" {
		id, _ := tool.ParseID(p.tool)
		opts = append(opts, appstate.WithTool(id))
	}
	if p.color != "" {
		opts = append(opts, appstate.WithColor(p.color))
	}
	if p.stroke {
		opts = append(opts, appstate.WithFill(false))
	}
	if p.demo {
		opts = append(opts, appstate.WithDemo())
	}
	return opts
}

// dimension picks the flag value, then the configured pixels, then def.
func (p *paintCmd) dimension(flagValue string, configured int, def string) string {
	switch {
	case flagValue != "":
		return flagValue
	case configured > 0:
		return fmt.Sprintf("%dpx", configured)
	}
	return def
}

func (p *paintCmd) Run() error {
	st := appstate.New(p.options()...)
	runUI(st)
	return nil
}
