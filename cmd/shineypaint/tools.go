package main

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/example/shineypaint/internal/tool"
)

type toolsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseToolsCmd(args []string, r *root) (*toolsCmd, error) {
	fs := flag.NewFlagSet("tools", flag.ContinueOnError)
	cmd := &toolsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

// Run lists every tool with its gesture, option panel and parameters after
// configuration overrides are applied.
func (c *toolsCmd) Run() error {
	reg := tool.NewRegistry()
	if err := reg.Validate(); err != nil {
		return err
	}
	if c.config != nil {
		if err := c.config.ApplyTools(reg); err != nil {
			return err
		}
	}
	tw := tabwriter.NewWriter(c.out(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TOOL\tGESTURE\tPANEL\tPARAMETERS")
	for _, t := range reg.Tools() {
		params := make([]string, 0, len(t.Accepts))
		for _, p := range t.Accepts {
			params = append(params, p.String()+"="+t.Params.Value(p))
		}
		panel := t.Panel
		if panel == "" {
			panel = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, t.Gesture, panel, strings.Join(params, " "))
	}
	return tw.Flush()
}

func (c *toolsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
