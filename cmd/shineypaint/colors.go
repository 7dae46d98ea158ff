package main

import (
	"flag"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

// Run prints the named colours accepted by -color, optionally only those
// containing the given text.
func (c *colorsCmd) Run() error {
	filter := strings.ToLower(c.fs.Arg(0))
	out := c.out()
	n := 0
	for _, name := range colornames.Names {
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		col := colornames.Map[name]
		hex := fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", col.R, col.G, col.B)
		fmt.Fprintf(out, "%-20s %s %s\n", name, hex, block)
		n++
	}
	if n == 0 {
		fmt.Fprintln(out, "no colors available")
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
