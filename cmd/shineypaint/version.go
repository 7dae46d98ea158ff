package main

import (
	"flag"
	"fmt"
)

type versionCmd struct{ r *root }

func parseVersionCmd(args []string, r *root) (*versionCmd, error) {
	v := &versionCmd{r: r}
	if len(args) != 0 {
		return nil, &UsageError{of: v}
	}
	return v, nil
}

func (v *versionCmd) Program() string        { return v.r.program }
func (v *versionCmd) FlagSet() *flag.FlagSet { return nil }

func (v *versionCmd) Run() error {
	line := fmt.Sprintf("%s version %s", v.r.program, version)
	if commit != "" {
		line += " (" + commit
		if date != "" {
			line += " " + date
		}
		line += ")"
	}
	fmt.Fprintln(v.r.out(), line)
	return nil
}
