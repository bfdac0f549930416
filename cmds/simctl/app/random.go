package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/simgraph/pkg/scenario"
)

type Random struct {
	cmd *cobra.Command

	output   OutputOptions
	opts     scenario.RandomOptions
	scenario bool
}

func NewRandom(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random <options>",
		Short: "generate a random model",
		Args:  cobra.NoArgs,
	}
	TweakCommand(cmd)

	c := &Random{
		cmd:    cmd,
		output: OutputOptions{mainopts: opts},
		opts:   scenario.DefaultRandomOptions(),
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	c.output.AddFlags(flags)
	flags.Int64Var(&c.opts.Seed, "seed", c.opts.Seed, "random seed")
	flags.IntVar(&c.opts.Posis, "posis", c.opts.Posis, "number of positions")
	flags.IntVar(&c.opts.Points, "points", c.opts.Points, "number of points")
	flags.IntVar(&c.opts.Plines, "plines", c.opts.Plines, "number of polylines")
	flags.IntVar(&c.opts.Pgons, "pgons", c.opts.Pgons, "number of polygons")
	flags.IntVar(&c.opts.Colls, "colls", c.opts.Colls, "number of collections")
	flags.BoolVarP(&c.scenario, "scenario", "s", false, "output the scenario instead of the model")
	return cmd
}

func (c *Random) Run(args []string) error {
	for _, n := range []int{c.opts.Posis, c.opts.Points, c.opts.Plines, c.opts.Pgons, c.opts.Colls} {
		if n < 0 {
			return fmt.Errorf("entity counts must not be negative")
		}
	}
	s := scenario.Random(c.opts)
	if c.scenario {
		data, err := s.Marshal()
		if err != nil {
			return err
		}
		if c.output.output != "" {
			return writeFile(c.output.mainopts, c.output.output, data)
		}
		_, err = fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", strings.TrimSuffix(string(data), "\n"))
		return err
	}
	m, _, err := s.Build()
	if err != nil {
		return err
	}
	doc, err := m.ToDocument()
	if err != nil {
		return err
	}
	return c.output.Write(c.cmd.OutOrStdout(), doc)
}
