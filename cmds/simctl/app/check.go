package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/simgraph/pkg/document"
)

type Check struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewCheck(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <document>",
		Short: "check a SIM document",
		Args:  cobra.ExactArgs(1),
	}
	TweakCommand(cmd)

	c := &Check{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Check) Run(args []string) error {
	doc, err := document.Read(c.mainopts.fs, args[0])
	if err != nil {
		return err
	}
	err = doc.Validate()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	g := &doc.Geometry
	out := c.cmd.OutOrStdout()
	fmt.Fprintf(out, "%s document version %s\n", doc.Type, doc.Version)
	fmt.Fprintf(out, "posis:  %d\n", g.NumPosis)
	fmt.Fprintf(out, "points: %d\n", len(g.Points))
	fmt.Fprintf(out, "plines: %d\n", len(g.Plines))
	fmt.Fprintf(out, "pgons:  %d\n", len(g.Pgons))
	fmt.Fprintf(out, "colls:  %d\n", len(g.CollPoints))
	for _, cat := range document.Categories {
		atts, _ := doc.Attributes.For(cat)
		for _, a := range *atts {
			fmt.Fprintf(out, "attribute %s/%s (%s): %d values\n", cat, a.Name, a.DataType, len(a.Values))
		}
	}
	for _, a := range doc.Attributes.Model {
		fmt.Fprintf(out, "model attribute %s\n", a.Name)
	}
	return nil
}
