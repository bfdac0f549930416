package app

import (
	"github.com/spf13/cobra"
)

type Build struct {
	cmd *cobra.Command

	scenario ScenarioOptions
	output   OutputOptions
}

func NewBuild(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <scenario> <options>",
		Short: "build a scenario and export the model",
		Args:  cobra.ExactArgs(1),
	}
	TweakCommand(cmd)

	c := &Build{
		cmd:      cmd,
		scenario: ScenarioOptions{mainopts: opts},
		output:   OutputOptions{mainopts: opts},
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	c.scenario.AddFlags(cmd.Flags())
	c.output.AddFlags(cmd.Flags())
	return cmd
}

func (c *Build) Run(args []string) error {
	m, _, err := c.scenario.Build(args[0])
	if err != nil {
		return err
	}
	doc, err := m.ToDocument()
	if err != nil {
		return err
	}
	return c.output.Write(c.cmd.OutOrStdout(), doc)
}
