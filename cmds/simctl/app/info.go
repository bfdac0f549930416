package app

import (
	"github.com/spf13/cobra"
)

type Info struct {
	cmd *cobra.Command

	scenario ScenarioOptions
}

func NewInfo(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <scenario> <options>",
		Short: "show the graph of a scenario model",
		Args:  cobra.ExactArgs(1),
	}
	TweakCommand(cmd)

	c := &Info{
		cmd:      cmd,
		scenario: ScenarioOptions{mainopts: opts},
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	c.scenario.AddFlags(cmd.Flags())
	return cmd
}

func (c *Info) Run(args []string) error {
	m, _, err := c.scenario.Build(args[0])
	if err != nil {
		return err
	}
	return m.Info(c.cmd.OutOrStdout())
}
