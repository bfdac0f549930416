package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/simgraph/pkg/sim"
	"github.com/mandelsoft/simgraph/pkg/utils"
)

type Query struct {
	cmd *cobra.Command

	scenario ScenarioOptions
	target   string
}

func NewQuery(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <scenario> {<entity name>} <options>",
		Short: "query entities of a scenario model",
		Long: `
Lists the entities of the target category. If entity names are given,
only the target entities related to these entities are listed.
`,
		Args: cobra.MinimumNArgs(1),
	}
	TweakCommand(cmd)

	c := &Query{
		cmd:      cmd,
		scenario: ScenarioOptions{mainopts: opts},
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	c.scenario.AddFlags(cmd.Flags())
	types := utils.TransformSlice(sim.EntityTypes(), sim.EntityType.String)
	cmd.Flags().StringVarP(&c.target, "target", "t", "", "target category ("+strings.Join(types, ", ")+")")
	return cmd
}

func (c *Query) Run(args []string) error {
	if c.target == "" {
		return fmt.Errorf("target category required")
	}
	t, err := sim.ParseEntityType(c.target)
	if err != nil {
		return err
	}
	m, names, err := c.scenario.Build(args[0])
	if err != nil {
		return err
	}

	var sources []string
	if len(args) > 1 {
		sources, err = names.Ids(args[1:]...)
		if err != nil {
			return err
		}
	}
	ids, err := m.GetEnts(t, sources)
	if err != nil {
		return err
	}

	reverse := map[string]string{}
	for n, id := range names {
		reverse[id] = n
	}
	out := c.cmd.OutOrStdout()
	for _, id := range ids {
		if n, ok := reverse[id]; ok {
			fmt.Fprintf(out, "%s %s\n", id, n)
		} else {
			fmt.Fprintf(out, "%s\n", id)
		}
	}
	return nil
}
