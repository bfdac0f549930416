package app

import (
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/simgraph/pkg/utils"
)

type Options struct {
	fs     vfs.FileSystem
	config *Config
	level  string
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}
	opts.config = GetConfig(opts.fs)

	maincmd := &cobra.Command{
		Use:   "simctl <options> <cmd> <args>",
		Short: "build and inspect spatial information models",
		Long: `
This command builds spatial information models from scenario
descriptions, queries them and exports them as SIM documents.
`,
		Run:              nil,
		TraverseChildren: true,
		SilenceErrors:    true,
		SilenceUsage:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.level == "" {
				return nil
			}
			return SetLogLevel(opts.level)
		},
	}

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.level, "log-level", "L", "", "log level")

	maincmd.AddCommand(NewBuild(opts))
	maincmd.AddCommand(NewInfo(opts))
	maincmd.AddCommand(NewQuery(opts))
	maincmd.AddCommand(NewRandom(opts))
	maincmd.AddCommand(NewCheck(opts))
	return maincmd
}
