package app

import (
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"strings"

	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mandelsoft/simgraph/pkg/document"
	"github.com/mandelsoft/simgraph/pkg/scenario"
	"github.com/mandelsoft/simgraph/pkg/sim"
)

func TweakCommand(cmd *cobra.Command) {
	cmd.DisableFlagsInUseLine = true
	cmd.SilenceUsage = true
}

// ScenarioOptions are the options of commands
// working on a scenario file.
type ScenarioOptions struct {
	mainopts  *Options
	variables []string
}

func (o *ScenarioOptions) AddFlags(flags *pflag.FlagSet) {
	flags.StringArrayVarP(&o.variables, "variable", "v", nil, "scenario variable (<name>=<value>)")
}

func (o *ScenarioOptions) Variables() (map[string]string, error) {
	vars := maps.Clone(o.mainopts.config.Variables)
	if vars == nil {
		vars = map[string]string{}
	}
	for _, v := range o.variables {
		name, value, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid variable %q, <name>=<value> required", v)
		}
		vars[name] = value
	}
	return vars, nil
}

// Build loads and builds a scenario.
func (o *ScenarioOptions) Build(path string) (*sim.Model, scenario.Names, error) {
	vars, err := o.Variables()
	if err != nil {
		return nil, nil, err
	}
	s, err := scenario.Load(o.mainopts.fs, path, vars)
	if err != nil {
		return nil, nil, err
	}
	m, names, err := s.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("model {{model}} built from {{path}}", "model", m.Id(), "path", path)
	return m, names, nil
}

// OutputOptions are the options of commands
// writing a document.
type OutputOptions struct {
	mainopts *Options
	output   string
	format   string
}

func (o *OutputOptions) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.output, "output", "o", "", "output file")
	flags.StringVarP(&o.format, "format", "f", "", "output format (json, yaml or canonical)")
}

func (o *OutputOptions) Format() (document.Format, error) {
	f := o.format
	if f == "" {
		f = *o.mainopts.config.Format
	}
	return document.ParseFormat(f)
}

// Write writes the document to the output file or
// the given writer, if no output file is set.
func (o *OutputOptions) Write(w io.Writer, doc *document.Document) error {
	f, err := o.Format()
	if err != nil {
		return err
	}
	if o.output != "" {
		return document.Write(o.mainopts.fs, o.output, doc, f)
	}
	data, err := document.Encode(doc, f)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", strings.TrimSuffix(string(data), "\n"))
	return err
}

func writeFile(opts *Options, path string, data []byte) error {
	err := opts.fs.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return err
	}
	return vfs.WriteFile(opts.fs, path, data, 0o644)
}
