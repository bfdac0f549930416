package scenario

import (
	"fmt"
	"os"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"
)

// Load reads a scenario file. Variable references (${VAR})
// are substituted with the given variables, falling back to
// the process environment.
func Load(fs vfs.FileSystem, path string, vars map[string]string) (*Scenario, error) {
	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, vars)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("scenario {{path}} loaded", "path", path)
	return s, nil
}

// Parse parses a scenario description. Unknown fields are rejected.
func Parse(data []byte, vars map[string]string) (*Scenario, error) {
	text, err := envsubst.Eval(string(data), func(name string) string {
		if v, ok := vars[name]; ok {
			return v
		}
		return os.Getenv(name)
	})
	if err != nil {
		return nil, err
	}
	var s Scenario
	err = yaml.UnmarshalStrict([]byte(text), &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal provides the YAML description of a scenario.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
