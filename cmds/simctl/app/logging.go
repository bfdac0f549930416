package app

import (
	"github.com/mandelsoft/logging"

	"github.com/mandelsoft/simgraph/pkg/document"
	"github.com/mandelsoft/simgraph/pkg/graph"
	"github.com/mandelsoft/simgraph/pkg/scenario"
	"github.com/mandelsoft/simgraph/pkg/sim"
)

var REALM = logging.DefineRealm("simctl", "model command line tool")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

var realms = []logging.Realm{REALM, graph.REALM, sim.REALM, document.REALM, scenario.REALM}

// SetLogLevel enables logging for all realms of the
// tool up to the given level.
func SetLogLevel(level string) error {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	lctx := logging.DefaultContext()
	for _, r := range realms {
		lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix(r.Name())))
	}
	return nil
}
