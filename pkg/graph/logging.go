package graph

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("graph", "typed multigraph")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
