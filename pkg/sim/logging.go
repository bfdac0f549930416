package sim

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("sim", "spatial information model")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
