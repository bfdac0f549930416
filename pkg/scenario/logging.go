package scenario

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("scenario", "model scenarios")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
