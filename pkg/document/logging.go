package document

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("document", "SIM document encoding")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
