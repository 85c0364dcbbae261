package menu

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("menu", "in-memory dish store")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
