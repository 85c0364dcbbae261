package storage

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("storage", "menu file persistence")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
