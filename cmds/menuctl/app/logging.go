package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/logging/logrusl"
	"github.com/mandelsoft/logging/logrusr"
)

var REALM = logging.DefineRealm("menuctl", "menu command line tool")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)

func init() {
	logcfg := logrusl.Human(true)
	lctx := logging.DefaultContext()
	lctx.SetBaseLogger(logrusr.New(logcfg.NewLogrus()))
}

// ConfigureLogging sets the log level for all realms
// used by the tool.
func ConfigureLogging(level string) error {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	lctx := logging.DefaultContext()
	for _, r := range []string{"menuctl", "menu", "storage"} {
		lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix(r)))
	}
	return nil
}
