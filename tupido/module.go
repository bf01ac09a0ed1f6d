package tupido

import (
	"github.com/reusee/dscope"

	"github.com/tupilang/tupi/debugs"
	"github.com/tupilang/tupi/logs"
	"github.com/tupilang/tupi/tupiconfigs"
)

type Module struct {
	dscope.Module
	Configs tupiconfigs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}
