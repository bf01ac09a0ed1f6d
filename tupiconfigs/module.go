package tupiconfigs

import (
	"github.com/reusee/dscope"

	"github.com/tupilang/tupi/configs"
	"github.com/tupilang/tupi/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
