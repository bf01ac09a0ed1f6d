package debugs

import (
	"github.com/reusee/dscope"

	"github.com/tupilang/tupi/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
