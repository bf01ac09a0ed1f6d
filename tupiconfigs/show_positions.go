package tupiconfigs

import (
	"github.com/tupilang/tupi/cmds"
	"github.com/tupilang/tupi/configs"
)

// ShowPositions extends the driver output with the line:column of each
// token.
type ShowPositions bool

var _ configs.Configurable = ShowPositions(false)

func (s ShowPositions) ConfigExpr() string {
	return "show_positions"
}

var showPositionsFlag = cmds.Switch("-positions")

func (Module) ShowPositions(
	loader configs.Loader,
) ShowPositions {
	if *showPositionsFlag {
		return true
	}
	return ShowPositions(configs.First[bool](loader, "show_positions"))
}
