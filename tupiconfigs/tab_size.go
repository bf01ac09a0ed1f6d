package tupiconfigs

import (
	"github.com/tupilang/tupi/cmds"
	"github.com/tupilang/tupi/configs"
	"github.com/tupilang/tupi/logs"
	"github.com/tupilang/tupi/tupilang"
	"github.com/tupilang/tupi/vars"
)

// TabSize is the column width of a tab character when the scanner
// computes token columns.
type TabSize int

var _ configs.Configurable = TabSize(0)

func (t TabSize) ConfigExpr() string {
	return "tab_size"
}

var tabSizeFlag = cmds.Var[int]("-tab-size")

func (Module) TabSize(
	loader configs.Loader,
	logger logs.Logger,
) TabSize {
	n := vars.FirstNonZero(
		*tabSizeFlag,
		configs.First[int](loader, "tab_size"),
		tupilang.DefaultTabSize,
	)
	if n <= 0 {
		logger.Warn("ignoring non-positive tab size",
			"tab_size", n,
		)
		n = tupilang.DefaultTabSize
	}
	return TabSize(n)
}
