package main

import (
	"context"
	"io"
	"os"

	"github.com/reusee/dscope"

	"github.com/tupilang/tupi/cmds"
	"github.com/tupilang/tupi/modes"
	"github.com/tupilang/tupi/tupido"
	"github.com/tupilang/tupi/vars"
)

var sourceFlag = cmds.Var[string]("source")

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(tupido.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		run tupido.Run,
	) {
		var input io.Reader = os.Stdin
		name := "stdin"
		if path := vars.DerefOrZero(sourceFlag); path != "" {
			f, err := os.Open(path)
			if err != nil {
				os.Stderr.WriteString(err.Error())
				os.Stderr.WriteString("\n")
				os.Exit(-1)
			}
			defer f.Close()
			input = f
			name = path
		}

		if err := run(context.Background(), name, input, os.Stdout); err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
	})
}
