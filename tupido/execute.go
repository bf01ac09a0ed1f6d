package tupido

import (
	"context"
	"fmt"
	"io"

	"github.com/tupilang/tupi/cmds"
	"github.com/tupilang/tupi/debugs"
	"github.com/tupilang/tupi/logs"
	"github.com/tupilang/tupi/tupiconfigs"
	"github.com/tupilang/tupi/tupilang"
)

var inspectFlag = cmds.Switch("-inspect")

// Run scans the whole of input and writes one "lexeme - kind" line per
// token to output. Scan failures are printed too and never stop the
// loop: the scanner guarantees progress past an unrecognized character.
type Run func(ctx context.Context, name string, input io.Reader, output io.Writer) error

func (Module) Run(
	tabSize tupiconfigs.TabSize,
	showPositions tupiconfigs.ShowPositions,
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context, name string, input io.Reader, output io.Writer) error {
		ctx = logs.WithSource(ctx, name)
		ctx, _ = newSpan(ctx, "")

		content, err := io.ReadAll(input)
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}

		source := tupilang.NewSource(name, string(content))
		scanner := tupilang.NewScanner(source)
		if err := scanner.SetTabSize(int(tabSize)); err != nil {
			return err
		}

		logger.InfoContext(ctx, "scan start",
			"tab_size", int(tabSize),
			"bytes", len(source.Content),
		)

		var failures int
		for !scanner.IsAtEnd() {
			token, err := scanner.Next()
			if err == tupilang.ErrEndOfInput {
				break
			}
			if err != nil {
				failures++
				fmt.Fprintln(output, err.Error())
				continue
			}
			if showPositions {
				fmt.Fprintf(output, "%s - %s @ %d:%d\n", token.Text, token.Kind, token.Line, token.Col)
			} else {
				fmt.Fprintf(output, "%s - %s\n", token.Text, token.Kind)
			}
		}

		logger.InfoContext(ctx, "scan done",
			"tokens", scanner.Len(),
			"failures", failures,
		)

		if *inspectFlag {
			tap(ctx, "scan", map[string]any{
				"name":     name,
				"tokens":   scanner.Tokens(),
				"line":     scanner.Line(),
				"column":   scanner.Column(),
				"offset":   scanner.Offset(),
				"failures": failures,
			})
		}

		return nil
	}
}
