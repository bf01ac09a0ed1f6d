package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if printed[command] {
			continue
		}
		printed[command] = true
		printCommand(name, command, 0)
	}
}

func printCommand(name string, command *Command, depth int) {
	fmt.Fprint(os.Stderr, strings.Repeat("  ", depth))
	fmt.Fprint(os.Stderr, name)
	if command != nil {
		if len(command.Aliases) > 0 {
			fmt.Fprintf(os.Stderr, " (%s)", strings.Join(command.Aliases, ", "))
		}
		if command.Description != "" {
			fmt.Fprint(os.Stderr, "\t", command.Description)
		}
	}
	fmt.Fprint(os.Stderr, "\n")
	if command == nil {
		return
	}
	for _, subName := range slices.Sorted(maps.Keys(command.Subs)) {
		printCommand(subName, command.Subs[subName], depth+1)
	}
}
