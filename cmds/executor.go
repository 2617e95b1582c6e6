package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strings"
)

type Executor struct {
	commands map[string]*Command
	fallback func(arg string) error
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return ret
}

func (e *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		e.commands[n] = command
	}
}

// Fallback handles arguments that name no command and do not start with a
// dash, such as input files.
func (e *Executor) Fallback(fn func(arg string) error) {
	e.fallback = fn
}

func (e *Executor) Execute(args []string) error {
	commands := e.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok || command == nil {
			if e.fallback != nil && !strings.HasPrefix(name, "-") {
				if err := e.fallback(name); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				continue
			}
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			var err error
			args, err = call(command.Func, args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subName, sub := range command.Subs {
				if _, ok := commands[subName]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subName)
				}
				commands[subName] = sub
			}
		}
	}
	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

func call(fn reflect.Value, args []string) ([]string, error) {
	fnType := fn.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := fn.Call(callArgs)
	if len(rets) > 0 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}

func (e *Executor) PrintUsage() {
	e.WriteUsage(os.Stdout)
}

func (e *Executor) WriteUsage(w io.Writer) {
	writeUsage(w, e.commands, 0)
}

func writeUsage(w io.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true
		names := append([]string{name}, command.Aliases...)
		if command.Description != "" {
			fmt.Fprintf(w, "%s%s\t%s\n", indent, strings.Join(names, ", "), command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, strings.Join(names, ", "))
		}
		if len(command.Subs) > 0 {
			writeUsage(w, command.Subs, depth+1)
		}
	}
}
