package affineconfigs

import (
	"fmt"
	"maps"
	"strings"

	"github.com/reusee/affine/cmds"
	"github.com/reusee/affine/configs"
)

// Definitions maps names to source text expanded wherever the name is used.
type Definitions map[string]string

var flagDefinitions = make(Definitions)

func init() {
	cmds.Define("-def", cmds.Func(func(arg string) error {
		name, src, err := ParseDefinition(arg)
		if err != nil {
			return err
		}
		flagDefinitions[name] = src
		return nil
	}).Desc("define name=expr"))
}

// Definitions merges every config file, earlier files winning, and then the
// -def flags.
func (Module) Definitions(
	loader configs.Loader,
) Definitions {
	ret := make(Definitions)
	for defs := range configs.All[map[string]string](loader, "definitions") {
		for name, src := range defs {
			if _, ok := ret[name]; !ok {
				ret[name] = src
			}
		}
	}
	maps.Copy(ret, flagDefinitions)
	return ret
}

func ParseDefinition(text string) (name string, src string, err error) {
	name, src, ok := strings.Cut(text, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("bad definition %q, want name=expr", text)
	}
	return name, src, nil
}
