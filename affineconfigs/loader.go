package affineconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/affine/cmds"
	"github.com/reusee/affine/configs"
	"github.com/reusee/affine/logs"
)

//go:embed schema.cue
var Schema string

var configFlag = cmds.Collect[string]("-config")

var filenames = []string{
	"affine.cue",
	".affine.cue",
}

// ConfigsLoader loads files given by -config first, then the ones found in the
// working directory, the user config directory and /etc.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configFlag...)

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config files", "paths", paths)
	}
	return configs.NewLoader(paths, Schema)
}
