// Package where resolves the directories anitable reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/anitable/anitable/constant"
	"github.com/anitable/anitable/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "ANITABLE_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the directory holding anitable.toml.
// ANITABLE_CONFIG_PATH takes precedence over the user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Anitable))
}

// Logs returns the log directory.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Temp returns a scratch directory under the system temp dir.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Anitable))
}
