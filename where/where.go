// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vpcalc/vpcalc/constant"
	"github.com/vpcalc/vpcalc/filesystem"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "VPCALC_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the directory holding vpcalc.toml and the logs.
// VPCALC_CONFIG_PATH overrides the user config dir (XDG_CONFIG_HOME on Linux).
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache returns the directory holding the saved session.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		// Fall back to a local directory if the system-provided path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs returns the directory of the daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Session resolves the path of the file holding the stack saved at the end of the last run.
func Session() string {
	return filepath.Join(Cache(), "session.json")
}
