package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/input-output-hk/catalyst-jslint/fs"
)

// userConfigPath is the configuration file looked up in the XDG config
// directories, relative to each of them.
var userConfigPath = filepath.Join("jslint", DefaultPath)

// Locate returns the configuration file to load. An explicit path is always
// used as given. Otherwise DefaultPath is used when it exists in filesystem,
// then the first jslint/jslint.cue found in the XDG config directories, and
// finally DefaultPath, which Load treats as absent.
func Locate(filesystem fs.ReadFS, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if ok, err := filesystem.Exists(DefaultPath); err == nil && ok {
		return DefaultPath
	}
	if path, ok := UserPath(); ok {
		return path
	}
	return DefaultPath
}

// UserPath returns the per-user configuration file if one exists.
func UserPath() (string, bool) {
	path, err := xdg.SearchConfigFile(userConfigPath)
	if err != nil {
		return "", false
	}
	return path, true
}
