// Package config provides configuration loading for rescuetime-mcp:
// the global configuration directory, an optional YAML config file, and
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the rescuetime-mcp configuration directory.
//
// Resolution:
//   - $RESCUETIME_MCP_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/rescuetime-mcp if set (respects XDG on any platform)
//   - %AppData%/rescuetime-mcp on Windows
//   - ~/.config/rescuetime-mcp on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("RESCUETIME_MCP_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rescuetime-mcp")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "rescuetime-mcp")
		}
	}

	// macOS and Linux: ~/.config/rescuetime-mcp
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rescuetime-mcp")
}
