//go:build linux

package platform

import (
	"os"
	"path/filepath"
)

// Steam on Linux lives in the XDG data dir, or behind the legacy ~/.steam
// link on older installs. Prefer whichever steamapps directory exists.
func GetDefaultSteamappsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	candidates := []string{
		filepath.Join(home, ".local", "share", "Steam", "steamapps"),
		filepath.Join(home, ".steam", "steam", "steamapps"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return candidates[0]
}
