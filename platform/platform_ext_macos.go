//go:build darwin

package platform

import (
	"os"
	"path/filepath"
)

func GetDefaultSteamappsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, "Library", "Application Support", "Steam", "steamapps")
}
