//go:build windows

package platform

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

const fallbackSteamappsPath = `C:\Program Files (x86)\Steam\steamapps`

// GetDefaultSteamappsPath resolves the Steam install location from the
// registry, falling back to the stock install path when the key is absent.
func GetDefaultSteamappsPath() string {
	key, err := registry.OpenKey(registry.CURRENT_USER, `SOFTWARE\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return fallbackSteamappsPath
	}
	defer key.Close()

	steamPath, _, err := key.GetStringValue("SteamPath")
	if err != nil || steamPath == "" {
		return fallbackSteamappsPath
	}

	return filepath.Join(steamPath, "steamapps")
}
