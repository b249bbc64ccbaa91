package core

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
)

// LibraryRegistryName is the registry file Steam maintains in the primary
// steamapps directory, listing every additional library mount.
const LibraryRegistryName = "libraryfolders.vdf"

// SteamappsDirName is appended to each registry path to reach the metadata
// directory of that library.
const SteamappsDirName = "steamapps"

// registryLibraryPaths extracts the additional library paths from a
// libraryfolders.vdf blob, in registry order. Both layouts Steam has shipped
// are handled: the current one, where each numeric index maps to a block with
// a "path" field, and the pre-2021 one, where the index maps directly to the
// path string. Non-numeric keys (TimeNextStatsReport, contentstatsid, ...)
// are metadata, not libraries.
func registryLibraryPaths(content []byte) ([]string, error) {
	parser := vdf.NewParser(bytes.NewReader(content))
	registry, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	var block map[string]interface{}
	for _, key := range []string{"libraryfolders", "LibraryFolders"} {
		if inner, ok := registry[key].(map[string]interface{}); ok {
			block = inner
			break
		}
	}
	if block == nil {
		return nil, fmt.Errorf("registry has no library folder block")
	}

	indices := make([]int, 0, len(block))
	for key := range block {
		index, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		indices = append(indices, index)
	}
	if len(indices) == 0 {
		// Steam always writes at least index "0"; a block without numeric
		// entries is a truncated or mangled registry. The vdf parser itself
		// tolerates truncation and hands back an empty block, so this is the
		// only place it can be caught.
		return nil, fmt.Errorf("registry block lists no libraries")
	}
	sort.Ints(indices)

	paths := make([]string, 0, len(indices))
	for _, index := range indices {
		switch entry := block[strconv.Itoa(index)].(type) {
		case string:
			paths = append(paths, strings.TrimSpace(entry))
		case map[string]interface{}:
			if path, ok := entry["path"].(string); ok {
				paths = append(paths, strings.TrimSpace(path))
			}
		}
	}

	return paths, nil
}

// locateLibraryFolders turns the scanner's root into the ordered, deduplicated
// set of library folders to scan. The root is always first. Registry entries
// whose directory is absent are skipped; removable drives come and go.
func (s *SteamScanner) locateLibraryFolders(diag *Diagnostics) []string {
	folders := []string{s.root}
	seen := map[string]bool{filepath.Clean(s.root): true}

	content, err := s.fs.ReadFile(filepath.Join(s.root, LibraryRegistryName))
	if err != nil {
		// No registry just means a single-library install.
		InfoLogger.Println("no library registry, scanning root only:", err)
		diag.RegistryFallback = true
		return folders
	}

	paths, err := registryLibraryPaths(content)
	if err != nil {
		InfoLogger.Println("unparseable library registry, scanning root only:", err)
		diag.RegistryFallback = true
		return folders
	}

	for _, path := range paths {
		folder := filepath.Join(path, SteamappsDirName)
		if seen[folder] {
			continue
		}
		seen[folder] = true

		stat, err := s.fs.Stat(folder)
		if err != nil || !stat.IsDir() {
			diag.LibrariesMissing++
			continue
		}
		folders = append(folders, folder)
	}

	return folders
}
