package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrRootNotFound = errors.New("steamapps root not found")

// Diagnostics summarizes what a scan attempted versus what it had to skip, so
// callers can tell "nothing installed" apart from "nothing readable".
type Diagnostics struct {
	LibrariesScanned  int  `json:"libraries_scanned"`
	LibrariesFailed   int  `json:"libraries_failed"`
	LibrariesMissing  int  `json:"libraries_missing"`
	ManifestsParsed   int  `json:"manifests_parsed"`
	ManifestsSkipped  int  `json:"manifests_skipped"`
	ManifestsFiltered int  `json:"manifests_filtered"`
	RegistryFallback  bool `json:"registry_fallback"`
}

// SteamScanner enumerates installed titles under one primary steamapps
// directory plus whatever additional libraries its registry file lists.
// A scanner holds no state between scans.
type SteamScanner struct {
	root string
	fs   LocalFs
}

// MakeSteamScanner returns a scanner rooted at the given primary steamapps
// directory, reading through the real filesystem.
func MakeSteamScanner(root string) *SteamScanner {
	return MakeSteamScannerWithFs(root, GetDefaultLocalFs())
}

func MakeSteamScannerWithFs(root string, fs LocalFs) *SteamScanner {
	return &SteamScanner{
		root: root,
		fs:   fs,
	}
}

// Scan performs one full pass over every discoverable library folder and
// returns the title records in discovery order. Only a missing root is fatal;
// unreadable folders and malformed manifests are absorbed into Diagnostics
// and the pass continues.
func (s *SteamScanner) Scan() ([]TitleRecord, Diagnostics, error) {
	stat, err := s.fs.Stat(s.root)
	if err != nil || !stat.IsDir() {
		return nil, Diagnostics{}, fmt.Errorf("%w: %v", ErrRootNotFound, s.root)
	}

	diag := Diagnostics{}
	records := []TitleRecord{}

	for _, folder := range s.locateLibraryFolders(&diag) {
		entries, err := s.fs.ReadDir(folder)
		if err != nil {
			ErrorLogger.Println("skipping unreadable library folder:", err)
			diag.LibrariesFailed++
			continue
		}
		diag.LibrariesScanned++

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasPrefix(name, ManifestPrefix) || !strings.HasSuffix(name, ManifestSuffix) {
				continue
			}

			content, err := s.fs.ReadFile(filepath.Join(folder, name))
			if err != nil {
				ErrorLogger.Println("skipping unreadable manifest:", err)
				diag.ManifestsSkipped++
				continue
			}

			fields := parseManifest(string(content))
			if fields.appId == "" || fields.name == "" {
				// Steam leaves manifests like this mid-update and
				// mid-uninstall. Normal, not worth a log line.
				diag.ManifestsSkipped++
				continue
			}
			if isRedistributable(fields.name) {
				diag.ManifestsFiltered++
				continue
			}

			records = append(records, makeTitleRecord(folder, fields))
			diag.ManifestsParsed++
		}
	}

	return records, diag, nil
}
