package core

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// ManifestPrefix and ManifestSuffix bracket the file name of every
	// per-title manifest Steam writes into a steamapps directory.
	ManifestPrefix = "appmanifest_"
	ManifestSuffix = ".acf"

	// InstallRootDirName is the subdirectory of a library folder holding one
	// directory per installed title.
	InstallRootDirName = "common"
)

// TitleRecord describes one installed title. SteamId stays a string; app ids
// can exceed what some downstream consumers treat as a safe integer.
type TitleRecord struct {
	SteamId     string `json:"steam_id"`
	Name        string `json:"name"`
	InstallDir  string `json:"installdir"`
	InstallPath string `json:"install_path"`
	SizeOnDisk  *int64 `json:"size_on_disk,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
	StateFlags  string `json:"stateflags,omitempty"`

	LaunchUrl        string `json:"launch_url"`
	StoreUrl         string `json:"store_url"`
	Logo             string `json:"logo"`
	Banner           string `json:"banner"`
	BigBanner        string `json:"big_banner"`
	VerticalBanner   string `json:"vertical_banner"`
	HorizontalBanner string `json:"horizontal_banner"`
	InfoBanner       string `json:"info_banner"`
}

// manifestFields holds the raw values of the recognized manifest keys, before
// validation. Empty string means the key never appeared.
type manifestFields struct {
	appId       string
	name        string
	installDir  string
	lastUpdated string
	stateFlags  string
	sizeOnDisk  string
}

// quotedPair extracts the first two quoted tokens of a line. Lines without
// two complete quoted tokens (brace delimiters, comments, blanks, truncated
// text) report ok=false and are skipped by the caller.
func quotedPair(line string) (key string, value string, ok bool) {
	tokens := make([]string, 0, 2)
	rest := line
	for len(tokens) < 2 {
		open := strings.IndexByte(rest, '"')
		if open < 0 {
			break
		}
		rest = rest[open+1:]
		end := strings.IndexByte(rest, '"')
		if end < 0 {
			break
		}
		tokens = append(tokens, rest[:end])
		rest = rest[end+1:]
	}

	if len(tokens) < 2 {
		return "", "", false
	}

	return tokens[0], tokens[1], true
}

// parseManifest runs a single linear pass over an appmanifest blob, collecting
// the recognized keys. The fields of interest never nest below the AppState
// block and never repeat, so no tree is built; on a repeat the last value
// wins, matching a top-down read of the file.
func parseManifest(content string) manifestFields {
	fields := manifestFields{}

	for _, line := range strings.Split(content, "\n") {
		key, value, ok := quotedPair(strings.TrimSpace(line))
		if !ok {
			continue
		}

		switch key {
		case "appid":
			fields.appId = value
		case "name":
			fields.name = value
		case "installdir":
			fields.installDir = value
		case "LastUpdated":
			fields.lastUpdated = value
		case "StateFlags":
			fields.stateFlags = value
		case "SizeOnDisk":
			fields.sizeOnDisk = value
		}
	}

	return fields
}

// isRedistributable reports whether a title is a Steamworks redistributable
// bundle rather than a game.
func isRedistributable(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "steamworks")
}

// makeTitleRecord builds the output record for one manifest. The install path
// is derived by construction only; nothing checks that the directory is still
// present. A non-numeric SizeOnDisk drops the field, not the record.
func makeTitleRecord(folder string, fields manifestFields) TitleRecord {
	record := TitleRecord{
		SteamId:     fields.appId,
		Name:        fields.name,
		InstallDir:  fields.installDir,
		InstallPath: filepath.Join(folder, InstallRootDirName, fields.installDir),
		LastUpdated: fields.lastUpdated,
		StateFlags:  fields.stateFlags,
	}

	if size, err := strconv.ParseInt(fields.sizeOnDisk, 10, 64); err == nil {
		record.SizeOnDisk = &size
	}

	deriveUrls(&record)
	return record
}

// deriveUrls fills in the launch URI and artwork links for a record. Pure
// string templating on the app id; no network access happens here or anywhere
// else in a scan.
func deriveUrls(record *TitleRecord) {
	id := record.SteamId
	record.LaunchUrl = fmt.Sprintf("steam://run/%v", id)
	record.StoreUrl = fmt.Sprintf("https://store.steampowered.com/app/%v", id)
	record.Logo = fmt.Sprintf("https://cdn.steamstatic.com/steam/apps/%v/logo.png", id)
	record.Banner = fmt.Sprintf("https://cdn.cloudflare.steamstatic.com/steam/apps/%v/header.jpg", id)
	record.BigBanner = fmt.Sprintf("https://cdn.cloudflare.steamstatic.com/steam/apps/%v/library_hero.jpg", id)
	record.VerticalBanner = fmt.Sprintf("https://cdn.steamstatic.com/steam/apps/%v/library_600x900.jpg", id)
	record.HorizontalBanner = fmt.Sprintf("https://cdn.steamstatic.com/steam/apps/%v/capsule_231x87.jpg", id)
	record.InfoBanner = fmt.Sprintf("https://cdn.cloudflare.steamstatic.com/steam/apps/%v/page_bg_generated_v6b.jpg", id)
}
