package core

import (
	_ "embed"
)

//go:embed version.txt
var VersionRevision string

const APP_NAME = "SteamDBOffline"
