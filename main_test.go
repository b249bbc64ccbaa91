package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"steamdboffline/core"
)

func TestRun_InvalidRootPrintsDiagnosticAndFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ops := &Options{Root: []string{filepath.Join(t.TempDir(), "no-such-steamapps")}}

	code := run(ops, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "steamapps root not found",
		"the fatal diagnostic must reach the console, not just the logfile")
}

func TestRun_EmptyLibraryExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ops := &Options{Root: []string{t.TempDir()}}

	code := run(ops, &stdout, &stderr)

	assert.Zero(t, code, "zero games installed is still a completed scan")
	assert.Empty(t, stdout.String())
}

func TestRun_EmitsOneJsonObjectPerLine(t *testing.T) {
	steamapps := t.TempDir()
	manifest := "\"AppState\"\n{\n\t\"appid\"\t\t\"440\"\n\t\"name\"\t\t\"Team Fortress 2\"\n\t\"installdir\"\t\t\"Team Fortress 2\"\n}\n"
	name := fmt.Sprintf("%v440%v", core.ManifestPrefix, core.ManifestSuffix)
	assert.NoError(t, os.WriteFile(filepath.Join(steamapps, name), []byte(manifest), 0644))

	var stdout, stderr bytes.Buffer
	code := run(&Options{Root: []string{steamapps}, Summary: []bool{true}}, &stdout, &stderr)

	assert.Zero(t, code)

	record := core.TitleRecord{}
	assert.NoError(t, json.Unmarshal(stdout.Bytes(), &record))
	assert.Equal(t, "440", record.SteamId)
	assert.Equal(t, "Team Fortress 2", record.Name)

	assert.Contains(t, stderr.String(), "1 games found")
}
