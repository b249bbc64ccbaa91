package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"steamdboffline/core"
	"steamdboffline/platform"
)

type Options struct {
	Root        []string `short:"r" long:"root" description:"Path to the primary steamapps directory. Defaults to this platform's standard Steam location"`
	Pretty      []bool   `short:"p" long:"pretty" description:"Pretty-print the record list as one JSON array instead of one object per line"`
	Summary     []bool   `short:"s" long:"summary" description:"Print the scan diagnostics to stderr after the records"`
	LogLocation []string `short:"l" long:"log-location" description:"Specifies path to logfile. Defaults to User's Cache Dir / steamdboffline.log"`
	Version     []bool   `short:"V" long:"version" description:"Print version and exit"`
}

// run performs the scan and writes the records to stdout. The returned code
// is the process exit code: non-zero only when the root itself is invalid. An
// empty or partially skipped scan is still a successful scan.
func run(ops *Options, stdout io.Writer, stderr io.Writer) int {
	root := platform.GetDefaultSteamappsPath()
	if len(ops.Root) > 0 {
		root = ops.Root[0]
	}

	records, diag, err := core.MakeSteamScanner(root).Scan()
	if err != nil {
		core.ErrorLogger.Println(err)
		// The loggers may point at the logfile; the fatal diagnostic has to
		// reach the console regardless.
		fmt.Fprintln(stderr, err)
		return 1
	}

	if len(ops.Pretty) > 0 && ops.Pretty[0] {
		output, err := json.MarshalIndent(records, "", "    ")
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, string(output))
	} else {
		for _, record := range records {
			line, err := json.Marshal(record)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			fmt.Fprintln(stdout, string(line))
		}
	}

	if len(ops.Summary) > 0 && ops.Summary[0] {
		attempted := diag.LibrariesScanned + diag.LibrariesFailed
		fmt.Fprintf(stderr, "%v games found across %v of %v libraries (%v missing, %v manifests skipped, %v redistributables filtered)\n",
			len(records), diag.LibrariesScanned, attempted, diag.LibrariesMissing, diag.ManifestsSkipped, diag.ManifestsFiltered)
	}

	return 0
}

func main() {
	ops := &Options{}
	_, err := flags.Parse(ops)
	if err != nil {
		log.Fatal(err)
	}

	if len(ops.Version) > 0 && ops.Version[0] {
		fmt.Println(strings.TrimSpace(core.VersionRevision))
		return
	}

	if len(ops.LogLocation) > 0 {
		err = core.InitLoggingWithPath(ops.LogLocation[0])
	} else {
		err = core.InitLoggingWithDefaultPath()
	}
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(run(ops, os.Stdout, os.Stderr))
}
