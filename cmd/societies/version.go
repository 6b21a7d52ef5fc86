package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version information, injected at build time via ldflags.
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = ""
)

func printVersion() {
	fmt.Printf("societies version %s", Version)
	if Build != "unknown" && Build != "" {
		fmt.Printf(" (build: %s)", Build)
	}
	if BuildTime != "" {
		fmt.Printf(" [%s]", BuildTime)
	}
	fmt.Println()

	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	if rev := vcsRevision(); rev != "" {
		fmt.Printf("Commit: %s\n", rev)
	}
}

// displayVersion is the short form shown in the UI header.
func displayVersion() string {
	if Version != "dev" {
		return Version
	}
	if rev := vcsRevision(); rev != "" {
		return "dev-" + rev
	}
	return Version
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) > 7 {
			return setting.Value[:7]
		}
	}
	return ""
}
