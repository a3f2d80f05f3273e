// Package main provides the entry point for the showcase CLI.
package main

import (
	"context"
	"os"

	"github.com/ghwmelite-dotcom/ea-analysis/internal/cli"
)

// Build information, set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
//nolint:gochecknoglobals // ldflags injection requires package-level vars
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx := context.Background()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	err := cli.Execute(ctx, info)
	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
