// Package buildinfo reports the version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/badgekeeper/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X github.com/dmitrijs2005/badgekeeper/internal/buildinfo.buildDate=2025-01-01 \
//	  -X github.com/dmitrijs2005/badgekeeper/internal/buildinfo.buildCommit=abc123" ./cmd/cli
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func valueOrNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(buildCommit))
}
