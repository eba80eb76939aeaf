// repo-analyzer collects metadata, language statistics and a file count for a
// GitHub repository and renders them as a text report for an agent runtime.
//
// Usage:
//
//	repo-analyzer analyze octocat/hello-world
//	repo-analyzer serve --addr :8080
package main

import (
	"repo-analyzer/cmd"
)

// Version is overridden at build time with -ldflags="-X main.Version=v1.0.0".
var Version = "dev"

func main() {
	cmd.Version = Version
	cmd.Execute()
}
