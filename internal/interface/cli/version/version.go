package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is injected at build time:
//
//	go build -ldflags "-X github.com/YoshitsuguKoike/catalogcheck/internal/interface/cli/version.Version=v1.0.0"
var Version = "dev"

func current() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// NewCommand returns the version subcommand
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version, build information, and runtime details",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catalogcheck version %s\n", current())
			fmt.Fprintf(out, "  Go version:    %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:       %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
