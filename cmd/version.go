package cmd

import (
	"fmt"
	buildinfo "runtime/debug"

	"github.com/spf13/cobra"
)

// Build information, set by ldflags:
// -X github.com/PolarWolf314/shush/cmd.Version=v1.2.3
var (
	Version string
	Commit  string
)

// buildVersion falls back to the module version recorded by go install.
func buildVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := buildinfo.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the shush version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if Commit == "" {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "shush %s\n", buildVersion())
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "shush %s (commit: %s)\n", buildVersion(), Commit)
			return err
		},
	}
}
