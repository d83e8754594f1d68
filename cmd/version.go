package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of xray.",
	Long: `Display the release, commit, build time and Go runtime of this binary.
Include this output when reporting scoring or store issues.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("Worthy Retail X-Ray\n")
		cmd.Printf("  Version: %s\n", version)
		cmd.Printf("  Commit:  %s\n", commit)
		cmd.Printf("  Built:   %s\n", date)
		cmd.Printf("  Runtime: %s\n", runtime.Version())
	},
}
