package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by goreleaser through -ldflags; source builds
// report (devel) and refuse to self-update.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the installed version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gyanguru %s\n", version)
	},
}
