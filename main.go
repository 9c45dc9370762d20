// clipx: inspect the system clipboard's formats as text, images, zip trees
// and a hex grid.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := newRootCmd()
	root.AddCommand(
		newFormatsCmd(),
		newShowCmd(),
		newWriteCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("clipx %s\n", Version)
		},
	}
}
