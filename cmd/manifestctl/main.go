// Command manifestctl runs the manifest analysis engine over a JSON-encoded
// instruction stream from the command line; it takes its options from
// flags only and reads no config file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "manifestctl",
		Short: "Classify transaction manifest instruction streams",
	}
	root.AddCommand(newAnalyzeCommand())
	return root
}
