package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DimitriosDimakos/libcerializer/pkg/wire"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Check whether a file holds a complete serialized dynamic message",
	Long: `Check a file against the dynamic message wire format: the leading
magic number plus the declared total length. Exits non-zero when the
check fails.

Example:
  cerializer verify heartbeat.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		if !wire.VerifyStart(data) {
			return fmt.Errorf("%s: missing dynamic message magic number", args[0])
		}
		if !wire.VerifyFull(data) {
			return fmt.Errorf("%s: truncated dynamic message", args[0])
		}

		fmt.Printf("%s: complete dynamic message (%d bytes)\n", args[0], len(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
