package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DimitriosDimakos/libcerializer/pkg/archive"
)

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Store and retrieve serialized dynamic messages",
	Long: `Store serialized dynamic messages in a local capture archive and
retrieve them later by key. The archive location comes from the
configuration file or the --dir flag.`,
}

var archiveDir string

var archivePutCmd = &cobra.Command{
	Use:   "put <file>",
	Short: "Verify a serialized message file and store it in the archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		a, err := openArchive()
		if err != nil {
			return err
		}
		defer a.Close()

		key, err := a.PutRaw(data)
		if err != nil {
			return fmt.Errorf("failed to store %s: %w", args[0], err)
		}

		fmt.Println(key)
		return nil
	},
}

var archiveGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Retrieve an archived message by key and print its fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive()
		if err != nil {
			return err
		}
		defer a.Close()

		m, err := a.Get(args[0])
		if err != nil {
			return fmt.Errorf("failed to get %s: %w", args[0], err)
		}

		printMessage(m)
		return nil
	},
}

var archiveListCmd = &cobra.Command{
	Use:   "list <message-name>",
	Short: "List the archive keys stored for a message name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openArchive()
		if err != nil {
			return err
		}
		defer a.Close()

		keys, err := a.List(args[0])
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", args[0], err)
		}

		for _, key := range keys {
			fmt.Println(key)
		}
		return nil
	},
}

func openArchive() (*archive.Archive, error) {
	dir := archiveDir
	if dir == "" {
		dir = cfg.ArchiveDir
	}
	a, err := archive.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive at %s: %w", dir, err)
	}
	return a, nil
}

func init() {
	archiveCmd.PersistentFlags().StringVarP(&archiveDir, "dir", "d", "", "archive directory (overrides configuration)")
	archiveCmd.AddCommand(archivePutCmd)
	archiveCmd.AddCommand(archiveGetCmd)
	archiveCmd.AddCommand(archiveListCmd)
	rootCmd.AddCommand(archiveCmd)
}
