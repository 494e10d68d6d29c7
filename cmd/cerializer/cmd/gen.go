package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DimitriosDimakos/libcerializer/pkg/gen"
	"github.com/DimitriosDimakos/libcerializer/pkg/logging"
)

var (
	genOutDir  string
	genPackage string
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen <definition-file>",
	Short: "Generate typed Go message wrappers from a message definition file",
	Long: `Read a dynamic message definition (XML) and generate one Go source
file per message, each with a typed struct plus serialize and
deserialize helpers backed by the dynamic message store.

Example:
  cerializer gen messages.dmd --out ./messages --package messages`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		def, err := gen.ParseDefinition(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		if err := os.MkdirAll(genOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		for i := range def.Messages {
			msg := &def.Messages[i]
			src, err := gen.GenerateMessage(msg, genPackage)
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", msg.Name, err)
			}
			outPath := filepath.Join(genOutDir, gen.FileName(msg))
			if err := os.WriteFile(outPath, src, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			logging.Infof("generated %s", outPath)
		}

		fmt.Printf("generated %d message wrapper(s) in %s\n", len(def.Messages), genOutDir)
		return nil
	},
}

func init() {
	genCmd.Flags().StringVarP(&genOutDir, "out", "o", ".", "output directory for generated files")
	genCmd.Flags().StringVarP(&genPackage, "package", "p", "messages", "package name for generated files")
	rootCmd.AddCommand(genCmd)
}
