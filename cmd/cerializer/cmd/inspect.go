package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DimitriosDimakos/libcerializer/pkg/message"
	"github.com/DimitriosDimakos/libcerializer/pkg/wire"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Decode a serialized dynamic message and print its fields",
	Long: `Decode a serialized dynamic message file and print its name and
fields in insertion order.

Example:
  cerializer inspect heartbeat.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		m := wire.Deserialize(data)
		if m == nil {
			return fmt.Errorf("%s is not a complete serialized dynamic message", args[0])
		}

		printMessage(m)
		return nil
	},
}

func printMessage(m *message.DynamicMessage) {
	fmt.Printf("message: %s\n", m.Name)
	fmt.Printf("fields:  %d\n", m.FieldCount)
	for _, f := range m.GetFields() {
		fmt.Printf("  %3d  %-24s %-22s %s\n", f.Seq, f.Name, f.Type, formatValue(f))
	}
}

func formatValue(f message.Field) string {
	if f.Value == nil {
		return "<no value>"
	}
	switch f.Type {
	case message.EnumerationType:
		return fmt.Sprintf("%d", f.Value.EnumValue)
	case message.Int8Type:
		return fmt.Sprintf("%d", f.Value.Int8Value)
	case message.UInt8Type:
		return fmt.Sprintf("%d", f.Value.UInt8Value)
	case message.Int16Type:
		return fmt.Sprintf("%d", f.Value.Int16Value)
	case message.UInt16Type:
		return fmt.Sprintf("%d", f.Value.UInt16Value)
	case message.Int32Type:
		return fmt.Sprintf("%d", f.Value.Int32Value)
	case message.UInt32Type:
		return fmt.Sprintf("%d", f.Value.UInt32Value)
	case message.Int64Type:
		return fmt.Sprintf("%d", f.Value.Int64Value)
	case message.UInt64Type:
		return fmt.Sprintf("%d", f.Value.UInt64Value)
	case message.Float32Type:
		return fmt.Sprintf("%g", f.Value.Float32Value)
	case message.Float64Type:
		return fmt.Sprintf("%g", f.Value.Float64Value)
	case message.StringType:
		return fmt.Sprintf("%q", f.Value.StringValue)
	}
	return "<no value>"
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
