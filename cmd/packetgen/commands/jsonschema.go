package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/alexhholmes/pktlayout/internal/parser"
)

func newJSONSchemaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "jsonschema",
		Short: "Generate the JSON schema of layout schema files",
		Long: `Generate a JSON schema describing packetgen's YAML schema documents,
for editor completion and validation.

Examples:
  packetgen jsonschema
  packetgen jsonschema --output packets.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reflector := jsonschema.Reflector{
				AllowAdditionalProperties: false,
				DoNotReference:            true,
			}

			schema := reflector.Reflect(&parser.File{})
			schema.Version = "https://json-schema.org/draft/2020-12/schema"
			schema.Title = "packetgen layout schema"
			schema.Description = "Packets with ordered bit-level field layouts"

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("failed to write schema file: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "JSON schema written to %s\n", output)
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}
