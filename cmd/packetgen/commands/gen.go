package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/alexhholmes/pktlayout/internal/codegen"
)

func newGenCmd(root *rootOptions) *cobra.Command {
	var output, pkg string

	cmd := &cobra.Command{
		Use:   "gen <schema.yaml>",
		Short: "Generate Go views for every packet in a schema",
		Long: `Generate the canonical struct, read-only view, mutable view, size
helpers and accessors of every packet in the schema.

Length expressions may call functions and name constants that are not
fields; the generated file expects them to exist in the target package as
func(int...) int and int constants.

Examples:
  # Write gre_views.go next to gre.yaml
  packetgen gen gre.yaml

  # Choose the output file and package
  packetgen gen gre.yaml -o internal/wire/gre.go -p wire

  # Print to stdout
  packetgen gen gre.yaml -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := args[0]
			cfg, fam, err := root.compile(schema)
			if err != nil {
				return err
			}
			name := pkg
			if name == "" {
				name = cfg.Package
			}

			src, err := codegen.GenerateFile(name, fam)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(src)
				return err
			}
			path := output
			if path == "" {
				path = defaultOutput(schema)
			}
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			log.Info().
				Str("schema", schema).
				Str("output", path).
				Str("package", name).
				Int("packets", len(fam.Layouts)).
				Msg("generated views")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, - for stdout (default: <schema>_views.go)")
	cmd.Flags().StringVarP(&pkg, "package", "p", "", "Go package name (default: config package)")
	return cmd
}

func defaultOutput(schema string) string {
	return strings.TrimSuffix(schema, filepath.Ext(schema)) + "_views.go"
}
