package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexhholmes/pktlayout/internal/analyzer"
	"github.com/alexhholmes/pktlayout/internal/config"
	"github.com/alexhholmes/pktlayout/internal/logging"
	"github.com/alexhholmes/pktlayout/internal/parser"
)

var Version = "dev"

type rootOptions struct {
	configPath string
}

// NewRootCmd builds the packetgen command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "packetgen",
		Short: "Compile packet layouts into zero-copy views",
		Long: `packetgen reads a YAML schema of packet field layouts and generates
read-only and mutable Go views over byte buffers.

Settings come from packetgen.toml (or --config) and PKTLAYOUT_* environment
variables.

Examples:
  # Write a default config
  packetgen init-config

  # Generate views next to the schema
  packetgen gen gre.yaml

  # Show computed offsets and bit operations
  packetgen inspect gre.yaml`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logging.ConfigureRuntime()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"Config file (default: ./"+config.DefaultFile+" if present)")

	cmd.AddCommand(
		newGenCmd(opts),
		newInspectCmd(opts),
		newCheckCmd(opts),
		newInitConfigCmd(opts),
		newJSONSchemaCmd(),
	)
	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// load resolves and loads the config file, then applies its log settings.
func (o *rootOptions) load() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyLogging(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// compile parses and analyzes a schema file under the loaded config.
func (o *rootOptions) compile(schema string) (*config.Config, *analyzer.Family, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, nil, err
	}
	pkts, err := parser.ParseFile(schema)
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.AnalyzerOptions()
	if err != nil {
		return nil, nil, err
	}
	fam, err := analyzer.AnalyzeFamily(pkts, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", schema, err)
	}
	return cfg, fam, nil
}
