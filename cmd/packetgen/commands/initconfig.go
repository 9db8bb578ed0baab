package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexhholmes/pktlayout/internal/config"
)

func newInitConfigCmd(root *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a config file with default settings",
		Long: `Write the default packetgen config as TOML to --config, or to
./packetgen.toml.

Examples:
  packetgen init-config
  packetgen init-config --config tools/packetgen.toml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.configPath
			if path == "" {
				path = config.DefaultFile
			}
			if err := config.Write(path, config.Default(), force); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
