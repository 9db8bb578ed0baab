package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <schema.yaml>...",
		Short: "Parse and analyze schemas without generating code",
		Long: `Check that every schema compiles under the current config. Compile
errors name the packet and field at fault.

Examples:
  packetgen check gre.yaml udp.yaml
  PKTLAYOUT_HOST_ORDER=little packetgen check native.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, schema := range args {
				_, fam, err := root.compile(schema)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d packets)\n", schema, len(fam.Layouts))
				for _, l := range fam.Layouts {
					for _, x := range l.Externals {
						what := "constant"
						if x.Call {
							what = "function"
						}
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s needs %s %s\n", l.Packet.Base, what, x.Name)
					}
				}
			}
			return nil
		},
	}
}
