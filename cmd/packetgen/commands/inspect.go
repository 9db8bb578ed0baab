package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/alexhholmes/pktlayout/internal/analyzer"
	"github.com/alexhholmes/pktlayout/internal/parser"
)

func newInspectCmd(root *rootOptions) *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "inspect <schema.yaml>",
		Short: "Show the computed layout of each packet",
		Long: `Print, per packet, the view names, minimum size, payload bounds and a
table of every field with its byte offset, bit shift and bit operations.

Examples:
  packetgen inspect gre.yaml
  packetgen inspect gre.yaml --packet Gre`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, fam, err := root.compile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			found := false
			for _, l := range fam.Layouts {
				if only != "" && l.Packet.Base != only {
					continue
				}
				found = true
				printLayout(w, l)
			}
			if !found {
				return fmt.Errorf("no packet named %s", only)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&only, "packet", "", "Only show this packet")
	return cmd
}

func printLayout(w io.Writer, l *analyzer.Layout) {
	_, _ = fmt.Fprintf(w, "%s (%s, %s)\n", l.Packet.Base, l.Names.View, l.Names.Mutable)
	_, _ = fmt.Fprintf(w, "  minimum size: %d bytes (%d fixed bits)\n", l.MinimumSize, l.FixedBits)
	_, _ = fmt.Fprintf(w, "  packet size:  %s\n", l.Size)
	if pl := l.Payload; pl != nil {
		upper := "end of buffer"
		if pl.Length != nil {
			upper = "+ " + pl.Length.String()
		}
		_, _ = fmt.Fprintf(w, "  payload:      %s from %s, %s\n", l.Packet.Fields[pl.Field].Name, pl.Lower, upper)
	}
	for _, x := range l.Externals {
		kind := "constant"
		if x.Call {
			kind = "function"
		}
		_, _ = fmt.Fprintf(w, "  external:     %s %s\n", kind, x.Name)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Type", "Offset", "Shift", "Bits", "Length", "Ops"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for i := range l.Fields {
		table.Append(fieldRow(&l.Fields[i]))
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func fieldRow(fp *analyzer.FieldPlan) []string {
	length := ""
	if fp.Length != nil {
		length = fp.Length.String()
	}

	var ops []string
	switch {
	case fp.Field.Type.Kind == parser.MiscKind:
		for _, arg := range fp.Args {
			ops = append(ops, fmt.Sprintf("%s@%s:%s", arg.Type.Tag, arg.Offset, joinOps(arg.Ops)))
		}
	case fp.Elem != nil && fp.Elem.Packet != "":
		ops = append(ops, fmt.Sprintf("packets of %s, at least %d bytes each", fp.Elem.Packet, fp.Elem.MinSize))
	case fp.Elem != nil:
		ops = append(ops, fmt.Sprintf("%d-byte elements: %s", fp.Elem.Bytes, joinOps(fp.Elem.Ops)))
	default:
		ops = append(ops, joinOps(fp.Ops))
	}

	name := fp.Field.Name
	if fp.Field.Payload {
		name += " (payload)"
	}
	return []string{
		name,
		fp.Type.Tag,
		fp.Offset.String(),
		strconv.Itoa(fp.Shift),
		strconv.Itoa(fp.Bits),
		length,
		strings.Join(ops, "; "),
	}
}

func joinOps(ops []analyzer.Op) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, " ")
}
