package dag

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// WriteTable prints the state of every node, one per row. It is used to show
// the graph before and after resolution.
func (g *Graph) WriteTable(w io.Writer, title string) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tEXPR\tDEPENDS_ON\tOP\tOPERAND\tUSED_BY\tVALUE\tRESOLVED")
	for _, n := range g.Nodes() {
		dependsOn, op, operand := "-", "-", "-"
		if n.DependsOn != nil {
			dependsOn = n.DependsOn.ID.String()
			op = n.Op.String()
			operand = fmt.Sprint(n.Operand)
		}

		var usedBy []string
		for _, id := range g.Dependents(n.ID) {
			usedBy = append(usedBy, id.String())
		}
		if len(usedBy) == 0 {
			usedBy = append(usedBy, "-")
		}

		value := "-"
		if n.Resolved {
			value = n.Text
			if n.ID.IsSize() {
				value = fmt.Sprintf("%s (%s)", n.Text, humanize.IBytes(uint64(n.Value)))
			}
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%t\n",
			n.ID, n.Raw, dependsOn, op, operand, strings.Join(usedBy, ","), value, n.Resolved)
	}
	return tw.Flush()
}
