package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcut/topology"
)

// topologyCommand creates the topology command, a debugging aid that shows
// the forward directions, and therefore the edge indices, of a grid.
func (c *CLI) topologyCommand() *cobra.Command {
	var (
		width, height, depth int
		conn                 string
	)

	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Print the neighbor directions and edge count of a grid",
		Example: `  # The 13 forward directions of a 26-connected volume
  gridcut topology --width 8 --height 8 --depth 4 --conn 26`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if conn == "" {
				conn = "4"
				if depth > 1 {
					conn = "26"
				}
			}
			cc, err := topology.ParseConnectivity(conn)
			if err != nil {
				return err
			}
			g, err := topology.New(width, height, depth, cc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%d×%d×%d grid, %s-connected", g.Width, g.Height, g.Depth, g.Conn)))
			printKeyValue(out, "Sites", strconv.Itoa(g.Sites()))
			printKeyValue(out, "Directions", strconv.Itoa(g.Directions()))
			printKeyValue(out, "Edges", strconv.Itoa(g.EdgeCount()))
			printKeyValue(out, "Edge slots", strconv.Itoa(g.EdgeSlots()))

			rows := make([][]string, 0, g.Directions())
			for d, o := range g.Offsets() {
				rows = append(rows, []string{strconv.Itoa(d), strconv.Itoa(o.DX), strconv.Itoa(o.DY), strconv.Itoa(o.DZ)})
			}
			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("dir", "dx", "dy", "dz").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					return lipgloss.NewStyle().Padding(0, 1)
				})
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 3, "grid width")
	cmd.Flags().IntVar(&height, "height", 3, "grid height")
	cmd.Flags().IntVar(&depth, "depth", 1, "grid depth")
	cmd.Flags().StringVar(&conn, "conn", "", "connectivity: 4, 8, 6 or 26 (default 4 for flat grids, 26 otherwise)")

	return cmd
}
