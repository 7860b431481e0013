// Package render draws simulation frames as text.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/voidwalk/dijkstra"
	"github.com/katalvlaran/voidwalk/gridgraph"
	"github.com/katalvlaran/voidwalk/simulation"
)

// Cell markers.
const (
	HistoryMarker  = "⬜"
	ObstacleMarker = "⬛"
	TargetMarker   = "🟩"
)

// Console messages.
const (
	ArrivedMessage = "The void consumes."
	NoPathMessage  = "It appears there is no valid path for the creature to tread."
	AbortedMessage = "The creature halts."
)

const (
	ruleWidth   = 70
	clearScreen = "\033[H\033[2J"
)

var rule = strings.Repeat("-", ruleWidth)

// Console renders frames to a writer. It implements simulation.Renderer.
type Console struct {
	w     io.Writer
	clear bool
}

// NewConsole writes to w. When clear is set every frame starts by clearing
// the screen with ANSI escapes; only enable it for terminals.
func NewConsole(w io.Writer, clear bool) *Console {
	return &Console{w: w, clear: clear}
}

// Render draws the map, the grid's dimensions on the first frame of a run
// and, while the creature is still moving, the status lines.
func (c *Console) Render(f simulation.Frame) error {
	bw := bufio.NewWriter(c.w)
	if c.clear {
		bw.WriteString(clearScreen)
	}
	writeMap(bw, f)
	if f.Step == 0 {
		h, w := f.Grid.Dimensions()
		fmt.Fprintf(bw, "Map dimensions: %d x %d\n", h, w)
	}
	if !f.State.Terminal() {
		fmt.Fprintf(bw, "Path: %s\n", FormatPath(f.Remaining))
		fmt.Fprintf(bw, "Projected cost: %s\n", formatCost(f.ProjectedCost))
		fmt.Fprintf(bw, "Current value: %d\n", f.Value)
	}
	return bw.Flush()
}

// Conclude prints the closing message of a run.
func (c *Console) Conclude(o simulation.Outcome) error {
	var err error
	switch o.Reason {
	case simulation.ReasonArrived:
		_, err = fmt.Fprintf(c.w, "%s\nCurrent value: %d\n", ArrivedMessage, o.FinalValue)
	case simulation.ReasonNoPath:
		if o.Walls > 0 {
			_, err = fmt.Fprintf(c.w, "%s\nWalls in the way: %d\n", NoPathMessage, o.Walls)
		} else {
			_, err = fmt.Fprintln(c.w, NoPathMessage)
		}
	default:
		_, err = fmt.Fprintf(c.w, "%s\nCurrent value: %d\n", AbortedMessage, o.FinalValue)
	}
	return err
}

// writeMap draws the grid between two rules. Markers take three columns and
// costs four; every row is followed by a blank line.
func writeMap(w io.Writer, f simulation.Frame) {
	visited := mapset.New[gridgraph.Cell]()
	for _, h := range f.History {
		visited.Put(h)
	}

	fmt.Fprintf(w, "%s\nMap: \n\n", rule)
	height, width := f.Grid.Dimensions()
	for r := 0; r < height; r++ {
		for col := 0; col < width; col++ {
			at := gridgraph.Cell{Row: r, Col: col}
			cost, passable := f.Grid.CellCost(at)
			switch {
			case at == f.Position:
				fmt.Fprint(w, marker(f.Appearance))
			case at == f.Grid.Target():
				fmt.Fprint(w, marker(TargetMarker))
			case !passable:
				fmt.Fprint(w, marker(ObstacleMarker))
			case visited.Has(at):
				fmt.Fprint(w, marker(HistoryMarker))
			default:
				fmt.Fprintf(w, "%4d", cost)
			}
		}
		fmt.Fprint(w, "\n\n")
	}
	fmt.Fprintf(w, "\n%s\n", rule)
}

// marker right-aligns m in three columns.
func marker(m string) string { return fmt.Sprintf("%3s", m) }

// FormatPath renders cells as "[(0, 1), (0, 2)]".
func FormatPath(path []gridgraph.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatCost(cost int64) string {
	if cost == dijkstra.Unreachable {
		return "inf"
	}
	return fmt.Sprint(cost)
}
