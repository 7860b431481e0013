package gridgraph

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Sentinels names the matrix values that mark an obstacle and the target in
// a preset matrix. They are configuration, not protocol.
type Sentinels struct {
	Blocked int // value marking an impassable cell
	Target  int // value marking the target; the first match in row-major order wins
}

// DefaultSentinels returns Blocked=-1, Target=0.
func DefaultSentinels() Sentinels {
	return Sentinels{Blocked: Blocked, Target: 0}
}

// FromMatrix builds a Grid from a preset matrix. The first cell (row-major)
// holding s.Target becomes the target; cells holding s.Blocked become Blocked.
// Returns ErrNoTarget when no cell holds s.Target, plus any error of New.
func FromMatrix(values [][]int, start Cell, s Sentinels) (*Grid, error) {
	target, found := Cell{}, false
	costs := make([][]int, len(values))
	for r, row := range values {
		costs[r] = make([]int, len(row))
		for c, v := range row {
			if v == s.Target && !found {
				target, found = Cell{Row: r, Col: c}, true
			}
			if v == s.Blocked {
				v = Blocked
			}
			costs[r][c] = v
		}
	}
	if !found {
		if len(values) == 0 || len(values[0]) == 0 {
			return nil, ErrEmptyGrid
		}
		return nil, fmt.Errorf("%w: sentinel %d", ErrNoTarget, s.Target)
	}

	return New(costs, start, target)
}

// presetDocument is the YAML layout of a preset grid file:
//
//	start: [0, 0]
//	blocked: -1
//	target: 0
//	cells:
//	  - [1, 1, 1]
//	  - [1, -1, 1]
//	  - [1, 1, 0]
type presetDocument struct {
	Start   []int   `yaml:"start"`
	Blocked *int    `yaml:"blocked"`
	Target  *int    `yaml:"target"`
	Cells   [][]int `yaml:"cells"`
}

// LoadPreset decodes a YAML preset document and builds its Grid.
// Missing keys default to start [0, 0] and DefaultSentinels.
// Returns ErrBadPreset for undecodable documents or a malformed start,
// plus any error of FromMatrix.
func LoadPreset(r io.Reader) (*Grid, error) {
	var doc presetDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPreset, err)
	}

	s := DefaultSentinels()
	if doc.Blocked != nil {
		s.Blocked = *doc.Blocked
	}
	if doc.Target != nil {
		s.Target = *doc.Target
	}
	start := Cell{}
	switch len(doc.Start) {
	case 0:
	case 2:
		start = Cell{Row: doc.Start[0], Col: doc.Start[1]}
	default:
		return nil, fmt.Errorf("%w: start must be [row, col], got %v", ErrBadPreset, doc.Start)
	}

	return FromMatrix(doc.Cells, start, s)
}

// corridorLayout is the built-in serpentine preset: '#' costs 100, '.' costs 1
// and 'T' is the target.
var corridorLayout = []string{
	"#.################################################",
	"#................................................#",
	"################################################.#",
	"###..............................................#",
	"###.##############################################",
	"###.#...........................................##",
	"###.#.#########################################.##",
	"###.#.#.........................................##",
	"###.#.#.##########################################",
	"###...#..........................................T",
}

// Corridor returns the built-in 10×50 serpentine preset. The creature starts
// at (0, 0) and the cheap route winds through every corridor to the far corner.
func Corridor() *Grid {
	values := make([][]int, len(corridorLayout))
	for r, line := range corridorLayout {
		values[r] = make([]int, len(line))
		for c, ch := range line {
			switch ch {
			case '#':
				values[r][c] = 100
			case '.':
				values[r][c] = 1
			}
		}
	}
	g, err := FromMatrix(values, Cell{}, DefaultSentinels())
	if err != nil {
		panic(err) // corridorLayout is a fixed, valid layout
	}
	return g
}
