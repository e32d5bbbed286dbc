package engine

import "fmt"

// Coord is a cell position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbor one step in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Dir is one of the eight compass directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
)

var dirNames = [...]string{
	DirUp:        "up",
	DirUpRight:   "up_right",
	DirRight:     "right",
	DirDownRight: "down_right",
	DirDown:      "down",
	DirDownLeft:  "down_left",
	DirLeft:      "left",
	DirUpLeft:    "up_left",
}

// String returns the configuration name of the direction.
func (d Dir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "unknown"
}

// ParseDir converts a configuration name into a Dir.
func ParseDir(name string) (Dir, error) {
	for d, n := range dirNames {
		if n == name {
			return Dir(d), nil
		}
	}
	return DirUp, fmt.Errorf("engine: unknown direction %q", name)
}

// Delta returns the (dx, dy) offset of one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirUpRight:
		return 1, -1
	case DirRight:
		return 1, 0
	case DirDownRight:
		return 1, 1
	case DirDown:
		return 0, 1
	case DirDownLeft:
		return -1, 1
	case DirLeft:
		return -1, 0
	case DirUpLeft:
		return -1, -1
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Dir) Opposite() Dir {
	return (d + 4) % 8
}

// IsHorizontal reports whether d moves along a row only.
func (d Dir) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

// IsDiagonal reports whether d moves along both axes.
func (d Dir) IsDiagonal() bool {
	return d%2 == 1
}

// neighborDirs lists the eight directions of a 3×3 neighborhood.
var neighborDirs = [8]Dir{DirUp, DirUpRight, DirRight, DirDownRight, DirDown, DirDownLeft, DirLeft, DirUpLeft}

// matchDirs are the four forward directions scanned by the match detector.
var matchDirs = [4]Dir{DirRight, DirDown, DirDownRight, DirDownLeft}
