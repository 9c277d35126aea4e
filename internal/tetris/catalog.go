package tetris

import (
	"math/rand"
	"strings"
)

// Shape is a tetromino: four offsets from an anchor cell. The first offset is
// always the anchor (0, 0), which is also the rotation pivot.
type Shape struct {
	Name    string
	Offsets [4]Point
}

// Catalog is the ordered set of shapes a spawner draws from.
type Catalog []Shape

// Standard shapes, anchored on the cell they rotate around.
var (
	ShapeI = Shape{Name: "I", Offsets: [4]Point{{0, 0}, {0, -1}, {0, 1}, {0, 2}}}
	ShapeL = Shape{Name: "L", Offsets: [4]Point{{0, 0}, {0, -1}, {0, 1}, {-1, 1}}}
	ShapeJ = Shape{Name: "J", Offsets: [4]Point{{0, 0}, {0, -1}, {0, 1}, {1, 1}}}
	ShapeS = Shape{Name: "S", Offsets: [4]Point{{0, 0}, {0, -1}, {1, 0}, {1, 1}}}
	ShapeZ = Shape{Name: "Z", Offsets: [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, -1}}}
	ShapeO = Shape{Name: "O", Offsets: [4]Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}
	ShapeT = Shape{Name: "T", Offsets: [4]Point{{0, 0}, {-1, 0}, {1, 0}, {0, 1}}}
)

// DefaultCatalog returns the seven standard tetrominoes.
func DefaultCatalog() Catalog {
	return Catalog{ShapeI, ShapeL, ShapeJ, ShapeS, ShapeZ, ShapeO, ShapeT}
}

// Next picks a shape uniformly at random.
func (c Catalog) Next(rng *rand.Rand) Shape {
	return c[rng.Intn(len(c))]
}

// Lookup finds a shape by name.
func (c Catalog) Lookup(name string) (Shape, bool) {
	for _, s := range c {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Shape{}, false
}

// SpawnOrigin is where a new piece's anchor appears: horizontally centered on
// the top visible row.
func SpawnOrigin() Point {
	return Point{X: Width / 2, Y: Height - 1}
}

// Lines draws the shape top-down using block for filled cells and two spaces
// for empty ones, cropped to the shape's bounding box.
func (s Shape) Lines(block string) []string {
	minX, maxX := s.Offsets[0].X, s.Offsets[0].X
	minY, maxY := s.Offsets[0].Y, s.Offsets[0].Y
	for _, o := range s.Offsets[1:] {
		minX, maxX = min(minX, o.X), max(maxX, o.X)
		minY, maxY = min(minY, o.Y), max(maxY, o.Y)
	}

	blank := strings.Repeat(" ", len([]rune(block)))
	lines := make([]string, 0, maxY-minY+1)
	for y := maxY; y >= minY; y-- {
		var sb strings.Builder
		for x := minX; x <= maxX; x++ {
			if s.has(Point{X: x, Y: y}) {
				sb.WriteString(block)
			} else {
				sb.WriteString(blank)
			}
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return lines
}

func (s Shape) has(p Point) bool {
	for _, o := range s.Offsets {
		if o == p {
			return true
		}
	}
	return false
}
