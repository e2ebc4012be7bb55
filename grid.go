package patternlock

// NodeCount is the number of nodes on the board.
const NodeCount = 9

// gridSize is the number of nodes per row and per column.
const gridSize = 3

// edgeMidpoints holds the node indices that can sit between two corner nodes:
// the edge midpoints (1, 3, 5, 7) and the center (4).
var edgeMidpoints = [NodeCount]bool{1: true, 3: true, 4: true, 5: true, 7: true}

// IsEdgeMidpoint reports whether node i can be passed through on a stroke
// between two corners.
func IsEdgeMidpoint(i int) bool {
	return i >= 0 && i < NodeCount && edgeMidpoints[i]
}

// Node is one touch target on the board.
type Node struct {
	Index  int
	Center Vec2
	Radius float64
	Active bool
}

// HitShape returns the node's circular hit area.
func (n Node) HitShape() HitCircle {
	return HitCircle{CenterX: n.Center.X, CenterY: n.Center.Y, Radius: n.Radius}
}

// Grid is the fixed 3x3 layout of nodes for a square board. The zero value
// is not usable; create one with NewGrid.
type Grid struct {
	width  float64
	radius float64
	nodes  [NodeCount]Node
}

// NewGrid lays out nine nodes in row-major order on a square board of the
// given side. The node radius and the margin are both width/10.
func NewGrid(width float64) Grid {
	r := width / 10
	margin := r
	g := Grid{width: width, radius: r}
	for i := 0; i < NodeCount; i++ {
		col := float64(i % gridSize)
		row := float64(i / gridSize)
		g.nodes[i] = Node{
			Index: i,
			Center: Vec2{
				X: col*(r*2+margin) + margin + r,
				Y: row*(r*2+margin) + margin + r,
			},
			Radius: r,
		}
	}
	return g
}

// Width returns the board side length.
func (g Grid) Width() float64 { return g.width }

// Radius returns the node radius.
func (g Grid) Radius() float64 { return g.radius }

// Node returns node i. It panics if i is out of range.
func (g Grid) Node(i int) Node { return g.nodes[i] }

// Nodes returns a copy of all nodes.
func (g Grid) Nodes() [NodeCount]Node { return g.nodes }

// Center returns the center of node i.
func (g Grid) Center(i int) Vec2 { return g.nodes[i].Center }

// HitTest returns the lowest-indexed node whose circle contains p.
func (g Grid) HitTest(p Vec2) (int, bool) {
	for i := range g.nodes {
		if IsPointInCircle(p, g.nodes[i].Center, g.radius) {
			return i, true
		}
	}
	return -1, false
}

// CrossNode returns the node a straight stroke from node from to node to
// passes through. Only corner-to-corner strokes qualify: if either endpoint
// is itself an edge midpoint there is nothing to pass through.
func (g Grid) CrossNode(from, to int) (int, bool) {
	if from < 0 || from >= NodeCount || to < 0 || to >= NodeCount {
		return -1, false
	}
	if edgeMidpoints[from] || edgeMidpoints[to] {
		return -1, false
	}
	mid := MiddlePoint(g.nodes[from].Center, g.nodes[to].Center)
	for i, ok := range edgeMidpoints {
		if ok && IsEquals(mid, g.nodes[i].Center) {
			return i, true
		}
	}
	return -1, false
}

func (g *Grid) setActive(i int, active bool) {
	g.nodes[i].Active = active
}

func (g *Grid) clearActive() {
	for i := range g.nodes {
		g.nodes[i].Active = false
	}
}
