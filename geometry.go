package patternlock

// HitCircle is a circular hit area in board coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// IsPointInCircle reports whether p lies within radius of center. Points on
// the circumference count as inside. NaN coordinates never match.
func IsPointInCircle(p, center Vec2, radius float64) bool {
	return HitCircle{CenterX: center.X, CenterY: center.Y, Radius: radius}.Contains(p.X, p.Y)
}

// MiddlePoint returns the arithmetic midpoint of a and b.
func MiddlePoint(a, b Vec2) Vec2 {
	return Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// IsEquals reports whether a and b are the same point.
func IsEquals(a, b Vec2) bool {
	return a.Equals(b)
}
