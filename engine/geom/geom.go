package geom

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or direction in grid space.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Vec2 is a projected screen position.
type Vec2 struct {
	X, Y float64
}

// BoxPoints generates the 8 corners of an axis-aligned box. The order is
// fixed: the z+half face first, then the z-half face, each walking the
// corners (-x-y, +x-y, +x+y, -x+y). Edge and face index tables depend on
// this order.
func BoxPoints(size, center Vec3) [8]Vec3 {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	return [8]Vec3{
		{center.X - hx, center.Y - hy, center.Z + hz},
		{center.X + hx, center.Y - hy, center.Z + hz},
		{center.X + hx, center.Y + hy, center.Z + hz},
		{center.X - hx, center.Y + hy, center.Z + hz},
		{center.X - hx, center.Y - hy, center.Z - hz},
		{center.X + hx, center.Y - hy, center.Z - hz},
		{center.X + hx, center.Y + hy, center.Z - hz},
		{center.X - hx, center.Y + hy, center.Z - hz},
	}
}

// EdgeIndex connects the 8 corners into 12 edges: the two corner rings and
// the 4 struts between them.
var EdgeIndex = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// FaceIndex lists the 6 quads of a box: the two corner-ring faces, then the
// side quads (p, p+1 mod 4, p+1 mod 4 + 4, p+4).
var FaceIndex = [6][4]int{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

// Project rotates p about X, then Y, then Z and applies the parallel
// projection: drop Z, scale to pixels, translate to the screen center.
// The rotation order is load-bearing; swapping it changes how pans look.
func Project(p Vec3, angle Vec3, scale, cx, cy float64) Vec2 {
	v := mgl64.Vec3{p.X, p.Y, p.Z}
	v = mgl64.Rotate3DX(angle.X).Mul3x1(v)
	v = mgl64.Rotate3DY(angle.Y).Mul3x1(v)
	v = mgl64.Rotate3DZ(angle.Z).Mul3x1(v)
	return Vec2{v.X()*scale + cx, v.Y()*scale + cy}
}

// PointInQuad reports whether p lies inside the convex quad q. Points on an
// edge count as inside.
func PointInQuad(p Vec2, q [4]Vec2) bool {
	var neg, pos bool
	for i := 0; i < 4; i++ {
		a, b := q[i], q[(i+1)%4]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross < 0 {
			neg = true
		} else if cross > 0 {
			pos = true
		}
	}
	return !(neg && pos)
}
