package structure

import "math"

type Point struct {
	X, Y, Z float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f, p.Z * f} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

func (p Point) Norm() float64 { return math.Sqrt(p.Dot(p)) }

func (p Point) Distance(q Point) float64 { return p.Sub(q).Norm() }

// Mirror reflects the point in the ground plane z = 0.
func (p Point) Mirror() Point { return Point{p.X, p.Y, -p.Z} }

func (p Point) IsFinite() bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Segment is a straight piece of wire. As a current element the current
// flows From -> To.
type Segment struct {
	From, To Point
	Radius   float64
}

func (s Segment) Vector() Point { return s.To.Sub(s.From) }

func (s Segment) Length() float64 { return s.Vector().Norm() }

func (s Segment) Mid() Point { return s.From.Add(s.To).Scale(0.5) }

func (s Segment) Reverse() Segment { return Segment{From: s.To, To: s.From, Radius: s.Radius} }

func (s Segment) Mirror() Segment {
	return Segment{From: s.From.Mirror(), To: s.To.Mirror(), Radius: s.Radius}
}
