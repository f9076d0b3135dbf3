package vmath

import "math"

// Dial is the ellipse the clock face occupies, in cell coordinates.
// RadiusX is measured in columns, RadiusY in rows
type Dial struct {
	CenterX int
	CenterY int
	RadiusX float64
	RadiusY float64
}

// FitDial computes the largest dial that fits a width x height cell
// window with the given margin on every side. aspect is the visual
// width:height ratio of one cell: the fitted ellipse appears round on a
// terminal whose cells match it. aspect 1.0 disables the correction and
// degenerates to equal radii on square windows. scale multiplies both
// radii, 1.0 fills the window
func FitDial(width, height, margin int, aspect, scale float64) Dial {
	d := Dial{
		CenterX: width / 2,
		CenterY: height / 2,
	}

	halfW := float64(width/2 - margin)
	halfH := float64(height/2 - margin)
	if halfW <= 0 || halfH <= 0 {
		return d
	}
	if aspect <= 0 {
		aspect = 1
	}

	rx := math.Min(halfW, math.Round(halfH/aspect))
	ry := math.Min(halfH, math.Round(rx*aspect))

	d.RadiusX = rx * scale
	d.RadiusY = ry * scale
	return d
}

// Valid reports whether the dial has drawable extent
func (d Dial) Valid() bool {
	return d.RadiusX > 0 && d.RadiusY > 0
}

// PointAt returns the cell at the given clock angle and radius fraction.
// Angle 0 is 12 o'clock increasing clockwise. The mapping goes through
// both semi-axes, so a hand keeps pointing at the correct dial position
// when the ellipse is wider than tall
func (d Dial) PointAt(angleDeg, frac float64) (int, int) {
	rad := angleDeg * math.Pi / 180.0
	x := float64(d.CenterX) + d.RadiusX*frac*math.Sin(rad)
	y := float64(d.CenterY) - d.RadiusY*frac*math.Cos(rad)
	return int(math.Round(x)), int(math.Round(y))
}
