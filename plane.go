package springmass

import (
	"github.com/dogstar/springmass/vect"
)

// Plane is an infinite static boundary. Points with
// Dot(p, Normal) + D >= radius are outside it.
// Normal must be unit length; it is not normalized for you.
type Plane struct {
	Normal vect.Vect
	D      vect.Float
}

func NewPlane(normal vect.Vect, d vect.Float) *Plane {
	return &Plane{Normal: normal, D: d}
}

// Distance returns the signed distance from p to the plane surface.
func (plane *Plane) Distance(p vect.Vect) vect.Float {
	return plane.D + vect.Dot(p, plane.Normal)
}

// collide reflects the normal velocity of a mass touching the plane from inside.
// It reports whether the mass was in contact and whether its velocity changed.
func (plane *Plane) collide(mass *Mass) (contact, bounced bool) {
	if plane.Distance(mass.p) >= mass.r {
		return false, false
	}

	impulse := vect.Dot(mass.v, plane.Normal) * (1 + mass.e)
	if impulse < 0 {
		mass.v.Sub(vect.Mult(plane.Normal, impulse))
		return true, true
	}
	return true, false
}
