package springmass

import (
	"github.com/dogstar/springmass/vect"
)

//axis aligned bounding box.
type AABB struct {
	Lower, //l b
	Upper vect.Vect // r t
}

func NewAABB(l, b, r, t vect.Float) AABB {
	return AABB{vect.Vect{X: l, Y: b}, vect.Vect{X: r, Y: t}}
}

//returns the box around a disc.
func NewAABBForCircle(center vect.Vect, radius vect.Float) AABB {
	rv := vect.Vect{X: radius, Y: radius}
	return AABB{vect.Sub(center, rv), vect.Add(center, rv)}
}

func (aabb AABB) Valid() bool {
	return aabb.Lower.X <= aabb.Upper.X && aabb.Lower.Y <= aabb.Upper.Y
}

//returns the center of the aabb
func (aabb AABB) Center() vect.Vect {
	return vect.Mult(vect.Add(aabb.Lower, aabb.Upper), 0.5)
}

//returns if v is contained inside this aabb.
func (aabb AABB) ContainsVect(v vect.Vect) bool {
	return aabb.Lower.X <= v.X &&
		aabb.Upper.X >= v.X &&
		aabb.Lower.Y <= v.Y &&
		aabb.Upper.Y >= v.Y
}

//returns an AABB that holds both a and b.
func Combine(a, b AABB) AABB {
	return AABB{
		vect.Min(a.Lower, b.Lower),
		vect.Max(a.Upper, b.Upper),
	}
}

func TestOverlap(a, b AABB) bool {
	return a.Lower.X <= b.Upper.X && b.Lower.X <= a.Upper.X && a.Lower.Y <= b.Upper.Y && b.Lower.Y <= a.Upper.Y
}

// BB returns the bounding box of the mass' collision disc.
func (mass *Mass) BB() AABB {
	return NewAABBForCircle(mass.p, mass.r)
}

// Bounds returns the box holding every live mass, and false if there is none.
// Masses with a negative radius have no valid box and are left out.
func (space *Space) Bounds() (bb AABB, ok bool) {
	for _, mass := range space.masses[:space.numMasses] {
		mbb := mass.BB()
		if !mbb.Valid() {
			continue
		}
		if ok {
			bb = Combine(bb, mbb)
		} else {
			bb, ok = mbb, true
		}
	}
	return
}
