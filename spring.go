package springmass

import (
	"github.com/dogstar/springmass/vect"
)

// Spring is a damped linear spring between two masses.
// The spring does not own its masses.
type Spring struct {
	MassA, MassB *Mass
	Stiffness    vect.Float
	RestLength   vect.Float
	Damping      vect.Float

	space *Space
}

func NewSpring(a, b *Mass, stiffness, restLength, damping vect.Float) *Spring {
	return &Spring{
		MassA:      a,
		MassB:      b,
		Stiffness:  stiffness,
		RestLength: restLength,
		Damping:    damping,
	}
}

func (spring *Spring) reset() {
	spring.MassA = nil
	spring.MassB = nil
	spring.Stiffness = 1.0
	spring.RestLength = 1.0
	spring.Damping = 0.0
}

// Bind attaches the spring to a and b.
func (spring *Spring) Bind(a, b *Mass) {
	spring.MassA = a
	spring.MassB = b
}

func (spring *Spring) Bound() bool {
	return spring.MassA != nil && spring.MassB != nil
}

func (spring *Spring) Space() *Space {
	return spring.space
}

// Force returns the force the spring applies to MassA; MassB receives its negation.
// An unbound spring or one whose masses coincide applies no force.
func (spring *Spring) Force() vect.Vect {
	if !spring.Bound() {
		return vect.Vector_Zero
	}
	a, b := spring.MassA, spring.MassB

	d := vect.Sub(a.p, b.p)
	l := d.Length()
	if l == 0 {
		return vect.Vector_Zero
	}

	f := vect.Mult(d, -(l-spring.RestLength)*spring.Stiffness/l)
	f.Add(vect.Mult(vect.Sub(a.v, b.v), -spring.Damping))
	return f
}

func (spring *Spring) apply() bool {
	if !spring.Bound() {
		return false
	}
	f := spring.Force()
	spring.MassA.f.Add(f)
	spring.MassB.f.Sub(f)
	return true
}
