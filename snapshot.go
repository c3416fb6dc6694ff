package springmass

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/dogstar/springmass/vect"
	"github.com/jinzhu/copier"
)

// MassState is a value copy of the public state of a mass.
type MassState struct {
	Position     vect.Vect
	Velocity     vect.Vect
	Acceleration vect.Vect
	Force        vect.Vect

	Mass        vect.Float
	Radius      vect.Float
	Restitution vect.Float

	CollisionType CollisionBits
	CollisionMask CollisionBits
}

// State copies the mass' state through its accessors.
func (mass *Mass) State() (state MassState) {
	if err := copier.Copy(&state, mass); err != nil {
		panic(fmt.Sprintf("springmass: copying mass state: %v", err))
	}
	return
}

// SetState overwrites the mass' state with s.
func (mass *Mass) SetState(s MassState) {
	mass.p = s.Position
	mass.v = s.Velocity
	mass.a = s.Acceleration
	mass.f = s.Force
	mass.m = s.Mass
	mass.r = s.Radius
	mass.e = s.Restitution
	mass.collisionType = s.CollisionType
	mass.collisionMask = s.CollisionMask
}

// Clone returns a copy of the mass that belongs to no space.
// UserData is shared with the original.
func (mass *Mass) Clone() *Mass {
	clone := &Mass{UserData: mass.UserData}
	clone.SetState(mass.State())
	return clone
}

// Snapshot holds the state of every live mass in slot order.
type Snapshot []MassState

// Snapshot captures the state of the live masses.
func (space *Space) Snapshot() Snapshot {
	snap := make(Snapshot, 0, space.numMasses)
	for _, mass := range space.masses[:space.numMasses] {
		snap = append(snap, mass.State())
	}
	return snap
}

// Restore writes snap back onto the live masses. The snapshot must have been
// taken with the same number of masses.
func (space *Space) Restore(snap Snapshot) error {
	space.mustBeAlive()
	if len(snap) != space.numMasses {
		return fmt.Errorf("springmass: snapshot of %d masses does not fit %d masses", len(snap), space.numMasses)
	}
	for i, mass := range space.masses[:space.numMasses] {
		mass.SetState(snap[i])
	}
	return nil
}

// Equal reports whether both snapshots hold the same values in the same order.
func (snap Snapshot) Equal(other Snapshot) bool {
	if len(snap) != len(other) {
		return false
	}
	for i := range snap {
		if snap[i] != other[i] {
			return false
		}
	}
	return true
}

// Dump renders the snapshot for debugging.
func (snap Snapshot) Dump() string {
	cfg := spew.ConfigState{Indent: "\t", DisablePointerAddresses: true, SortKeys: true}
	return cfg.Sdump(snap)
}
