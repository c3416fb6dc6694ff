package springmass

import (
	"testing"

	"github.com/dogstar/springmass/vect"
)

func TestNewMass(t *testing.T) {
	mass := NewMass(3, 0.25)
	want := MassState{Mass: 3, Radius: 0.25}
	if got := mass.State(); got != want {
		t.Errorf("NewMass(3, 0.25) = %+v, want %+v", got, want)
	}
	if mass.Space() != nil {
		t.Errorf("new mass belongs to a space")
	}

	// accepted here, rejected only by integration
	if NewMass(-1, 0).Mass() != -1 {
		t.Errorf("NewMass rewrote a negative mass")
	}
}

func TestMassClone(t *testing.T) {
	space := NewSpace(1, 0, 0)
	mass := addBall(t, space, vect.Vect{X: 1, Y: 2}, vect.Vect{X: 3, Y: 4}, 0.75)
	mass.SetRestitution(0.3)
	mass.AddForce(vect.Vect{X: -1, Y: 0})
	mass.UserData = "original"

	clone := mass.Clone()
	if clone.State() != mass.State() {
		t.Errorf("Clone() = %+v, want %+v", clone.State(), mass.State())
	}
	if clone.Space() != nil {
		t.Errorf("clone belongs to a space")
	}
	if clone.UserData != "original" {
		t.Errorf("clone.UserData = %v", clone.UserData)
	}

	clone.SetVelocity(vect.Vect{})
	if vect.Equals(mass.Velocity(), vect.Vector_Zero) {
		t.Errorf("changing the clone changed the original")
	}
}

func TestKineticEnergy(t *testing.T) {
	mass := NewMass(2, 1)
	mass.SetVelocity(vect.Vect{X: 3, Y: 4})
	if e := mass.KineticEnergy(); e != 25 {
		t.Errorf("KineticEnergy() = %v, want 25", e)
	}
}

func TestForceAccumulator(t *testing.T) {
	mass := NewMass(1, 1)
	mass.AddForce(vect.Vect{X: 1, Y: 2})
	mass.AddForce(vect.Vect{X: 3, Y: -1})
	if !vect.Equals(mass.Force(), vect.Vect{X: 4, Y: 1}) {
		t.Errorf("Force() = %v, want {4 1}", mass.Force())
	}
	mass.SetForce(vect.Vector_Zero)
	if !vect.Equals(mass.Force(), vect.Vector_Zero) {
		t.Errorf("SetForce did not clear")
	}
}

func TestCollisionOutcomeString(t *testing.T) {
	names := map[CollisionOutcome]string{
		CollisionNone:        "none",
		CollisionRejected:    "rejected",
		CollisionBounce:      "bounce",
		CollisionSeparate:    "separate",
		CollisionCoincident:  "coincident",
		CollisionOutcome(99): "unknown",
	}
	for outcome, want := range names {
		if got := outcome.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", outcome, got, want)
		}
	}
}

func TestSnapshotDump(t *testing.T) {
	space := NewSpace(1, 0, 0)
	addBall(t, space, vect.Vect{X: 1, Y: 2}, vect.Vect{}, 0.5)
	if dump := space.Snapshot().Dump(); len(dump) == 0 {
		t.Errorf("empty dump")
	}
}
