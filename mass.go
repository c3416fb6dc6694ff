package springmass

import (
	. "github.com/dogstar/springmass/vect"
)

// CollisionBits is a bitmask of collision categories.
type CollisionBits uint16

type Mass struct {
	/// Position of the center of the mass.
	p Vect
	/// Velocity of the mass.
	v Vect
	/// Acceleration computed by the last integration.
	a Vect
	/// Force accumulated for the next integration.
	f Vect

	/// Coefficient of restitution.
	/// Summed with the other body's coefficient in mass-mass collisions.
	e Float
	/// Mass of the body. Must be positive when the space integrates it.
	m Float
	/// Radius of the collision disc.
	r Float

	/// Categories this mass belongs to.
	collisionType CollisionBits
	/// Categories this mass may collide with.
	collisionMask CollisionBits

	/// User definable data.
	/// Generally this points to your game object so you can access it
	/// from a collision filter.
	UserData interface{}

	space *Space
}

// NewMass returns a mass with the given mass and radius and zeroed kinematics.
// The mass is not validated here; a non-positive mass only fails when a space integrates it.
func NewMass(mass, radius Float) *Mass {
	return &Mass{m: mass, r: radius}
}

// reset applies the defaults a space gives every mass it takes ownership of.
func (mass *Mass) reset() {
	mass.p = Vector_Zero
	mass.v = Vector_Zero
	mass.a = Vector_Zero
	mass.f = Vector_Zero
	mass.e = 1.0
	mass.m = 1.0
	mass.r = 0.5
	mass.collisionType = 0
	mass.collisionMask = 0
	mass.UserData = nil
}

func (mass *Mass) Position() Vect {
	return mass.p
}

func (mass *Mass) SetPosition(pos Vect) {
	mass.p = pos
}

func (mass *Mass) Velocity() Vect {
	return mass.v
}

func (mass *Mass) SetVelocity(vel Vect) {
	mass.v = vel
}

func (mass *Mass) AddVelocity(dv Vect) {
	mass.v.Add(dv)
}

func (mass *Mass) Acceleration() Vect {
	return mass.a
}

func (mass *Mass) SetAcceleration(acc Vect) {
	mass.a = acc
}

// Force returns the force accumulated since the last integration.
func (mass *Mass) Force() Vect {
	return mass.f
}

func (mass *Mass) SetForce(f Vect) {
	mass.f = f
}

// AddForce adds f to the accumulator. It is consumed by the next Step.
func (mass *Mass) AddForce(f Vect) {
	mass.f.Add(f)
}

func (mass *Mass) Restitution() Float {
	return mass.e
}

func (mass *Mass) SetRestitution(e Float) {
	mass.e = e
}

func (mass *Mass) Mass() Float {
	return mass.m
}

func (mass *Mass) SetMass(m Float) {
	mass.m = m
}

func (mass *Mass) Radius() Float {
	return mass.r
}

func (mass *Mass) SetRadius(r Float) {
	mass.r = r
}

func (mass *Mass) CollisionType() CollisionBits {
	return mass.collisionType
}

func (mass *Mass) CollisionMask() CollisionBits {
	return mass.collisionMask
}

// SetCollision sets the categories the mass belongs to and the categories it collides with.
func (mass *Mass) SetCollision(typ, mask CollisionBits) {
	mass.collisionType = typ
	mass.collisionMask = mask
}

// Space returns the space the mass was added to, or nil.
func (mass *Mass) Space() *Space {
	return mass.space
}

func (mass *Mass) KineticEnergy() Float {
	return 0.5 * mass.m * Dot(mass.v, mass.v)
}

// lower and upper bounds of the mass on the sweep axis.
func (mass *Mass) lowerX() Float {
	return mass.p.X - mass.r
}

func (mass *Mass) upperX() Float {
	return mass.p.X + mass.r
}

// canCollide reports whether a's mask accepts b's categories.
// a is the mass that comes first in sweep order.
func canCollide(a, b *Mass) bool {
	return a.collisionMask&b.collisionType != 0
}
