package springmass

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dogstar/springmass/vect"
	"golang.org/x/exp/slices"
)

// ErrCapacityExceeded is returned when adding to a collection whose slots are all in use.
var ErrCapacityExceeded = errors.New("springmass: capacity exceeded")

// Space owns fixed-capacity collections of masses, springs and planes
// and advances them one tick at a time.
//
// A space is not safe for concurrent use.
type Space struct {

	/// Drag coefficient, scaled by each body's mass and velocity.
	Friction vect.Float

	/// Weight of the velocity in the position update.
	VFactor vect.Float

	/// Weight of the acceleration in the position update.
	AFactor vect.Float

	/// Magnitude of the force pushing apart overlapping masses that are not approaching.
	SeparationForce vect.Float

	/// Keep force accumulators across steps instead of clearing them after integration.
	RetainForces bool

	/// Log a summary of every step and every unbound spring it skips.
	Debug bool

	masses    []*Mass
	numMasses int

	springs    []*Spring
	numSprings int

	planes    []*Plane
	numPlanes int

	sweep []*Mass

	filter CollisionFilter

	stamp uint64
	stats StepStats
}

// NewSpace returns an empty space with room for the given number of masses, springs and planes.
func NewSpace(maxMasses, maxSprings, maxPlanes int) (space *Space) {
	if maxMasses < 0 || maxSprings < 0 || maxPlanes < 0 {
		panic(fmt.Sprintf("springmass: negative capacity (%d, %d, %d)", maxMasses, maxSprings, maxPlanes))
	}

	space = &Space{}

	space.Friction = 0.04
	space.VFactor = 0.02
	space.AFactor = 0.0004
	space.SeparationForce = 1.0

	space.masses = make([]*Mass, maxMasses)
	space.springs = make([]*Spring, maxSprings)
	space.planes = make([]*Plane, maxPlanes)
	space.sweep = make([]*Mass, 0, maxMasses)

	return
}

// Destroy releases the slot arrays. Masses, springs and planes are left intact
// and may be added to another space afterwards.
func (space *Space) Destroy() {
	for _, mass := range space.masses[:space.numMasses] {
		mass.space = nil
	}
	for _, spring := range space.springs[:space.numSprings] {
		spring.space = nil
	}

	space.masses = nil
	space.springs = nil
	space.planes = nil
	space.sweep = nil
	space.numMasses = 0
	space.numSprings = 0
	space.numPlanes = 0
	space.filter = nil
}

func (space *Space) destroyed() bool {
	return space.masses == nil
}

func (space *Space) mustBeAlive() {
	if space.destroyed() {
		panic("springmass: space used after Destroy")
	}
}

// SetCollisionFilter installs the filter consulted for overlapping mass pairs.
// A nil filter allows every collision.
func (space *Space) SetCollisionFilter(filter CollisionFilter) {
	space.filter = filter
}

// CollisionFilter returns the installed filter, or nil.
func (space *Space) CollisionFilter() CollisionFilter {
	return space.filter
}

// Step advances the simulation by one tick:
// spring forces, mass-mass collisions, integration, then mass-plane collisions.
func (space *Space) Step() {
	space.mustBeAlive()

	start := time.Now()
	space.stats = StepStats{}
	space.stamp++

	space.applySprings()
	space.collideMasses()
	space.integrate()
	space.collidePlanes()

	space.stats.StepTime = time.Since(start)

	if space.Debug {
		log.Printf("springmass: step %d: %v", space.stamp, space.stats)
	}
}

func (space *Space) applySprings() {
	for i, spring := range space.springs[:space.numSprings] {
		if !spring.apply() {
			space.stats.UnboundSprings++
			if space.Debug {
				log.Printf("springmass: step %d: skipping unbound spring %d", space.stamp, i)
			}
		}
	}
}

func (space *Space) integrate() {
	for _, mass := range space.masses[:space.numMasses] {
		if mass.m <= 0 {
			panic(fmt.Sprintf("springmass: cannot integrate mass %v, mass must be positive and non-zero", mass.m))
		}

		drag := vect.Mult(mass.v, mass.m*space.Friction)
		mass.a = vect.Mult(vect.Sub(mass.f, drag), 1/mass.m)
		mass.p.Add(vect.Add(vect.Mult(mass.v, space.VFactor), vect.Mult(mass.a, space.AFactor)))
		mass.v.Add(mass.a)

		if !space.RetainForces {
			mass.f = vect.Vector_Zero
		}
	}
}

// Steps returns the number of completed steps.
func (space *Space) Steps() uint64 {
	return space.stamp
}

// Stats returns the counters of the last step.
func (space *Space) Stats() StepStats {
	return space.stats
}

// AddMass takes ownership of mass and resets it to the space defaults:
// zero kinematics, restitution 1, mass 1, radius 0.5 and empty collision masks.
// Configure the mass after adding it.
func (space *Space) AddMass(mass *Mass) error {
	space.mustBeAlive()
	if mass.space == space || slices.Contains(space.masses[:space.numMasses], mass) {
		panic("springmass: mass is already added to this space")
	}
	if mass.space != nil {
		panic("springmass: mass is already added to a space and cannot be added to another")
	}
	if space.numMasses == len(space.masses) {
		return fmt.Errorf("%w: %d masses", ErrCapacityExceeded, len(space.masses))
	}

	space.masses[space.numMasses] = mass
	space.numMasses++
	mass.space = space
	mass.reset()
	return nil
}

// RemoveMass removes mass and closes the gap, keeping the order of the remaining masses.
// Springs bound to the mass keep their reference.
func (space *Space) RemoveMass(mass *Mass) {
	space.mustBeAlive()
	i := slices.Index(space.masses[:space.numMasses], mass)
	if i < 0 {
		panic("springmass: cannot remove a mass that was not added to the space (removed twice maybe?)")
	}
	space.numMasses = compact(space.masses, i, space.numMasses)
	mass.space = nil
}

// AddSpring takes ownership of spring and resets it to stiffness 1, rest length 1,
// no damping and no masses. Bind the masses after adding it.
func (space *Space) AddSpring(spring *Spring) error {
	space.mustBeAlive()
	if spring.space == space || slices.Contains(space.springs[:space.numSprings], spring) {
		panic("springmass: spring is already added to this space")
	}
	if spring.space != nil {
		panic("springmass: spring is already added to a space and cannot be added to another")
	}
	if space.numSprings == len(space.springs) {
		return fmt.Errorf("%w: %d springs", ErrCapacityExceeded, len(space.springs))
	}

	space.springs[space.numSprings] = spring
	space.numSprings++
	spring.space = space
	spring.reset()
	return nil
}

// RemoveSpring removes spring and closes the gap, keeping the order of the remaining springs.
func (space *Space) RemoveSpring(spring *Spring) {
	space.mustBeAlive()
	i := slices.Index(space.springs[:space.numSprings], spring)
	if i < 0 {
		panic("springmass: cannot remove a spring that was not added to the space (removed twice maybe?)")
	}
	space.numSprings = compact(space.springs, i, space.numSprings)
	spring.space = nil
}

// AddPlane adds plane as is. A plane may be shared between spaces.
func (space *Space) AddPlane(plane *Plane) error {
	space.mustBeAlive()
	if slices.Contains(space.planes[:space.numPlanes], plane) {
		panic("springmass: plane is already added to this space")
	}
	if space.numPlanes == len(space.planes) {
		return fmt.Errorf("%w: %d planes", ErrCapacityExceeded, len(space.planes))
	}

	space.planes[space.numPlanes] = plane
	space.numPlanes++
	return nil
}

// RemovePlane removes plane and closes the gap, keeping the order of the remaining planes.
func (space *Space) RemovePlane(plane *Plane) {
	space.mustBeAlive()
	i := slices.Index(space.planes[:space.numPlanes], plane)
	if i < 0 {
		panic("springmass: cannot remove a plane that was not added to the space (removed twice maybe?)")
	}
	space.numPlanes = compact(space.planes, i, space.numPlanes)
}

// compact removes slots[i] from the live prefix slots[:n] by shifting the tail down
// and returns the new count.
func compact[T any](slots []*T, i, n int) int {
	copy(slots[i:n], slots[i+1:n])
	slots[n-1] = nil
	return n - 1
}

// Masses returns the live masses in insertion order.
// The slice aliases the space's storage and is valid until the next add or remove.
func (space *Space) Masses() []*Mass {
	return space.masses[:space.numMasses]
}

func (space *Space) Springs() []*Spring {
	return space.springs[:space.numSprings]
}

func (space *Space) Planes() []*Plane {
	return space.planes[:space.numPlanes]
}

func (space *Space) EachMass(fnc func(*Mass)) {
	for _, mass := range space.masses[:space.numMasses] {
		fnc(mass)
	}
}

func (space *Space) MassCount() int { return space.numMasses }
func (space *Space) SpringCount() int { return space.numSprings }
func (space *Space) PlaneCount() int { return space.numPlanes }

func (space *Space) MassCapacity() int { return len(space.masses) }
func (space *Space) SpringCapacity() int { return len(space.springs) }
func (space *Space) PlaneCapacity() int { return len(space.planes) }
