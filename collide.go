package springmass

import (
	"cmp"

	"github.com/dogstar/springmass/vect"
	"golang.org/x/exp/slices"
)

func sweepOrder(a, b *Mass) int {
	return cmp.Compare(a.lowerX(), b.lowerX())
}

// collideMasses sweeps the masses along x and resolves every overlapping pair.
// The slot array is left untouched; the sort runs on a scratch list.
func (space *Space) collideMasses() {
	sweep := append(space.sweep[:0], space.masses[:space.numMasses]...)
	slices.SortStableFunc(sweep, sweepOrder)
	space.sweep = sweep

	for i, a := range sweep {
		for _, b := range sweep[i+1:] {
			// Every later mass starts even further right.
			if a.upperX() < b.lowerX() {
				break
			}
			if !canCollide(a, b) {
				continue
			}
			space.stats.record(space.collidePair(a, b))
		}
	}
}

func (space *Space) collidePair(a, b *Mass) CollisionOutcome {
	space.stats.PairsTested++
	if !TestOverlap(a.BB(), b.BB()) {
		return CollisionNone
	}

	n := vect.Sub(b.p, a.p)
	distSqr := n.LengthSqr()
	radiusSum := a.r + b.r
	if distSqr >= radiusSum*radiusSum {
		return CollisionNone
	}

	if space.filter != nil && !space.filter.AllowCollision(a, b) {
		return CollisionRejected
	}

	if distSqr == 0 {
		return CollisionCoincident
	}

	e := a.e + b.e
	inverseMassSum := 1/a.m + 1/b.m
	relativeVelocity := vect.Mult(vect.Sub(b.v, a.v), e)

	n = vect.Mult(n, 1/vect.FSqrt(distSqr))
	impulse := vect.Dot(relativeVelocity, n) / inverseMassSum

	if impulse < 0 {
		a.v.Add(vect.Mult(n, impulse/a.m))
		b.v.Add(vect.Mult(n, -impulse/b.m))
		return CollisionBounce
	}

	a.f.Add(vect.Mult(n, -space.SeparationForce))
	b.f.Add(vect.Mult(n, space.SeparationForce))
	return CollisionSeparate
}

func (space *Space) collidePlanes() {
	planes := space.planes[:space.numPlanes]
	for _, mass := range space.masses[:space.numMasses] {
		for _, plane := range planes {
			contact, bounced := plane.collide(mass)
			if contact {
				space.stats.PlaneContacts++
			}
			if bounced {
				space.stats.PlaneBounces++
			}
		}
	}
}
