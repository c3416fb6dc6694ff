package springmass

// CollisionFilter decides per overlapping pair whether the space resolves the collision.
// Detection has already happened when it is called; returning false vetoes the response.
type CollisionFilter interface {
	AllowCollision(a, b *Mass) bool
}

// CollisionFilterFunc adapts a plain function to a CollisionFilter.
type CollisionFilterFunc func(a, b *Mass) bool

func (fnc CollisionFilterFunc) AllowCollision(a, b *Mass) bool {
	return fnc(a, b)
}

// CollisionOutcome is the result of testing one pair of masses.
type CollisionOutcome uint8

const (
	CollisionNone CollisionOutcome = iota
	// overlapping, vetoed by the collision filter
	CollisionRejected
	// approaching bodies, velocities exchanged by impulse
	CollisionBounce
	// overlapping but not approaching, pushed apart by separation force
	CollisionSeparate
	// overlapping with identical centers, no normal to resolve along
	CollisionCoincident
)

func (outcome CollisionOutcome) String() string {
	switch outcome {
	case CollisionNone:
		return "none"
	case CollisionRejected:
		return "rejected"
	case CollisionBounce:
		return "bounce"
	case CollisionSeparate:
		return "separate"
	case CollisionCoincident:
		return "coincident"
	}
	return "unknown"
}
