// Package scene describes a populated space in YAML and builds it.
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/dogstar/springmass"
	"github.com/dogstar/springmass/vect"
	"gopkg.in/yaml.v3"
)

type Capacity struct {
	Masses  int `yaml:"masses"`
	Springs int `yaml:"springs"`
	Planes  int `yaml:"planes"`
}

// Constants override the space defaults. Nil fields keep the default.
type Constants struct {
	Friction        *vect.Float `yaml:"friction"`
	VFactor         *vect.Float `yaml:"v_factor"`
	AFactor         *vect.Float `yaml:"a_factor"`
	SeparationForce *vect.Float `yaml:"separation_force"`
	RetainForces    bool        `yaml:"retain_forces"`
}

type Mass struct {
	Name        string      `yaml:"name"`
	Position    vect.Vect   `yaml:"position"`
	Velocity    vect.Vect   `yaml:"velocity"`
	Mass        vect.Float  `yaml:"mass"`
	Radius      *vect.Float `yaml:"radius"`
	Restitution *vect.Float `yaml:"restitution"`
	Type        uint16      `yaml:"type"`
	Mask        uint16      `yaml:"mask"`
}

// Spring binds two masses by name. Nil fields keep the space defaults.
type Spring struct {
	A          string      `yaml:"a"`
	B          string      `yaml:"b"`
	Stiffness  *vect.Float `yaml:"k"`
	RestLength *vect.Float `yaml:"length"`
	Damping    *vect.Float `yaml:"damping"`
}

type Plane struct {
	Normal    vect.Vect  `yaml:"normal"`
	D         vect.Float `yaml:"d"`
	Normalize bool       `yaml:"normalize"`
}

type Scene struct {
	Capacity  Capacity  `yaml:"capacity"`
	Constants Constants `yaml:"constants"`
	Masses    []Mass    `yaml:"masses"`
	Springs   []Spring  `yaml:"springs"`
	Planes    []Plane   `yaml:"planes"`
}

// World is a built scene: the space and its masses by name.
type World struct {
	Space   *springmass.Space
	Masses  map[string]*springmass.Mass
	Springs []*springmass.Spring
	Planes  []*springmass.Plane
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

func Parse(data []byte) (*Scene, error) {
	sc := &Scene{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Validate checks names, references and normals without building anything.
func (sc *Scene) Validate() error {
	names := make(map[string]bool, len(sc.Masses))
	for i, m := range sc.Masses {
		if m.Name == "" {
			return fmt.Errorf("mass %d has no name", i)
		}
		if names[m.Name] {
			return fmt.Errorf("duplicate mass %q", m.Name)
		}
		names[m.Name] = true
		if m.Mass < 0 {
			return fmt.Errorf("mass %q: negative mass %v", m.Name, m.Mass)
		}
	}
	for i, s := range sc.Springs {
		if !names[s.A] || !names[s.B] {
			return fmt.Errorf("spring %d: unknown mass %q or %q", i, s.A, s.B)
		}
		if s.A == s.B {
			return fmt.Errorf("spring %d: both ends on %q", i, s.A)
		}
	}
	for i, p := range sc.Planes {
		if p.Normal.IsZero() {
			return fmt.Errorf("plane %d: zero normal", i)
		}
	}
	return nil
}

func (sc *Scene) capacity() Capacity {
	c := sc.Capacity
	c.Masses = max(c.Masses, len(sc.Masses))
	c.Springs = max(c.Springs, len(sc.Springs))
	c.Planes = max(c.Planes, len(sc.Planes))
	return c
}

// Build creates a space for the scene. Capacities smaller than the lists they
// bound are raised to fit. Masses are configured after insertion since the
// space resets everything it is given.
func (sc *Scene) Build() (*World, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	c := sc.capacity()
	space := springmass.NewSpace(c.Masses, c.Springs, c.Planes)
	sc.Constants.apply(space)

	world := &World{Space: space, Masses: make(map[string]*springmass.Mass, len(sc.Masses))}

	for _, m := range sc.Masses {
		mass := springmass.NewMass(m.Mass, 0)
		if err := space.AddMass(mass); err != nil {
			return nil, fmt.Errorf("mass %q: %w", m.Name, err)
		}
		mass.SetPosition(m.Position)
		mass.SetVelocity(m.Velocity)
		if m.Mass != 0 {
			mass.SetMass(m.Mass)
		}
		if m.Radius != nil {
			mass.SetRadius(*m.Radius)
		}
		if m.Restitution != nil {
			mass.SetRestitution(*m.Restitution)
		}
		mass.SetCollision(springmass.CollisionBits(m.Type), springmass.CollisionBits(m.Mask))
		mass.UserData = m.Name
		world.Masses[m.Name] = mass
	}

	for i, s := range sc.Springs {
		spring := &springmass.Spring{}
		if err := space.AddSpring(spring); err != nil {
			return nil, fmt.Errorf("spring %d: %w", i, err)
		}
		spring.Bind(world.Masses[s.A], world.Masses[s.B])
		if s.Stiffness != nil {
			spring.Stiffness = *s.Stiffness
		}
		if s.RestLength != nil {
			spring.RestLength = *s.RestLength
		}
		if s.Damping != nil {
			spring.Damping = *s.Damping
		}
		world.Springs = append(world.Springs, spring)
	}

	for i, p := range sc.Planes {
		normal := p.Normal
		if p.Normalize {
			normal = vect.Normalize(normal)
		}
		plane := springmass.NewPlane(normal, p.D)
		if err := space.AddPlane(plane); err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		world.Planes = append(world.Planes, plane)
	}

	return world, nil
}

func (c Constants) apply(space *springmass.Space) {
	if c.Friction != nil {
		space.Friction = *c.Friction
	}
	if c.VFactor != nil {
		space.VFactor = *c.VFactor
	}
	if c.AFactor != nil {
		space.AFactor = *c.AFactor
	}
	if c.SeparationForce != nil {
		space.SeparationForce = *c.SeparationForce
	}
	space.RetainForces = c.RetainForces
}

// Encode renders the scene as YAML.
func (sc *Scene) Encode() ([]byte, error) {
	return yaml.Marshal(sc)
}

// ErrNoMass is returned when looking up a name the scene does not define.
var ErrNoMass = errors.New("scene: no such mass")

// Mass looks up a built mass by name.
func (world *World) Mass(name string) (*springmass.Mass, error) {
	mass, ok := world.Masses[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoMass, name)
	}
	return mass, nil
}
