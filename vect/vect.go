package vect

import (
	"github.com/chewxy/math32"
)

type Float float32

var (
	Vector_Zero = Vect{0, 0}
)

func FMin(a, b Float) Float {
	return Float(math32.Min(float32(a), float32(b)))
}

func FMax(a, b Float) Float {
	return Float(math32.Max(float32(a), float32(b)))
}

func FAbs(a Float) Float {
	return Float(math32.Abs(float32(a)))
}

//returns the square root of a.
func FSqrt(a Float) Float {
	return Float(math32.Sqrt(float32(a)))
}

//basic 2d vector.
type Vect struct {
	X, Y Float
}

//adds v2 to the given vector.
func (v1 *Vect) Add(v2 Vect) {
	v1.X += v2.X
	v1.Y += v2.Y
}

//subtracts v2 from the given vector.
func (v1 *Vect) Sub(v2 Vect) {
	v1.X -= v2.X
	v1.Y -= v2.Y
}

//multiplies the vector by the scalar.
func (v *Vect) Mult(s Float) {
	v.X *= s
	v.Y *= s
}

//returns the squared length of the vector.
func (v Vect) LengthSqr() Float {
	return Dot(v, v)
}

//returns the length of the vector.
func (v Vect) Length() Float {
	return FSqrt(Dot(v, v))
}

//reports whether both components are zero.
func (v Vect) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

//compare two vectors by value.
func Equals(v1, v2 Vect) bool {
	return v1.X == v2.X && v1.Y == v2.Y
}

//compare two vectors allowing eps difference per component.
func NearlyEquals(v1, v2 Vect, eps Float) bool {
	return FAbs(v1.X-v2.X) <= eps && FAbs(v1.Y-v2.Y) <= eps
}

//adds the input vectors and returns the result.
func Add(v1, v2 Vect) Vect {
	return Vect{v1.X + v2.X, v1.Y + v2.Y}
}

//subtracts the input vectors and returns the result.
func Sub(v1, v2 Vect) Vect {
	return Vect{v1.X - v2.X, v1.Y - v2.Y}
}

//multiplies a vector by a scalar and returns the result.
func Mult(v1 Vect, s Float) Vect {
	return Vect{v1.X * s, v1.Y * s}
}

//dot product between two vectors.
func Dot(v1, v2 Vect) Float {
	return (v1.X * v2.X) + (v1.Y * v2.Y)
}

//returns the square distance between two vectors.
func DistSqr(v1, v2 Vect) Float {
	return LengthSqr(Sub(v1, v2))
}

//returns the distance between two vectors.
func Dist(v1, v2 Vect) Float {
	return FSqrt(DistSqr(v1, v2))
}

//returns the squared length of the vector.
func LengthSqr(v Vect) Float {
	return Dot(v, v)
}

//returns the length of the vector.
func Length(v Vect) Float {
	return FSqrt(Dot(v, v))
}

//returns the normalized input vector.
//The zero vector has no direction and yields NaN components, callers must guard.
func Normalize(v Vect) Vect {
	f := 1.0 / Length(v)
	return Vect{v.X * f, v.Y * f}
}

//returns a new vector with its x/y values set to the smaller one from the two input values.
func Min(v1, v2 Vect) Vect {
	return Vect{FMin(v1.X, v2.X), FMin(v1.Y, v2.Y)}
}

//returns a new vector with its x/y values set to the bigger one from the two input values.
//e.g. Max({2, 10}, {8, 3}) would return {8, 10}
func Max(v1, v2 Vect) Vect {
	return Vect{FMax(v1.X, v2.X), FMax(v1.Y, v2.Y)}
}

