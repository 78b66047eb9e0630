package geometry

import "iter"

// Vector2D is a mutable pair of numeric components. Arithmetic through
// the operator interfaces is structural and returns new values; only
// the *Assign methods mutate in place. Vectors are meant to be passed
// by value.
type Vector2D struct {
	X, Y float64
}

// Add attempts v + other; only another Vector2D is supported
func (v Vector2D) Add(other any) (any, error) {
	if o, ok := other.(Vector2D); ok {
		return Vector2D{X: v.X + o.X, Y: v.Y + o.Y}, nil
	}
	return nil, ErrUnsupported
}

// ReflectedAdd attempts other + v; addition commutes
func (v Vector2D) ReflectedAdd(other any) (any, error) {
	return v.Add(other)
}

// Sub attempts v - other
func (v Vector2D) Sub(other any) (any, error) {
	if o, ok := other.(Vector2D); ok {
		return Vector2D{X: v.X - o.X, Y: v.Y - o.Y}, nil
	}
	return nil, ErrUnsupported
}

// ReflectedSub attempts other - v. Subtraction does not commute, so the
// operands must not simply be swapped back.
func (v Vector2D) ReflectedSub(other any) (any, error) {
	if o, ok := other.(Vector2D); ok {
		return Vector2D{X: o.X - v.X, Y: o.Y - v.Y}, nil
	}
	return nil, ErrUnsupported
}

// Mul attempts v * other for a scalar other
func (v Vector2D) Mul(other any) (any, error) {
	if s, ok := asScalar(other); ok {
		return Vector2D{X: v.X * s, Y: v.Y * s}, nil
	}
	return nil, ErrUnsupported
}

// ReflectedMul attempts other * v; scalar multiplication commutes
func (v Vector2D) ReflectedMul(other any) (any, error) {
	return v.Mul(other)
}

// Div attempts v / other for a scalar other. A zero divisor is an
// explicit ErrDivisionByZero, never an infinity.
func (v Vector2D) Div(other any) (any, error) {
	s, ok := asScalar(other)
	if !ok {
		return nil, ErrUnsupported
	}
	if s == 0 {
		return nil, ErrDivisionByZero
	}
	return Vector2D{X: v.X / s, Y: v.Y / s}, nil
}

// Neg returns the component-wise negation
func (v Vector2D) Neg() any {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// AddAssign adds other in place and returns the receiver for chaining
func (v *Vector2D) AddAssign(other Vector2D) *Vector2D {
	v.X += other.X
	v.Y += other.Y
	return v
}

// SubAssign subtracts other in place and returns the receiver for chaining
func (v *Vector2D) SubAssign(other Vector2D) *Vector2D {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// Equal reports structural equality
func (v Vector2D) Equal(other Vector2D) bool {
	return v == other
}

// Len returns the number of components, always 2
func (v Vector2D) Len() int {
	return 2
}

// At returns the component at index i: 0 is X, 1 is Y. A negative index
// wraps once from the end, so -1 is Y and -2 is X; anything further out
// fails with *IndexOutOfRangeError.
func (v Vector2D) At(i int) (float64, error) {
	switch normalizeIndex(i) {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	default:
		return 0, &IndexOutOfRangeError{Index: i, Length: 2}
	}
}

// SetAt assigns the component at index i, with the same index rules as At
func (v *Vector2D) SetAt(i int, val float64) error {
	switch normalizeIndex(i) {
	case 0:
		v.X = val
		return nil
	case 1:
		v.Y = val
		return nil
	default:
		return &IndexOutOfRangeError{Index: i, Length: 2}
	}
}

// normalizeIndex wraps a negative index once; out-of-range results stay
// out of range for the caller to reject.
func normalizeIndex(i int) int {
	if i < 0 {
		i += 2
	}
	return i
}

// Contains reports whether val equals either component
func (v Vector2D) Contains(val float64) bool {
	return v.X == val || v.Y == val
}

// IsZero reports whether both components are zero. A vector is truthy
// exactly when IsZero is false.
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Components returns a fresh sequence over X then Y. Each call restarts
// from X; for an explicitly single-pass cursor use Iter.
func (v Vector2D) Components() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(v.X) {
			return
		}
		yield(v.Y)
	}
}

// Iter returns a single-pass cursor over the components
func (v Vector2D) Iter() *ComponentsIterator {
	return &ComponentsIterator{vector: v}
}

// ComponentsIterator walks a vector's components once; it does not
// restart after exhaustion.
type ComponentsIterator struct {
	vector Vector2D
	cursor int
}

// Next produces the next component, reporting false once exhausted
func (it *ComponentsIterator) Next() (float64, bool) {
	if it.cursor >= it.vector.Len() {
		return 0, false
	}
	val, _ := it.vector.At(it.cursor)
	it.cursor++
	return val, true
}
