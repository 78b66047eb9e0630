// Package geometry provides a small 2D vector and polygon toolkit built
// around two-sided operand resolution.
//
// Binary operations go through package-level dispatch helpers (Add,
// Sub, Mul, Div) instead of plain methods. The helper first asks the
// left operand to compute the result; an operand that does not handle
// the other's type returns the ErrUnsupported sentinel, and the helper
// retries the reflected form on the right operand — computing the
// swapped expression, not merely swapping arguments. Only when both
// sides refuse does the operation fail, with *UnsupportedOperandError.
// This is what makes 5 * v work: the untyped scalar implements nothing,
// and the vector's ReflectedMul picks it up.
//
// Division deliberately has no reflected form — scalar / vector is a
// different operation — and a zero divisor is an explicit
// ErrDivisionByZero rather than a pair of infinities.
//
// Polygon shows the same sequence exposed through two iteration styles:
// an explicit single-pass cursor (Points) and a range-over function
// (Vertices). Both produce the identical vertex sequence and every
// iteration is independent of every other.
package geometry
