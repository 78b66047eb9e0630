package geometry

import "errors"

// The operator interfaces model two-sided operand resolution. An
// implementation returns ErrUnsupported when it does not handle the
// other operand's type; the dispatch helpers then retry the reflected
// form on the right operand before giving up. Reflected forms compute
// the swapped expression (other <op> self), which matters for the
// non-commutative operators.

// Adder attempts self + other
type Adder interface {
	Add(other any) (any, error)
}

// ReflectedAdder attempts other + self
type ReflectedAdder interface {
	ReflectedAdd(other any) (any, error)
}

// Subtracter attempts self - other
type Subtracter interface {
	Sub(other any) (any, error)
}

// ReflectedSubtracter attempts other - self
type ReflectedSubtracter interface {
	ReflectedSub(other any) (any, error)
}

// Multiplier attempts self * other
type Multiplier interface {
	Mul(other any) (any, error)
}

// ReflectedMultiplier attempts other * self
type ReflectedMultiplier interface {
	ReflectedMul(other any) (any, error)
}

// Divider attempts self / other. Division has no reflected form: the
// swapped expression is a different operation, so dispatch fails
// instead of silently reordering.
type Divider interface {
	Div(other any) (any, error)
}

// Negater computes the unary negation of self
type Negater interface {
	Neg() any
}

// Add resolves l + r: forward on l first, then reflected on r, failing
// with *UnsupportedOperandError only after both refuse.
func Add(l, r any) (any, error) {
	return resolve("+", l, r, func(o Adder) (any, error) {
		return o.Add(r)
	}, func(o ReflectedAdder) (any, error) {
		return o.ReflectedAdd(l)
	})
}

// Sub resolves l - r. The reflected attempt computes l - r as well; it
// is the right operand that carries it out.
func Sub(l, r any) (any, error) {
	return resolve("-", l, r, func(o Subtracter) (any, error) {
		return o.Sub(r)
	}, func(o ReflectedSubtracter) (any, error) {
		return o.ReflectedSub(l)
	})
}

// Mul resolves l * r; scalar multiplication commutes via the reflected
// attempt.
func Mul(l, r any) (any, error) {
	return resolve("*", l, r, func(o Multiplier) (any, error) {
		return o.Mul(r)
	}, func(o ReflectedMultiplier) (any, error) {
		return o.ReflectedMul(l)
	})
}

// Div resolves l / r, forward only.
func Div(l, r any) (any, error) {
	if d, ok := l.(Divider); ok {
		res, err := d.Div(r)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return nil, err
		}
	}
	return nil, &UnsupportedOperandError{Op: "/", Left: l, Right: r}
}

// Neg resolves the unary negation of v.
func Neg(v any) (any, error) {
	if n, ok := v.(Negater); ok {
		return n.Neg(), nil
	}
	return nil, &UnsupportedOperandError{Op: "-", Left: v}
}

// resolve runs the forward attempt on the left operand and the
// reflected attempt on the right one. A nil error ends resolution; an
// error other than the ErrUnsupported sentinel aborts it immediately.
func resolve[F, R any](op string, l, r any, forward func(F) (any, error), reflected func(R) (any, error)) (any, error) {
	if o, ok := l.(F); ok {
		res, err := forward(o)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return nil, err
		}
	}
	if o, ok := r.(R); ok {
		res, err := reflected(o)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return nil, err
		}
	}
	return nil, &UnsupportedOperandError{Op: op, Left: l, Right: r}
}

// asScalar widens any numeric operand to float64.
func asScalar(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
