package runtime

// Comparator is the shape the Comparison AST node dispatches through: one
// of Equal, Less, NotEqual, Greater, LessOrEqual, GreaterOrEqual below.
type Comparator func(lhs, rhs Handle, ctx Context) (bool, error)

// Equal implements minipy's equality rule: both-None is true; same-kind
// Bool/Number/String compare their payload; a ClassInstance on the left
// with a 1-arg __eq__ dispatches to it; anything else is a runtime error.
// There is no implicit coercion between kinds, including Bool vs Number.
func Equal(lhs, rhs Handle, ctx Context) (bool, error) {
	if lhs.IsNone() && rhs.IsNone() {
		return true, nil
	}
	if l, ok := lhs.TryAsBoolean(); ok {
		if r, ok := rhs.TryAsBoolean(); ok {
			return l.Value == r.Value, nil
		}
		return false, NewError("equality operator is not applicable")
	}
	if l, ok := lhs.TryAsNumber(); ok {
		if r, ok := rhs.TryAsNumber(); ok {
			return l.Value == r.Value, nil
		}
		return false, NewError("equality operator is not applicable")
	}
	if l, ok := lhs.TryAsString(); ok {
		if r, ok := rhs.TryAsString(); ok {
			return l.Value == r.Value, nil
		}
		return false, NewError("equality operator is not applicable")
	}
	if l, ok := lhs.TryAsInstance(); ok {
		if l.HasMethod("__eq__", 1) {
			res, err := l.Call("__eq__", []Handle{rhs}, ctx)
			if err != nil {
				return false, err
			}
			return IsTrue(res), nil
		}
	}
	return false, NewError("equality operator is not applicable")
}

// Less implements minipy's ordering rule, same shape as Equal but dispatches
// to __lt__ for class instances and is never defined over None.
func Less(lhs, rhs Handle, ctx Context) (bool, error) {
	if l, ok := lhs.TryAsBoolean(); ok {
		if r, ok := rhs.TryAsBoolean(); ok {
			return !l.Value && r.Value, nil
		}
		return false, NewError("less operator is not applicable")
	}
	if l, ok := lhs.TryAsNumber(); ok {
		if r, ok := rhs.TryAsNumber(); ok {
			return l.Value < r.Value, nil
		}
		return false, NewError("less operator is not applicable")
	}
	if l, ok := lhs.TryAsString(); ok {
		if r, ok := rhs.TryAsString(); ok {
			return l.Value < r.Value, nil
		}
		return false, NewError("less operator is not applicable")
	}
	if l, ok := lhs.TryAsInstance(); ok {
		if l.HasMethod("__lt__", 1) {
			res, err := l.Call("__lt__", []Handle{rhs}, ctx)
			if err != nil {
				return false, err
			}
			return IsTrue(res), nil
		}
	}
	return false, NewError("less operator is not applicable")
}

// NotEqual is the negation of Equal.
func NotEqual(lhs, rhs Handle, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater evaluates both Equal and Less unconditionally — never as a
// short-circuited `!equal && !less` — so that a runtime error raised by
// either side is always surfaced, even when the other side alone would
// already have settled the boolean result.
func Greater(lhs, rhs Handle, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	ls, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq && !ls, nil
}

// LessOrEqual is the negation of Greater.
func LessOrEqual(lhs, rhs Handle, ctx Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

// GreaterOrEqual is the negation of Less.
func GreaterOrEqual(lhs, rhs Handle, ctx Context) (bool, error) {
	ls, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !ls, nil
}
