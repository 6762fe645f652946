package ephemeris

import "errors"

// tryFirst runs candidates in order and returns the first structurally valid
// result. Only the last error surfaces when every candidate fails. The Swiss
// house routine's calling convention is fragile across configurations, so
// callers line up variant invocations here instead of hard-coding one.
func tryFirst[T any](candidates ...func() (T, error)) (T, error) {
	var (
		zero T
		last error
	)
	for _, c := range candidates {
		if c == nil {
			continue
		}
		v, err := c()
		if err == nil {
			return v, nil
		}
		last = err
	}
	if last == nil {
		last = errors.New("trychain: no candidates")
	}
	return zero, last
}
