package internal

import "strconv"

type scalar interface {
	~string | ~int | ~int64 | ~float64 | ~bool
}

// ContextValue returns the value stored with c.Set, or the zero T.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// Param converts a URL parameter. Unparsable values give the zero T.
func Param[T scalar](c Context, name string) T {
	v, _ := parse[T](c.Param(name))
	return v
}

// Query converts a query parameter. Unparsable values give the zero T.
func Query[T scalar](c Context, name string) T {
	v, _ := parse[T](c.Query(name))
	return v
}

// QueryDefault is Query with a fallback for missing or unparsable values.
func QueryDefault[T scalar](c Context, name string, fallback T) T {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	if v, ok := parse[T](raw); ok {
		return v
	}
	return fallback
}

func parse[T scalar](raw string) (T, bool) {
	var (
		zero T
		v    any
		err  error
	)
	switch any(zero).(type) {
	case string:
		v = raw
	case int:
		v, err = strconv.Atoi(raw)
	case int64:
		v, err = strconv.ParseInt(raw, 10, 64)
	case float64:
		v, err = strconv.ParseFloat(raw, 64)
	case bool:
		v, err = strconv.ParseBool(raw)
	default:
		return zero, false
	}
	if err != nil {
		return zero, false
	}
	return v.(T), true
}
