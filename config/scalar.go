package config

import (
	"fmt"
	"strconv"
)

// Scalar is a ConfigKey for a simple comparable value with a fixed default.
// It accepts values as decoded from YAML or as strings from the command
// line.
type Scalar[T comparable] struct {
	name string
	def  T
	from func(any) (T, error)
}

func (s *Scalar[T]) Name() string { return s.name }

func (s *Scalar[T]) New() T { return s.def }

func (s *Scalar[T]) NewFrom(value any) (T, error) { return s.from(value) }

func (s *Scalar[T]) IsDefault(value T) bool { return value == s.def }

func IntKey(name string, def int) *Scalar[int] {
	return &Scalar[int]{name, def, intFrom}
}

func StringKey(name, def string) *Scalar[string] {
	return &Scalar[string]{name, def, stringFrom}
}

func BoolKey(name string, def bool) *Scalar[bool] {
	return &Scalar[bool]{name, def, boolFrom}
}

func intFrom(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("cannot use %T as integer", value)
	}
}

func stringFrom(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("cannot use %T as string", value)
}

func boolFrom(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	default:
		return false, fmt.Errorf("cannot use %T as bool", value)
	}
}
