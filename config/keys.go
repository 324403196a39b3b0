package config

import (
	"fmt"
	"sync/atomic"
)

var (
	keys  = map[string]anyConfigKey{}
	data  map[string]any // set non-nil once in Initialize
	dirty atomic.Int32
)

type anyConfigKey struct {
	key       interface{ Name() string }
	isDefault func(value any) bool
	new       func() any
	newFrom   func(value any) (any, error)
}

type ConfigKey[T any] interface {
	Name() string
	New() T
	NewFrom(value any) (T, error)
	IsDefault(value T) bool
}

// AddKey registers a config key. Loaders and commands register their keys
// from init(), before Main() locks customizations down.
func AddKey[T any](key ConfigKey[T]) {
	name := key.Name()
	if _, ok := keys[name]; ok {
		panic(fmt.Errorf("config key %q already registered", name))
	}
	keys[name] = anyConfigKey{
		key,
		func(value any) bool { return key.IsDefault(value.(T)) },
		func() any { return key.New() },
		func(value any) (any, error) { return key.NewFrom(value) },
	}
}

func SetDirty() {
	dirty.Add(1)
}

func IsDirty() bool {
	return dirty.Load() > 0
}

func Get[T any](key ConfigKey[T]) T {
	if keys[key.Name()].key != key {
		panic(fmt.Errorf("incorrect config key for %q", key.Name()))
	}
	return data[key.Name()].(T)
}

// Set parses and stores a value for the named key, e.g. from the command
// line. Unknown keys and unparseable values are errors, not panics, since
// the name and value come from the user.
func Set(name string, value any) error {
	kk, ok := keys[name]
	if !ok {
		return fmt.Errorf("unknown config key %q", name)
	}
	v, err := kk.newFrom(value)
	if err != nil {
		return fmt.Errorf("invalid value for config key %q: %w", name, err)
	}
	data[name] = v
	SetDirty()
	return nil
}

// Unset restores the named key to its default value.
func Unset(name string) error {
	kk, ok := keys[name]
	if !ok {
		return fmt.Errorf("unknown config key %q", name)
	}
	data[name] = kk.new()
	SetDirty()
	return nil
}

// Snapshot copies the current values for display. Mutating the result does
// not affect the live config.
func Snapshot() map[string]any {
	ret := make(map[string]any, len(data))
	for k, v := range data {
		ret[k] = v
	}
	return ret
}
