package loader

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/siebrand/dataknead/internal"
)

var (
	byName = map[string]Loader{}
	byExt  = map[string]Loader{}
)

// Register adds a loader to the registry. Duplicate tags or extensions are
// programmer error. Only valid before Main() locks customizations down,
// mirroring how commands and config keys are registered.
func Register(l Loader) {
	internal.CheckCanCustomize()
	name := l.Name()
	if name == "" {
		panic(fmt.Errorf("loader name required"))
	}
	if _, ok := byName[name]; ok {
		panic(fmt.Errorf("loader %q already registered", name))
	}
	byName[name] = l
	for _, ext := range l.Extensions() {
		if prev, ok := byExt[ext]; ok {
			panic(fmt.Errorf("extension %q claimed by both %q and %q", ext, prev.Name(), name))
		}
		byExt[ext] = l
	}
}

// RegisterDefaults registers the stock loaders. Wrappers that want a
// different set call Register directly instead.
func RegisterDefaults() {
	Register(&Text{})
	Register(NewJSON())
	Register(NewYAML())
	Register(NewCSV())
	Register(NewTSV())
}

// ByName returns the loader with the given format tag.
func ByName(name string) (Loader, error) {
	l, ok := byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
	return l, nil
}

// ForPath dispatches on the path's extension. A trailing ".gz" is
// transparent: "data.json.gz" resolves to the json loader wrapped in Gzip.
func ForPath(path string) (Loader, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "gz" {
		inner, err := ForPath(strings.TrimSuffix(path, filepath.Ext(path)))
		if err != nil {
			return nil, err
		}
		return &Gzip{Inner: inner}, nil
	}
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	l, ok := byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	return l, nil
}

// Enabled lists the registered loaders sorted by tag, for display.
func Enabled() []Loader {
	internal.CheckLockedDown()
	ret := make([]Loader, 0, len(byName))
	for _, l := range byName {
		ret = append(ret, l)
	}
	slices.SortFunc(ret, func(a, b Loader) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return ret
}

// Initialize applies loaded config to the registered loaders. Called from
// Main() after config.Initialize.
func Initialize() {
	internal.CheckLockedDown()
	for _, l := range byName {
		if c, ok := l.(Configurable); ok {
			c.Configure()
		}
	}
}
