package config

import (
	"fmt"

	"github.com/siebrand/dataknead/internal"
)

// Initialize builds the live config from the registered keys' defaults and
// then overlays the user's config file. Called once from Main() after
// lockdown.
func Initialize() error {
	internal.CheckLockedDown()
	if data != nil {
		panic(fmt.Errorf("config already initialized"))
	}
	data = make(map[string]any, len(keys))
	for k, kk := range keys {
		data[k] = kk.new()
	}
	return load()
}
