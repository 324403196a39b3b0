package internal

import (
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"
)

var appName = "knead"

// the app name is read very early (config paths, usage text), so it gets its
// own lock in addition to the general customization lockdown
var appNameLocked atomic.Bool

// AppName is what the app calls itself in usage text and config paths. When
// customizing, overwrite it via SetAppName before calling Main().
func AppName() string {
	// once observed it cannot be changed
	appNameLocked.Store(true)
	return appName
}

func SetAppName(name string) {
	CheckCanCustomize()
	if appNameLocked.Load() {
		panic(fmt.Errorf("app name is locked"))
	}
	if name == "" {
		panic(fmt.Errorf("app name must not be empty"))
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		panic(fmt.Errorf("app name must not contain whitespace"))
	}
	appName = name
}
