package internal

import (
	"errors"
	"sync/atomic"
)

// customizations (loaders, commands, config keys) may only be registered
// before app start. Main locks them down once startup begins.
var customizationsLocked atomic.Bool

func LockCustomizations() {
	customizationsLocked.Store(true)
}

func CheckCanCustomize() {
	if customizationsLocked.Load() {
		panic(errors.New("cannot add customizations after app start"))
	}
}

func CheckLockedDown() {
	if !customizationsLocked.Load() {
		panic(errors.New("cannot use customizations until app start and lockdown"))
	}
}
