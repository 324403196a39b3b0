package instance

import "github.com/siebrand/dataknead/internal"

// AppName is what the app calls itself, "knead" by default. Wrappers that
// embed the converter under another name overwrite it via SetAppName before
// calling Main().
func AppName() string {
	return internal.AppName()
}

func SetAppName(name string) {
	internal.SetAppName(name)
}
