package main

import (
	"github.com/siebrand/dataknead/cmd"
	"github.com/siebrand/dataknead/loader"
)

// Build your own wrapper around cmd.Main to register custom loaders or
// commands; this main ships the stock set.
func main() {
	loader.RegisterDefaults()
	cmd.Main()
}
