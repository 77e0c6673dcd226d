package configs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Loader provides a loader over the default config files and Schema
func (Module) Loader() Loader {
	return NewLoader(DefaultPaths(), Schema)
}
