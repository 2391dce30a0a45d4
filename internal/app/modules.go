package app

import (
	"github.com/specialistvlad/componentui/internal/hcl"
	"github.com/specialistvlad/componentui/internal/registry"
	"github.com/specialistvlad/componentui/modules"
	"github.com/specialistvlad/componentui/modules/blob"
	"github.com/specialistvlad/componentui/modules/color"
	"github.com/specialistvlad/componentui/modules/marker"
	"github.com/specialistvlad/componentui/modules/scalar"
	"github.com/specialistvlad/componentui/modules/text"
	"github.com/specialistvlad/componentui/modules/visible"
)

// coreModules is the definitive list of all component UIs that are compiled
// into the binary.
var coreModules = []registry.Module{
	&blob.Module{},
	&color.Module{},
	&marker.Module{},
	scalar.NewModule(),
	&text.Module{},
	&visible.Module{},
}

// NewLoader returns the HCL loader that reads the built-in manifest before
// any user file.
func NewLoader() *hcl.Loader {
	return hcl.NewLoader(hcl.WithBuiltin(modules.ManifestName, modules.Manifest()))
}
