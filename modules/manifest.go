// Package modules holds the built-in component UIs and the manifest that
// declares the types of the components they draw.
package modules

import _ "embed"

// ManifestName is the name the built-in manifest is reported under.
const ManifestName = "modules/core.hcl"

//go:embed core.hcl
var manifest []byte

// Manifest returns the built-in component manifest.
func Manifest() []byte {
	return manifest
}
