// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses component manifests and logged component data,
// translates HCL type expressions into cty types and converts logged values to
// the declared component types.
package hcl
