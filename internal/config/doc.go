// Package config defines the format-agnostic model of component manifests and
// logged component data, and the Loader interface that produces it.
//
// The `config.Model` is the single source of truth for the registry's type
// validation, the fallback values used when editing a component that has no
// value yet, and the seed data of the value stores. Concrete loaders, such as
// for HCL, are provided in separate packages.
package config
