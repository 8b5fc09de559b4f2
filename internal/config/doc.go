// Package config defines the format-agnostic deck model, along with the core
// interfaces (Loader, Converter) for loading and interpreting deck files.
//
// The `config.Model` is the single source of truth for the `builder`
// package. Concrete implementations of the interfaces, such as for HCL, are
// provided in separate packages.
package config
