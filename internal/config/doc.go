// Package config defines the format-agnostic description of a compilation
// job: the model architecture to compile and the target accelerator to
// compile it for, along with the Loader interface for reading those
// descriptions from disk.
//
// The config.Model is the single source of truth for the ir builder and
// the target backend. The concrete HCL implementation of Loader lives in
// the internal/hcl package.
package config
