// Package registry holds the built-in operator descriptors: for each known
// operator kind, the resource class it runs on by default, its default
// cycle cost, and the host kernel implementing it where one exists.
//
// The target backend consults the registry for operator kinds that the
// target description file does not mention explicitly.
package registry
